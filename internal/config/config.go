package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Assistant AssistantConfig `mapstructure:"assistant"`
	Seed      SeedConfig      `mapstructure:"seed"`
	Worker    WorkerConfig    `mapstructure:"worker"`
}

type ServerConfig struct {
	Port           string        `mapstructure:"port"`
	Host           string        `mapstructure:"host"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	RateLimit      int           `mapstructure:"rate_limit"` // requests per minute per client IP
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
}

type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

type AssistantConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Model   string        `mapstructure:"model"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type SeedConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type WorkerConfig struct {
	OverdueInterval time.Duration `mapstructure:"overdue_interval"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.request_timeout", 30*time.Second)
	v.SetDefault("server.rate_limit", 100)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("logging.development", true)
	v.SetDefault("assistant.base_url", "https://generativelanguage.googleapis.com")
	v.SetDefault("assistant.model", "gemini-2.5-flash")
	v.SetDefault("assistant.api_key", "")
	v.SetDefault("assistant.timeout", 20*time.Second)
	v.SetDefault("seed.enabled", true)
	v.SetDefault("worker.overdue_interval", 5*time.Minute)
}

// Load reads path (or ./config.yml when path is empty). A missing file is not an error:
// defaults and AFTERREACH_* environment variables are enough to run.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("AFTERREACH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Server.RateLimit <= 0 {
		return nil, fmt.Errorf("server.rate_limit must be positive, got %d", cfg.Server.RateLimit)
	}

	return &cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
