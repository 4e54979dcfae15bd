package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"afterReach/internal/assistant"
	"afterReach/internal/config"
	"afterReach/internal/handlers"
	"afterReach/internal/logger"
	"afterReach/internal/middleware"
	"afterReach/internal/seed"
	"afterReach/internal/service"
	"afterReach/internal/worker"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config    *config.Config
	server    *http.Server
	router    *chi.Mux
	state     *service.State
	registry  *prometheus.Registry
	overdue   *worker.OverdueWorker
	shutdowns []func() // run in reverse order on Shutdown
}

func New(cfg *config.Config) *App {
	return &App{
		config:    cfg,
		shutdowns: make([]func(), 0),
	}
}

// Init builds the logger, the application state and the router.
func (a *App) Init(ctx context.Context) (*App, error) {
	if err := logger.Init(a.config.Logging.Development); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	a.shutdowns = append(a.shutdowns, func() {
		logger.Info("App: flushing logs")
		logger.Sync()
	})

	state, err := a.buildState(ctx)
	if err != nil {
		return nil, err
	}
	a.state = state

	a.registry = prometheus.NewRegistry()
	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	a.router = a.buildRouter()
	a.overdue = worker.NewOverdueWorker(a.state.Tasks, a.config.Worker.OverdueInterval, a.registry)

	a.server = &http.Server{
		Addr:              a.config.GetServerAddr(),
		Handler:           otelhttp.NewHandler(a.router, "afterreach"),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return a, nil
}

func (a *App) buildState(ctx context.Context) (*service.State, error) {
	ac := a.config.Assistant
	if ac.APIKey == "" {
		logger.Warn("App: assistant API key not set, chat will answer with the fallback message")
	}

	state := service.NewState(service.Deps{
		Assistant:   assistant.NewClient(ac.BaseURL, ac.Model, ac.APIKey, ac.Timeout),
		ChatTimeout: ac.Timeout,
	})

	if a.config.Seed.Enabled {
		data, err := seed.Default()
		if err != nil {
			return nil, err
		}
		if err := data.Apply(ctx, state); err != nil {
			return nil, err
		}
	}
	return state, nil
}

func (a *App) buildRouter() *chi.Mux {
	metrics := middleware.NewMetrics(a.registry)

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: a.config.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "X-RateLimit-Remaining"},
		MaxAge:         300,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(metrics.Handler)
	r.Use(middleware.Timeout(a.config.Server.RequestTimeout))
	r.Use(middleware.RateLimit(a.config.Server.RateLimit))

	r.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))
	handlers.Register(r, a.state)
	return r
}

// Handler exposes the instrumented router, mainly for tests.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	workerCtx, stopWorker := context.WithCancel(ctx)
	defer stopWorker()
	go a.overdue.Start(workerCtx)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("App: server started", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		a.Shutdown()
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("App: shutting down server")
	err := a.server.Shutdown(shutdownCtx)
	a.Shutdown()
	return err
}

func (a *App) Shutdown() {
	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		a.shutdowns[i]()
	}
	a.shutdowns = nil
}
