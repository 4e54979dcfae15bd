package app_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"afterReach/internal/app"
	"afterReach/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AppSuite struct {
	suite.Suite
	app     *app.App
	handler http.Handler
}

func (s *AppSuite) SetupTest() {
	cfg, err := config.Load("")
	s.Require().NoError(err)
	cfg.Logging.Development = true
	cfg.Assistant.APIKey = ""

	a, err := app.New(cfg).Init(context.Background())
	s.Require().NoError(err)
	s.app = a
	s.handler = a.Handler()
}

func (s *AppSuite) TearDownTest() {
	s.app.Shutdown()
}

func (s *AppSuite) get(target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func (s *AppSuite) TestHealthAndRequestID() {
	rr := s.get("/health")
	s.Equal(http.StatusOK, rr.Code)
	s.NotEmpty(rr.Header().Get("X-Request-ID"))
	s.NotEmpty(rr.Header().Get("X-RateLimit-Limit"))
}

func (s *AppSuite) TestSeededRoutes() {
	rr := s.get("/professionals")
	s.Equal(http.StatusOK, rr.Code)
	s.Contains(rr.Body.String(), "Eleanor Vance")
}

func (s *AppSuite) TestMetricsEndpoint() {
	s.get("/health")
	rr := s.get("/metrics")
	s.Equal(http.StatusOK, rr.Code)
	s.Contains(rr.Body.String(), "afterreach_http_requests_total")
	s.Contains(rr.Body.String(), "afterreach_tasks_overdue")
}

func (s *AppSuite) TestChatWithoutKeyFallsBack() {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat/messages", strings.NewReader(`{"text":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	s.handler.ServeHTTP(rr, req)

	s.Equal(http.StatusOK, rr.Code)
	s.Contains(rr.Body.String(), "trouble connecting")
}

func TestAppSuite(t *testing.T) {
	suite.Run(t, new(AppSuite))
}

func TestInit_WithoutSeed(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Seed.Enabled = false
	cfg.Assistant.APIKey = ""

	a, err := app.New(cfg).Init(context.Background())
	require.NoError(t, err)
	defer a.Shutdown()

	rr := httptest.NewRecorder()
	a.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/checklist", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"tasks":[]}`, rr.Body.String())
}
