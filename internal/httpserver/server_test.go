package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-planner/internal/middleware"
	"travel-planner/pkg/metrics"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                  {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                   {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                   {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (nopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                  {}
func (nopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type stubTravelHandler struct{ hits map[string]int }

func (s *stubTravelHandler) CreateSession(c *gin.Context) { s.hit(c, "create") }
func (s *stubTravelHandler) GetSession(c *gin.Context)    { s.hit(c, "get") }
func (s *stubTravelHandler) EndSession(c *gin.Context)    { s.hit(c, "end") }
func (s *stubTravelHandler) ProcessTurn(c *gin.Context)   { s.hit(c, "turn") }

func (s *stubTravelHandler) hit(c *gin.Context, name string) {
	s.hits[name]++
	c.Status(http.StatusOK)
}

type stubTelegramHandler struct{ called bool }

func (s *stubTelegramHandler) HandleWebhook(c *gin.Context) {
	s.called = true
	c.Status(http.StatusOK)
}

func newTestServer(t *testing.T, cfg Config) *HTTPServer {
	t.Helper()
	cfg.Logger = nopLogger{}
	cfg.Port = 8080
	cfg.Mode = gin.TestMode
	cfg.Environment = environmentProduction
	cfg.Middleware = middleware.New(nopLogger{}, middleware.Config{})
	srv, err := New(nopLogger{}, cfg)
	require.NoError(t, err)
	return srv
}

func get(srv *HTTPServer, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestRoutes(t *testing.T) {
	travel := &stubTravelHandler{hits: map[string]int{}}
	tg := &stubTelegramHandler{}
	m := metrics.New()
	m.Turns.WithLabelValues("ok").Inc()

	srv := newTestServer(t, Config{TravelHandler: travel, TelegramHandler: tg, MetricsHandler: m.Handler()})

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := get(srv, http.MethodGet, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), ServiceName, path)
	}

	w := get(srv, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `travel_planner_turns_total{outcome="ok"} 1`)

	get(srv, http.MethodPost, "/api/v1/sessions")
	get(srv, http.MethodGet, "/api/v1/sessions/s1")
	get(srv, http.MethodDelete, "/api/v1/sessions/s1")
	get(srv, http.MethodPost, "/api/v1/sessions/s1/turns")
	assert.Equal(t, map[string]int{"create": 1, "get": 1, "end": 1, "turn": 1}, travel.hits)

	get(srv, http.MethodPost, "/webhook/telegram")
	assert.True(t, tg.called)
}

func TestOptionalRoutes(t *testing.T) {
	srv := newTestServer(t, Config{TravelHandler: &stubTravelHandler{hits: map[string]int{}}})

	assert.Equal(t, http.StatusNotFound, get(srv, http.MethodPost, "/webhook/telegram").Code)
	assert.Equal(t, http.StatusNotFound, get(srv, http.MethodGet, "/metrics").Code)
}

func TestValidate(t *testing.T) {
	_, err := New(nopLogger{}, Config{Logger: nopLogger{}, Port: 8080, Mode: gin.TestMode})
	assert.EqualError(t, err, "travel handler is required")

	_, err = New(nopLogger{}, Config{Logger: nopLogger{}, Mode: gin.TestMode, TravelHandler: &stubTravelHandler{}})
	assert.EqualError(t, err, "port is required")
}

func TestDependencyChecks(t *testing.T) {
	down := errors.New("down")
	checks := map[string]Check{
		"llm":      func(ctx context.Context) error { return nil },
		"sessions": func(ctx context.Context) error { return down },
	}

	t.Run("all up", func(t *testing.T) {
		srv := newTestServer(t, Config{
			TravelHandler: &stubTravelHandler{hits: map[string]int{}},
			Checks:        map[string]Check{"llm": checks["llm"]},
		})
		w := get(srv, http.MethodGet, "/ready")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"llm":"up"`)
		assert.Contains(t, w.Body.String(), `"status":"ready"`)
	})

	t.Run("session store down", func(t *testing.T) {
		srv := newTestServer(t, Config{TravelHandler: &stubTravelHandler{hits: map[string]int{}}, Checks: checks})

		w := get(srv, http.MethodGet, "/ready")
		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"sessions":"down"`)
		assert.Contains(t, w.Body.String(), `"llm":"up"`)
		assert.Contains(t, w.Body.String(), `"status":"not_ready"`)

		w = get(srv, http.MethodGet, "/health")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"degraded"`)

		assert.Equal(t, http.StatusOK, get(srv, http.MethodGet, "/live").Code)
	})
}
