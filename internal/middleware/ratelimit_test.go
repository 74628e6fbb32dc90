package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func newRouter(cfg Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := New(nopLogger{}, cfg)
	r.POST("/sessions/:id/turns", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/sessions", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func send(r *gin.Engine, path string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.RemoteAddr = "10.0.0.1:1234"
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimit(t *testing.T) {
	t.Run("burst then reject per session", func(t *testing.T) {
		// 60/min gives a burst of 6 and one token per second.
		r := newRouter(Config{Enabled: true, RequestsPerMin: 60})
		for i := 0; i < 6; i++ {
			require.Equal(t, http.StatusOK, send(r, "/sessions/a/turns"), "request %d", i)
		}
		assert.Equal(t, http.StatusTooManyRequests, send(r, "/sessions/a/turns"))
		assert.Equal(t, http.StatusOK, send(r, "/sessions/b/turns"), "other sessions keep their own bucket")
	})

	t.Run("falls back to client ip", func(t *testing.T) {
		r := newRouter(Config{Enabled: true, RequestsPerMin: 10})
		assert.Equal(t, http.StatusOK, send(r, "/sessions"))
		assert.Equal(t, http.StatusTooManyRequests, send(r, "/sessions"))
	})

	t.Run("disabled", func(t *testing.T) {
		r := newRouter(Config{Enabled: false, RequestsPerMin: 10})
		for i := 0; i < 5; i++ {
			assert.Equal(t, http.StatusOK, send(r, "/sessions/a/turns"))
		}
	})
}

func TestNewRateLimiterDefaults(t *testing.T) {
	rl := newRateLimiter(Config{})
	assert.Equal(t, 3, rl.burst)
	assert.InDelta(t, 0.5, float64(rl.rate), 1e-9)
}
