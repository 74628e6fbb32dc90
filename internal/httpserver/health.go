package httpserver

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"travel-planner/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Travel planner API v1"
	HealthVersion = "1.0.0"
	ServiceName   = "travel-planner"

	checkTimeout = 3 * time.Second

	statusUp   = "up"
	statusDown = "down"
)

// Check reports whether one dependency can serve traffic.
type Check = func(ctx context.Context) error

// runChecks runs every dependency check concurrently and reports each
// dependency as up or down. ok is false when any check failed.
func (srv HTTPServer) runChecks(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	var (
		mu     sync.Mutex
		g      errgroup.Group
		status = make(map[string]string, len(srv.checks))
		ok     = true
	)
	names := make([]string, 0, len(srv.checks))
	for name := range srv.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		check := srv.checks[name]
		g.Go(func() error {
			err := check(ctx)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				srv.l.Warnf(ctx, "Dependency %s is down: %v", name, err)
				status[name] = statusDown
				ok = false
				return nil
			}
			status[name] = statusUp
			return nil
		})
	}
	_ = g.Wait()
	return status, ok
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Report the status of the LLM providers and the session store
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy or degraded"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	deps, ok := srv.runChecks(c.Request.Context())
	status := "healthy"
	if !ok {
		status = "degraded"
	}
	response.OK(c, gin.H{
		"status":       status,
		"message":      HealthMessage,
		"version":      HealthVersion,
		"service":      ServiceName,
		"dependencies": deps,
	})
}

// readyCheck handles readiness check requests. The service is ready only
// when every dependency check passes.
// @Summary Readiness Check
// @Description Check if the LLM providers and the session store can serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "A dependency is down"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	deps, ok := srv.runChecks(c.Request.Context())
	data := gin.H{
		"status":       "ready",
		"message":      HealthMessage,
		"version":      HealthVersion,
		"service":      ServiceName,
		"dependencies": deps,
	}
	if !ok {
		data["status"] = "not_ready"
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "dependency unavailable",
			Data:      data,
		})
		return
	}
	response.OK(c, data)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API process is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": ServiceName,
	})
}
