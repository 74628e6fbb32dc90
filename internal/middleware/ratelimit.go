package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"travel-planner/pkg/response"
)

const (
	LogPrefixRateLimit = "middleware.RateLimit"

	defaultRequestsPerMin = 30
	defaultMaxTrackedKeys = 1000
	defaultKeyTTL         = 5 * time.Minute
)

// RateLimit throttles requests per session, falling back to the client IP
// for routes without an :id parameter.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled {
			c.Next()
			return
		}

		key := "ip:" + c.ClientIP()
		if id := c.Param("id"); id != "" {
			key = "session:" + id
		}

		if err := m.limiter.Allow(key); err != nil {
			m.l.Warnf(c.Request.Context(), "%s: %v", LogPrefixRateLimit, err)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one token bucket per key; idle keys expire.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(cfg Config) *rateLimiter {
	perMin := cfg.RequestsPerMin
	if perMin <= 0 {
		perMin = defaultRequestsPerMin
	}
	size := cfg.MaxTrackedKeys
	if size <= 0 {
		size = defaultMaxTrackedKeys
	}
	ttl := cfg.KeyTTL
	if ttl <= 0 {
		ttl = defaultKeyTTL
	}

	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](size, nil, ttl),
		rate:     rate.Limit(float64(perMin) / 60.0),
		burst:    max(1, perMin/10),
	}
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
