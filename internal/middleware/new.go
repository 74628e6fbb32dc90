package middleware

import (
	"time"

	"travel-planner/pkg/log"
)

// Config tunes the per-key turn limiter.
type Config struct {
	Enabled        bool
	RequestsPerMin int
	MaxTrackedKeys int
	KeyTTL         time.Duration
}

type Middleware struct {
	l       log.Logger
	enabled bool
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		enabled: cfg.Enabled,
		limiter: newRateLimiter(cfg),
	}
}
