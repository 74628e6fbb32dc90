package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-planner/internal/middleware"
	travelHTTP "travel-planner/internal/travel/delivery/http"
	tgDelivery "travel-planner/internal/travel/delivery/telegram"
	"travel-planner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Travel domain
	travelHandler   travelHTTP.Handler
	telegramHandler tgDelivery.Handler
	middleware      middleware.Middleware

	// Observability
	metricsHandler http.Handler
	checks         map[string]Check
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Travel domain
	TravelHandler   travelHTTP.Handler
	TelegramHandler tgDelivery.Handler
	Middleware      middleware.Middleware

	// Observability
	MetricsHandler http.Handler
	// Checks are run by /health and /ready, keyed by dependency name.
	Checks map[string]Check
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		travelHandler:   cfg.TravelHandler,
		telegramHandler: cfg.TelegramHandler,
		middleware:      cfg.Middleware,
		metricsHandler:  cfg.MetricsHandler,
		checks:          cfg.Checks,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.travelHandler == nil {
		return errors.New("travel handler is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() http.Handler {
	return srv.gin
}
