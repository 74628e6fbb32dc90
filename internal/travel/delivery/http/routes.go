package http

import (
	"github.com/gin-gonic/gin"

	"travel-planner/internal/middleware"
)

// RegisterRoutes maps the session API. Only turn submission is rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	sessions := rg.Group("/sessions")
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("/:id", h.GetSession)
		sessions.DELETE("/:id", h.EndSession)
		sessions.POST("/:id/turns", mw.RateLimit(), h.ProcessTurn)
	}
}
