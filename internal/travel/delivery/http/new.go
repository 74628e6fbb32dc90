package http

import (
	"github.com/gin-gonic/gin"

	"travel-planner/internal/travel"
	"travel-planner/pkg/log"
)

// Handler is the public interface for the travel HTTP delivery layer.
type Handler interface {
	CreateSession(c *gin.Context)
	GetSession(c *gin.Context)
	EndSession(c *gin.Context)
	ProcessTurn(c *gin.Context)
}

type handler struct {
	l         log.Logger
	uc        travel.UseCase
	chunkSize int
}

// New creates a new HTTP handler. chunkSize is the number of runes per
// streamed reply chunk.
func New(l log.Logger, uc travel.UseCase, chunkSize int) Handler {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &handler{
		l:         l,
		uc:        uc,
		chunkSize: chunkSize,
	}
}
