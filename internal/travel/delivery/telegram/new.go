package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"travel-planner/internal/travel"
	pkgLog "travel-planner/pkg/log"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Sender delivers a reply to a chat. *telegram.Bot satisfies it.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string, parseMode string) error
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc travel.UseCase, bot Sender) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		bot: bot,
	}
}
