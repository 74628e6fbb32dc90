package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"travel-planner/internal/travel"
	pkgLog "travel-planner/pkg/log"
	pkgResponse "travel-planner/pkg/response"
	pkgTelegram "travel-planner/pkg/telegram"
)

type handler struct {
	l   pkgLog.Logger
	uc  travel.UseCase
	bot Sender
}

// HandleWebhook acknowledges the update at once and runs the turn in the
// background. Telegram retries webhooks that take more than a few seconds,
// and plan generation takes longer than that.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "%s: failed to parse update: %v", LogPrefixWebhook, err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (edits, channel posts, ...)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), turnTimeout)
		defer cancel()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "%s: %v", LogPrefixMessage, err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, msgFailure, "")
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage runs one chat message through the dialogue engine. Each
// chat owns one session.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}
	chatID := msg.Chat.ID
	sessionID := fmt.Sprintf(sessionIDFmt, chatID)

	switch command(text) {
	case commandStart:
		if err := h.uc.EndSession(ctx, sessionID); err != nil && !errors.Is(err, travel.ErrSessionNotFound) {
			h.l.Warnf(ctx, "%s: reset %s: %v", LogPrefixMessage, sessionID, err)
		}
		return h.bot.SendMessage(ctx, chatID, msgWelcome, pkgTelegram.ParseModeMarkdown)
	case commandHelp:
		return h.bot.SendMessage(ctx, chatID, msgHelp, pkgTelegram.ParseModeMarkdown)
	}

	if err := h.bot.SendMessage(ctx, chatID, msgProcessing, ""); err != nil {
		h.l.Warnf(ctx, "%s: failed to send ack message: %v", LogPrefixMessage, err)
	}

	out, err := h.uc.ProcessTurn(ctx, travel.ProcessTurnInput{SessionID: sessionID, Text: text})
	if err != nil {
		return fmt.Errorf("uc.ProcessTurn: %w", err)
	}
	h.l.Infof(ctx, "%s: chat=%d node=%s has_plan=%t", LogPrefixMessage, chatID, out.Node, out.HasPlan)

	return h.bot.SendMessage(ctx, chatID, out.Reply, pkgTelegram.ParseModeMarkdown)
}

// command strips a bot mention such as "/start@travel_bot".
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd, _, _ := strings.Cut(strings.Fields(text)[0], "@")
	return cmd
}
