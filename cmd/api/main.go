package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"travel-planner/config"
	_ "travel-planner/docs" // Swagger docs
	"travel-planner/internal/app"
	"travel-planner/internal/httpserver"
	"travel-planner/internal/middleware"
	travelHTTP "travel-planner/internal/travel/delivery/http"
	tgDelivery "travel-planner/internal/travel/delivery/telegram"
	"travel-planner/pkg/log"
	"travel-planner/pkg/telegram"
)

// @title       Travel Planner API
// @description Korean travel-planning assistant: dialogue sessions, itinerary generation and Google Calendar registration.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Travel Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Dialogue engine
	engine, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize dialogue engine: ", err)
		return
	}
	defer func() {
		if err := engine.Close(); err != nil {
			logger.Warnf(ctx, "Failed to close resources: %v", err)
		}
	}()

	// 4. Telegram delivery (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, engine.UseCase, bot)

		if cfg.Telegram.WebhookURL != "" {
			if whErr := bot.SetWebhook(ctx, cfg.Telegram.WebhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "✅ Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TravelHandler:   travelHTTP.New(logger, engine.UseCase, cfg.Dialogue.StreamChunkSize),
		TelegramHandler: telegramHandler,
		Middleware: middleware.New(logger, middleware.Config{
			Enabled:        cfg.RateLimit.Enabled,
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			MaxTrackedKeys: cfg.RateLimit.MaxTrackedKeys,
			KeyTTL:         cfg.RateLimit.KeyTTL,
		}),
		MetricsHandler: engine.Metrics.Handler(),
		Checks:         engine.Checks,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
