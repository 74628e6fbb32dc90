// Package app wires the dialogue engine from configuration. Both the API
// server and the chat REPL start from here.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"travel-planner/config"
	"travel-planner/internal/travel"
	"travel-planner/internal/travel/calendarflow"
	"travel-planner/internal/travel/completion"
	"travel-planner/internal/travel/extractor"
	"travel-planner/internal/travel/guardrail"
	"travel-planner/internal/travel/intent"
	"travel-planner/internal/travel/planner"
	"travel-planner/internal/travel/repository"
	"travel-planner/internal/travel/repository/gcal"
	"travel-planner/internal/travel/repository/kakao"
	"travel-planner/internal/travel/repository/memory"
	redisRepo "travel-planner/internal/travel/repository/redis"
	"travel-planner/internal/travel/usecase"
	"travel-planner/pkg/datemath"
	"travel-planner/pkg/gcalendar"
	"travel-planner/pkg/kakaomap"
	"travel-planner/pkg/llmprovider"
	"travel-planner/pkg/log"
	"travel-planner/pkg/metrics"
)

const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"

	redisPingTimeout = 5 * time.Second

	CheckLLM      = "llm"
	CheckSessions = "sessions"

	readinessSessionID = "readiness-check"
)

// App is a fully wired engine.
type App struct {
	UseCase travel.UseCase
	Metrics *metrics.Metrics
	// Checks report whether each external dependency can serve traffic.
	Checks map[string]func(ctx context.Context) error

	closers []func() error
}

// Close releases external connections.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

// Build creates every collaborator described by cfg. The calendar and the
// place lookup are optional; the engine degrades without them.
func Build(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	a := &App{Metrics: metrics.New()}

	loc, err := time.LoadLocation(cfg.Dialogue.Timezone)
	if err != nil {
		l.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Dialogue.Timezone, err)
		loc = time.UTC
	}
	dateMath, err := datemath.NewParser(loc.String())
	if err != nil {
		return nil, fmt.Errorf("datemath: %w", err)
	}

	// LLM providers with priority fallback
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, l)
	if err != nil {
		return nil, fmt.Errorf("llm providers: %w", err)
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      cfg.LLM.RetryDelay,
		MaxTotalTimeout: cfg.LLM.MaxTotalTimeout,
	}, l)
	manager.SetObserver(a.Metrics.ObserveLLM)
	llm := completion.New(manager, l)
	l.Infof(ctx, "LLM initialized: %d provider(s), primary model %s", len(providers), manager.Model())

	sessions, err := a.buildSessions(ctx, cfg.Session, l)
	if err != nil {
		return nil, err
	}

	a.Checks = map[string]func(ctx context.Context) error{
		CheckLLM:      manager.Ready,
		CheckSessions: SessionCheck(sessions),
	}

	calendarRepo := buildCalendar(ctx, cfg, loc, l)
	placeRepo := buildPlaces(ctx, cfg.Kakao, l)

	a.UseCase = usecase.New(l, usecase.Dependencies{
		Sessions:   sessions,
		Calendar:   calendarRepo,
		LLM:        llm,
		Extractor:  extractor.New(llm, l, cfg.Dialogue.MemoryWindow),
		Classifier: intent.New(llm, l),
		Guardrail:  guardrail.New(llm, l),
		Planner:    planner.New(llm, placeRepo, dateMath, l),
		Flow:       calendarflow.New(calendarRepo, llm, dateMath, l),
		Metrics:    a.Metrics,
		Threshold:  cfg.Dialogue.ConfidenceThreshold,
		Window:     cfg.Dialogue.MemoryWindow,
	})
	return a, nil
}

func (a *App) buildSessions(ctx context.Context, cfg config.SessionConfig, l log.Logger) (repository.SessionRepository, error) {
	switch cfg.Backend {
	case "", SessionBackendMemory:
		l.Infof(ctx, "Session store: memory (max %d, ttl %s)", cfg.MaxSessions, cfg.TTL)
		return memory.New(cfg.MaxSessions, cfg.TTL), nil

	case SessionBackendRedis:
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
		}
		a.closers = append(a.closers, client.Close)
		l.Infof(ctx, "Session store: redis at %s (ttl %s)", cfg.RedisAddr, cfg.TTL)
		return redisRepo.New(client, cfg.RedisPrefix, cfg.TTL, l), nil
	}
	return nil, fmt.Errorf("unknown session backend %q", cfg.Backend)
}

// SessionCheck reads a session that never exists. A store that answers
// with not-found is reachable.
func SessionCheck(sessions repository.SessionRepository) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		_, err := sessions.Get(ctx, readinessSessionID)
		if err == nil || errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
}

func buildCalendar(ctx context.Context, cfg *config.Config, loc *time.Location, l log.Logger) repository.CalendarRepository {
	if cfg.GoogleCalendar.CredentialsPath == "" {
		l.Warn(ctx, "Google Calendar not configured, calendar features disabled")
		return nil
	}
	client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
	if err != nil {
		l.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		return nil
	}
	l.Info(ctx, "✅ Google Calendar initialized")
	return gcal.New(client, gcal.Config{CalendarID: cfg.GoogleCalendar.CalendarID, Timezone: loc.String()})
}

func buildPlaces(ctx context.Context, cfg config.KakaoConfig, l log.Logger) repository.PlaceRepository {
	if cfg.APIKey == "" {
		l.Warn(ctx, "Kakao API key not configured, plans will not be enriched with places")
		return nil
	}
	client, err := kakaomap.New(kakaomap.Config{APIKey: cfg.APIKey, BaseURL: cfg.BaseURL, CacheTTL: cfg.CacheTTL})
	if err != nil {
		l.Warnf(ctx, "Kakao Local not available (optional): %v", err)
		return nil
	}
	l.Info(ctx, "✅ Kakao Local initialized")
	return kakao.New(client, planner.PlacesPerPreference)
}
