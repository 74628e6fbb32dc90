package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"travel-planner/internal/travel"
	"travel-planner/internal/travel/repository"
	pkgLog "travel-planner/pkg/log"
)

const (
	DefaultKeyPrefix = "travel:session:"
	DefaultTTL       = 24 * time.Hour
)

type implRepository struct {
	client goredis.UniversalClient
	prefix string
	ttl    time.Duration
	l      pkgLog.Logger
}

// New creates a Redis-backed session store. Each session is one JSON value
// whose TTL is refreshed on every save.
func New(client goredis.UniversalClient, prefix string, ttl time.Duration, l pkgLog.Logger) repository.SessionRepository {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implRepository{client: client, prefix: prefix, ttl: ttl, l: l}
}

func (r *implRepository) key(id string) string {
	return r.prefix + id
}

func (r *implRepository) Get(ctx context.Context, id string) (travel.SessionState, error) {
	raw, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return travel.SessionState{}, repository.ErrNotFound
	}
	if err != nil {
		return travel.SessionState{}, fmt.Errorf("redis get session %s: %w", id, err)
	}

	var s travel.SessionState
	if err := json.Unmarshal(raw, &s); err != nil {
		r.l.Errorf(ctx, "redis repository: corrupt session %s: %v", id, err)
		return travel.SessionState{}, fmt.Errorf("decode session %s: %w", id, err)
	}
	return s, nil
}

func (r *implRepository) Save(ctx context.Context, state travel.SessionState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", state.ID, err)
	}
	if err := r.client.Set(ctx, r.key(state.ID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set session %s: %w", state.ID, err)
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	n, err := r.client.Del(ctx, r.key(id)).Result()
	if err != nil {
		return fmt.Errorf("redis delete session %s: %w", id, err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
