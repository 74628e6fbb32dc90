package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"travel-planner/internal/travel"
	"travel-planner/internal/travel/repository"
)

const (
	DefaultMaxSessions = 10000
	DefaultTTL         = 24 * time.Hour
)

type implRepository struct {
	sessions *expirable.LRU[string, travel.SessionState]
}

// New creates an in-process session store. Idle sessions expire after ttl and
// the least recently used ones are evicted past maxSessions.
func New(maxSessions int, ttl time.Duration) repository.SessionRepository {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implRepository{
		sessions: expirable.NewLRU[string, travel.SessionState](maxSessions, nil, ttl),
	}
}

func (r *implRepository) Get(ctx context.Context, id string) (travel.SessionState, error) {
	s, ok := r.sessions.Get(id)
	if !ok {
		return travel.SessionState{}, repository.ErrNotFound
	}
	return s.Clone(), nil
}

func (r *implRepository) Save(ctx context.Context, state travel.SessionState) error {
	r.sessions.Add(state.ID, state.Clone())
	return nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	if !r.sessions.Remove(id) {
		return repository.ErrNotFound
	}
	return nil
}
