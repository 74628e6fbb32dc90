package repository

import (
	"context"

	"travel-planner/internal/travel"
)

// SessionRepository persists conversation state between turns.
type SessionRepository interface {
	Get(ctx context.Context, id string) (travel.SessionState, error)
	Save(ctx context.Context, state travel.SessionState) error
	Delete(ctx context.Context, id string) error
}

// CalendarRepository is the calendar collaborator.
type CalendarRepository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (travel.Event, error)
	SearchEvents(ctx context.Context, opt SearchEventsOptions) ([]travel.Event, error)
	UpdateEvent(ctx context.Context, opt UpdateEventOptions) (travel.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

// PlaceRepository is the map lookup collaborator. It is best-effort:
// callers treat an error like an empty result.
type PlaceRepository interface {
	SearchByPreference(ctx context.Context, region, preference string) ([]travel.Place, error)
}
