package repository

import "time"

// CreateEventOptions holds the parameters for registering a trip.
type CreateEventOptions struct {
	Summary     string
	Description string
	Location    string
	StartDate   time.Time
	EndDate     time.Time // inclusive
}

// SearchEventsOptions holds the parameters for a calendar lookup.
type SearchEventsOptions struct {
	Query   string    // free-text match; empty lists everything in range
	TimeMin time.Time // zero means unbounded
	TimeMax time.Time
	Limit   int
}

// UpdateEventOptions patches an event. Nil fields are left unchanged.
type UpdateEventOptions struct {
	EventID     string
	Summary     *string
	Description *string
	Location    *string
	StartDate   *time.Time
	EndDate     *time.Time // inclusive
}
