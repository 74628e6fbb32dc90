package planner

import (
	"time"

	"travel-planner/internal/travel"
)

// PlaceGroup is the lookup result for one preference.
type PlaceGroup struct {
	Preference string
	Places     []travel.Place
}

// Registration is what register_calendar writes for a plan.
type Registration struct {
	Summary     string
	Description string
	Location    string
	StartDate   time.Time
	EndDate     time.Time // inclusive
}
