package planner

import (
	"time"

	"travel-planner/internal/travel/completion"
	"travel-planner/internal/travel/repository"
	"travel-planner/pkg/datemath"
	pkgLog "travel-planner/pkg/log"
)

// Planner generates and refines itineraries.
type Planner struct {
	llm      completion.Service
	places   repository.PlaceRepository
	dateMath *datemath.Parser
	l        pkgLog.Logger
	window   int
	now      func() time.Time
}

// New creates a Planner. places may be nil to disable enrichment.
func New(llm completion.Service, places repository.PlaceRepository, dateMath *datemath.Parser, l pkgLog.Logger) *Planner {
	return &Planner{
		llm:      llm,
		places:   places,
		dateMath: dateMath,
		l:        l,
		window:   DefaultWindow,
		now:      time.Now,
	}
}
