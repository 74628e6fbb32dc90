package calendarflow

import (
	"time"

	"travel-planner/internal/travel/completion"
	"travel-planner/internal/travel/repository"
	"travel-planner/pkg/datemath"
	pkgLog "travel-planner/pkg/log"
)

// Machine runs the calendar sub-machines. calendar may be nil when no
// calendar is configured; every step then ends in an error reply.
type Machine struct {
	calendar repository.CalendarRepository
	llm      completion.Service
	dates    *datemath.Parser
	l        pkgLog.Logger
	loc      *time.Location
	now      func() time.Time
}

// New creates a Machine. Dates in requested changes are read by dates,
// whose timezone also anchors calendar lookups.
func New(calendar repository.CalendarRepository, llm completion.Service, dates *datemath.Parser, l pkgLog.Logger) *Machine {
	if dates == nil {
		dates, _ = datemath.NewParser("UTC")
	}
	return &Machine{
		calendar: calendar,
		llm:      llm,
		dates:    dates,
		l:        l,
		loc:      dates.Location(),
		now:      time.Now,
	}
}
