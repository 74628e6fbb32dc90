package travel

import "errors"

// Domain-specific errors for the travel package.
var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrEmptyInput          = errors.New("input text is empty")
	ErrExtractionParse     = errors.New("failed to parse extraction result")
	ErrPlanParse           = errors.New("failed to parse plan")
	ErrNoPlan              = errors.New("no plan artifact")
	ErrCalendarUnavailable = errors.New("calendar is not configured")
	ErrNoEvents            = errors.New("no matching calendar events")
)
