package datemath

import "time"

// Validation reports whether a date's stated weekday matches the calendar.
// Corrected is empty when the date is valid.
type Validation struct {
	IsValid   bool
	Original  string
	Corrected string
}

// Range is an inclusive span of calendar days.
type Range struct {
	Start time.Time
	End   time.Time
}
