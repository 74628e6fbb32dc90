package gcalendar

import "time"

const (
	// DateLayout is the all-day event date format.
	DateLayout = "2006-01-02"

	// DefaultMaxResults bounds a list call when the caller sets no limit.
	DefaultMaxResults = 50
)

// CreateEventRequest is the input for creating an all-day Google Calendar event.
type CreateEventRequest struct {
	CalendarID      string
	Summary         string
	Description     string
	Location        string
	StartDate       time.Time
	EndDate         time.Time // inclusive
	Timezone        string    // e.g. "Asia/Seoul"
	ReminderMinutes int64     // popup reminder; 0 keeps calendar defaults
}

// UpdateEventRequest patches an existing event. Nil fields are left untouched.
type UpdateEventRequest struct {
	CalendarID  string
	EventID     string
	Summary     *string
	Description *string
	Location    *string
	StartDate   *time.Time
	EndDate     *time.Time // inclusive
	Timezone    string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	HtmlLink    string
	StartDate   string // YYYY-MM-DD for all-day events, RFC3339 otherwise
	EndDate     string
	AllDay      bool
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	Query      string
	MaxResults int64
}
