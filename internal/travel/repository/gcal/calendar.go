package gcal

import (
	"context"
	"time"

	"travel-planner/internal/travel"
	"travel-planner/internal/travel/repository"
	"travel-planner/pkg/gcalendar"
	"travel-planner/pkg/textutil"
)

const (
	DefaultTimezone        = "Asia/Seoul"
	DefaultReminderMinutes = 1440
	MaxDescriptionRunes    = 1000
)

// Config tunes how trips are written to the calendar.
type Config struct {
	CalendarID      string
	Timezone        string
	ReminderMinutes int64
}

type implRepository struct {
	client *gcalendar.Client
	cfg    Config
}

// New creates a CalendarRepository on top of Google Calendar.
func New(client *gcalendar.Client, cfg Config) repository.CalendarRepository {
	if cfg.Timezone == "" {
		cfg.Timezone = DefaultTimezone
	}
	if cfg.ReminderMinutes == 0 {
		cfg.ReminderMinutes = DefaultReminderMinutes
	}
	return &implRepository{client: client, cfg: cfg}
}

func (r *implRepository) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (travel.Event, error) {
	created, err := r.client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:      r.cfg.CalendarID,
		Summary:         opt.Summary,
		Description:     textutil.Truncate(opt.Description, MaxDescriptionRunes, ""),
		Location:        opt.Location,
		StartDate:       opt.StartDate,
		EndDate:         opt.EndDate,
		Timezone:        r.cfg.Timezone,
		ReminderMinutes: r.cfg.ReminderMinutes,
	})
	if err != nil {
		return travel.Event{}, err
	}
	return toTravelEvent(*created), nil
}

func (r *implRepository) SearchEvents(ctx context.Context, opt repository.SearchEventsOptions) ([]travel.Event, error) {
	events, err := r.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: r.cfg.CalendarID,
		TimeMin:    opt.TimeMin,
		TimeMax:    opt.TimeMax,
		Query:      opt.Query,
		MaxResults: int64(opt.Limit),
	})
	if err != nil {
		return nil, err
	}
	out := make([]travel.Event, 0, len(events))
	for _, e := range events {
		out = append(out, toTravelEvent(e))
	}
	return out, nil
}

func (r *implRepository) UpdateEvent(ctx context.Context, opt repository.UpdateEventOptions) (travel.Event, error) {
	updated, err := r.client.UpdateEvent(ctx, gcalendar.UpdateEventRequest{
		CalendarID:  r.cfg.CalendarID,
		EventID:     opt.EventID,
		Summary:     opt.Summary,
		Description: opt.Description,
		Location:    opt.Location,
		StartDate:   opt.StartDate,
		EndDate:     opt.EndDate,
		Timezone:    r.cfg.Timezone,
	})
	if err != nil {
		return travel.Event{}, err
	}
	return toTravelEvent(*updated), nil
}

func (r *implRepository) DeleteEvent(ctx context.Context, eventID string) error {
	return r.client.DeleteEvent(ctx, r.cfg.CalendarID, eventID)
}

// toTravelEvent reports all-day end dates inclusively, the way they were entered.
func toTravelEvent(e gcalendar.Event) travel.Event {
	end := e.EndDate
	if e.AllDay {
		if t, err := time.Parse(gcalendar.DateLayout, e.EndDate); err == nil {
			end = t.AddDate(0, 0, -1).Format(gcalendar.DateLayout)
		}
	}
	return travel.Event{
		ID:          e.ID,
		Summary:     e.Summary,
		StartDate:   e.StartDate,
		EndDate:     end,
		Location:    e.Location,
		Description: e.Description,
		HtmlLink:    e.HtmlLink,
	}
}
