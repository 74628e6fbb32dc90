package gcal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"travel-planner/internal/travel/repository"
	"travel-planner/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestRepo(t *testing.T, h http.HandlerFunc) repository.CalendarRepository {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	hc := ts.Client()
	hc.Transport = &rewriteTransport{Transport: hc.Transport, Host: strings.TrimPrefix(ts.URL, "http://")}
	client, err := gcalendar.NewClientFromHTTP(context.Background(), hc)
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	return New(client, Config{})
}

func TestCreateEvent_DefaultsAndTruncation(t *testing.T) {
	var body map[string]any
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&body)
		w.Write([]byte(`{"id":"e1","summary":"제주도 여행","htmlLink":"https://cal/e1","start":{"date":"2025-06-07"},"end":{"date":"2025-06-10"}}`))
	})

	start := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	ev, err := repo.CreateEvent(context.Background(), repository.CreateEventOptions{
		Summary:     "제주도 여행",
		Description: strings.Repeat("가", 1500),
		Location:    "제주도",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 2),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if ev.EndDate != "2025-06-09" {
		t.Errorf("expected inclusive end 2025-06-09, got %s", ev.EndDate)
	}
	if ev.HtmlLink != "https://cal/e1" {
		t.Errorf("unexpected link %s", ev.HtmlLink)
	}

	desc := body["description"].(string)
	if n := len([]rune(desc)); n != MaxDescriptionRunes {
		t.Errorf("expected description cut to %d runes, got %d", MaxDescriptionRunes, n)
	}
	if tz := body["start"].(map[string]any)["timeZone"]; tz != DefaultTimezone {
		t.Errorf("expected default timezone, got %v", tz)
	}
	overrides := body["reminders"].(map[string]any)["overrides"].([]any)
	if overrides[0].(map[string]any)["minutes"] != float64(DefaultReminderMinutes) {
		t.Errorf("unexpected reminder %v", overrides[0])
	}
}

func TestSearchUpdateDelete(t *testing.T) {
	var gotQuery string
	var deleted bool
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			gotQuery = r.URL.Query().Get("q")
			w.Write([]byte(`{"items":[{"id":"e1","summary":"부산 여행","start":{"date":"2025-07-01"},"end":{"date":"2025-07-04"}},{"id":"e2","summary":"회의","start":{"dateTime":"2025-07-02T10:00:00+09:00"},"end":{"dateTime":"2025-07-02T11:00:00+09:00"}}]}`))
		case http.MethodPatch:
			w.Write([]byte(`{"id":"e1","summary":"부산 먹방 여행","start":{"date":"2025-07-01"},"end":{"date":"2025-07-04"}}`))
		case http.MethodDelete:
			deleted = true
			w.WriteHeader(http.StatusNoContent)
		}
	})
	ctx := context.Background()

	events, err := repo.SearchEvents(ctx, repository.SearchEventsOptions{Query: "부산"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if gotQuery != "부산" || len(events) != 2 {
		t.Fatalf("unexpected search: q=%s events=%d", gotQuery, len(events))
	}
	if events[0].EndDate != "2025-07-03" {
		t.Errorf("all-day end should be inclusive, got %s", events[0].EndDate)
	}
	if events[1].EndDate != "2025-07-02T11:00:00+09:00" {
		t.Errorf("timed end should be untouched, got %s", events[1].EndDate)
	}

	summary := "부산 먹방 여행"
	ev, err := repo.UpdateEvent(ctx, repository.UpdateEventOptions{EventID: "e1", Summary: &summary})
	if err != nil || ev.Summary != summary {
		t.Fatalf("update: %v %+v", err, ev)
	}

	if err := repo.DeleteEvent(ctx, "e1"); err != nil || !deleted {
		t.Fatalf("delete: %v", err)
	}
}
