package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

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

func TestCalendarClient(t *testing.T) {
	// Constructing fake credentials for local parsing flows
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("Initialize with broken JWT/OAuth config", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Initialize from installed app config", func(t *testing.T) {
		// Native oauth load requires token.json
		os.WriteFile("token.json", []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0644)
		defer os.Remove("token.json")

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Initialize from installed app config bad token", func(t *testing.T) {
		os.WriteFile("token.json", []byte(`{"broken": true`), 0644)
		defer os.Remove("token.json")

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("Initialize from File", func(t *testing.T) {
		tmpFile, _ := os.CreateTemp("", "creds.json")
		defer os.Remove(tmpFile.Name())
		tmpFile.WriteString(`{"broken":true}`)
		tmpFile.Close()

		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), tmpFile.Name())
		if err == nil {
			t.Errorf("expected failure loading broken file")
		}

		_, err = gcalendar.NewClientFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json")
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})

	t.Run("Create All-Day Event E2E", func(t *testing.T) {
		var body map[string]any
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
				json.NewDecoder(r.Body).Decode(&body)
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"id": "event-123",
					"summary": "제주도 여행",
					"htmlLink": "https://calendar.google.com/event-uri",
					"start": {"date": "2025-06-07"},
					"end": {"date": "2025-06-10"}
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer ts.Close()

		client := newTestClient(t, ts)

		start := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
		event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			Summary:         "제주도 여행",
			Description:     "Desc",
			Location:        "제주도",
			StartDate:       start,
			EndDate:         start.AddDate(0, 0, 2),
			Timezone:        "Asia/Seoul",
			ReminderMinutes: 1440,
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
		if event.HtmlLink != "https://calendar.google.com/event-uri" || !event.AllDay {
			t.Errorf("unexpected event: %+v", event)
		}

		end := body["end"].(map[string]any)
		if end["date"] != "2025-06-10" {
			t.Errorf("expected exclusive end date 2025-06-10, got %v", end["date"])
		}
		reminders := body["reminders"].(map[string]any)
		overrides := reminders["overrides"].([]any)
		if overrides[0].(map[string]any)["minutes"] != float64(1440) {
			t.Errorf("expected 1440 minute popup, got %v", overrides[0])
		}
	})

	t.Run("List Events E2E", func(t *testing.T) {
		var query string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/test-fail/events" && r.Method == http.MethodGet {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodGet {
				query = r.URL.Query().Get("q")
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"items": [
						{
							"id": "event-123",
							"summary": "부산 여행",
							"location": "부산",
							"start": { "date": "2024-05-01" },
							"end": { "date": "2024-05-03" }
						},
						{
							"id": "event-456",
							"summary": "회의",
							"start": { "dateTime": "2024-05-02T10:00:00+09:00" },
							"end": { "dateTime": "2024-05-02T11:00:00+09:00" }
						}
					]
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer ts.Close()

		client := newTestClient(t, ts)

		events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
			TimeMin: time.Now(),
			TimeMax: time.Now().Add(time.Hour * 24),
			Query:   "부산",
		})
		if err != nil {
			t.Fatalf("failed to list events: %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(events))
		}
		if query != "부산" {
			t.Errorf("expected q=부산, got %q", query)
		}
		if events[0].StartDate != "2024-05-01" || !events[0].AllDay {
			t.Errorf("unexpected all-day event: %+v", events[0])
		}
		if events[1].AllDay || events[1].StartDate != "2024-05-02T10:00:00+09:00" {
			t.Errorf("unexpected timed event: %+v", events[1])
		}

		_, err = client.ListEvents(context.Background(), gcalendar.ListEventsRequest{CalendarID: "test-fail"})
		if err == nil {
			t.Fatalf("expected api error on test-fail")
		}
	})

	t.Run("Update and Delete Event E2E", func(t *testing.T) {
		var patchBody map[string]any
		deleted := 0
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.URL.Path == "/calendar/v3/calendars/primary/events/event-123" && r.Method == http.MethodPatch:
				json.NewDecoder(r.Body).Decode(&patchBody)
				w.Write([]byte(`{"id": "event-123", "summary": "부산여행", "start": {"date": "2025-12-25"}, "end": {"date": "2025-12-26"}}`))
			case r.URL.Path == "/calendar/v3/calendars/primary/events/event-123" && r.Method == http.MethodDelete:
				deleted++
				w.WriteHeader(http.StatusNoContent)
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer ts.Close()

		client := newTestClient(t, ts)

		summary := "부산여행"
		start := time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)
		event, err := client.UpdateEvent(context.Background(), gcalendar.UpdateEventRequest{
			EventID:   "event-123",
			Summary:   &summary,
			StartDate: &start,
		})
		if err != nil {
			t.Fatalf("failed to update event: %v", err)
		}
		if event.Summary != "부산여행" {
			t.Errorf("unexpected summary: %s", event.Summary)
		}
		if _, ok := patchBody["location"]; ok {
			t.Errorf("untouched fields must not be sent: %v", patchBody)
		}
		if patchBody["start"].(map[string]any)["date"] != "2025-12-25" {
			t.Errorf("unexpected start patch: %v", patchBody["start"])
		}

		if err := client.DeleteEvent(context.Background(), "", "event-123"); err != nil {
			t.Fatalf("failed to delete: %v", err)
		}
		if deleted != 1 {
			t.Errorf("expected 1 delete call, got %d", deleted)
		}
		if err := client.DeleteEvent(context.Background(), "", "missing"); err == nil {
			t.Error("expected error deleting missing event")
		}
		if _, err := client.UpdateEvent(context.Background(), gcalendar.UpdateEventRequest{}); err == nil {
			t.Error("expected error without event id")
		}
	})

	t.Run("Create Event Error E2E", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		client := newTestClient(t, ts)
		_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			Summary:   "Title",
			StartDate: time.Now(),
			EndDate:   time.Now(),
		})
		if err == nil {
			t.Fatal("expected error on 500")
		}
	})
}

func newTestClient(t *testing.T, ts *httptest.Server) *gcalendar.Client {
	t.Helper()
	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}
	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}
