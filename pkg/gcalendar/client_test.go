package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"quick-task-management/pkg/gcalendar"
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

func newTestClient(t *testing.T, handler http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

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

func TestCalendarClientCredentials(t *testing.T) {
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
	dir := t.TempDir()
	tokenPath := filepath.Join(dir, "token.json")

	t.Run("Initialize with broken JWT/OAuth config", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`), tokenPath)
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Initialize from installed app config", func(t *testing.T) {
		os.WriteFile(tokenPath, []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0o600)
		defer os.Remove(tokenPath)

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath)
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Initialize from installed app config bad token", func(t *testing.T) {
		os.WriteFile(tokenPath, []byte(`{"broken": true`), 0o600)
		defer os.Remove(tokenPath)

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath)
		if err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("Initialize from installed app config without token", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), filepath.Join(dir, "missing.json"))
		if err == nil {
			t.Fatalf("expected missing token error")
		}
	})

	t.Run("Initialize from File", func(t *testing.T) {
		credsPath := filepath.Join(dir, "creds.json")
		os.WriteFile(credsPath, []byte(`{"broken":true}`), 0o600)

		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), credsPath, tokenPath)
		if err == nil {
			t.Errorf("expected failure loading broken file")
		}

		_, err = gcalendar.NewClientFromCredentialsFile(context.Background(), filepath.Join(dir, "nope.json"), tokenPath)
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})

	t.Run("OAuth config", func(t *testing.T) {
		cfg, err := gcalendar.OAuthConfigFromJSON([]byte(mockCreds))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.RedirectURL != "http://localhost" || cfg.ClientSecret != "test-secret" {
			t.Errorf("unexpected config: %+v", cfg)
		}
	})
}

func TestCreateEvent(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
			json.NewDecoder(r.Body).Decode(&body)
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"id": "event-123",
				"htmlLink": "https://calendar.google.com/event-uri",
				"status": "confirmed"
			}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	start := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:              "Pay water bill",
		StartTime:            start,
		EndTime:              start.Add(30 * time.Minute),
		Timezone:             "UTC",
		PopupReminderMinutes: []int64{0},
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	if event.ID != "event-123" || event.HtmlLink != "https://calendar.google.com/event-uri" {
		t.Errorf("unexpected event: %+v", event)
	}

	reminders, ok := body["reminders"].(map[string]any)
	if !ok {
		t.Fatalf("expected reminders in request body, got %v", body)
	}
	if reminders["useDefault"] != false {
		t.Errorf("expected useDefault=false, got %v", reminders["useDefault"])
	}
	overrides, _ := reminders["overrides"].([]any)
	if len(overrides) != 1 {
		t.Fatalf("expected one override, got %v", reminders["overrides"])
	}
	override := overrides[0].(map[string]any)
	if override["method"] != "popup" || override["minutes"] != float64(0) {
		t.Errorf("unexpected override: %v", override)
	}
}

func TestCreateEventError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{CalendarID: "primary"})
	if err == nil {
		t.Fatalf("expected create event error")
	}
}

func TestDeleteEvent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete && r.URL.Path == "/calendar/v3/calendars/work/events/event-123" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	if err := client.DeleteEvent(context.Background(), "work", "event-123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := client.DeleteEvent(context.Background(), "work", "event-404"); err == nil {
		t.Fatalf("expected delete error")
	}
}
