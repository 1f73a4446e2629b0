package observability

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func sampleAlert(severity AlertSeverity) Alert {
	return Alert{
		ID:          "overdue-backlog",
		Condition:   "overdue_backlog",
		Severity:    severity,
		Message:     "4 open tasks are past their due date, exceeding the maximum of 3",
		TriggeredAt: time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC),
	}
}

func TestNotifySendsWebhook(t *testing.T) {
	var received slackMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &received); err != nil {
			t.Errorf("decoding webhook body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := NewSlackNotifier(server.URL)
	if err := notifier.Notify([]Alert{sampleAlert(SeverityHigh)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(received.Blocks) < 2 {
		t.Fatalf("expected header and section blocks, got %d", len(received.Blocks))
	}
	if received.Blocks[0].Text == nil || received.Blocks[0].Text.Text != "Aura Alert Summary" {
		t.Errorf("expected summary header, got %+v", received.Blocks[0])
	}
	section := received.Blocks[1]
	if section.Text == nil || !strings.Contains(section.Text.Text, "[HIGH]") {
		t.Errorf("expected severity in section text, got %+v", section)
	}
}

func TestNotifyEmptyAlertsSkipsRequest(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	notifier := NewSlackNotifier(server.URL)
	if err := notifier.Notify(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if called {
		t.Error("expected no request for empty alerts")
	}
}

func TestNotifyNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	notifier := NewSlackNotifier(server.URL)
	if err := notifier.Notify([]Alert{sampleAlert(SeverityLow)}); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
