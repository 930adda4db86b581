package gcalendar_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"google.golang.org/api/option"

	"home-pa-scheduler/pkg/gcalendar"
)

func TestListDayEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("Skips Events Without Timed Bounds", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"items": [
					{
						"id": "standup",
						"summary": "Standup",
						"location": "workplace",
						"start": {"dateTime": "2024-05-15T09:00:00Z"},
						"end": {"dateTime": "2024-05-15T10:00:00Z"}
					},
					{
						"id": "all-day",
						"summary": "Holiday",
						"start": {"date": "2024-05-15"},
						"end": {"date": "2024-05-16"}
					},
					{
						"id": "no-end",
						"summary": "Broken",
						"start": {"dateTime": "2024-05-15T11:00:00Z"}
					}
				]
			}`))
		}))
		defer server.Close()

		client, err := gcalendar.NewClientFromHTTP(ctx, server.Client(), option.WithEndpoint(server.URL))
		if err != nil {
			t.Fatalf("failed to create client: %v", err)
		}

		dayStart := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
		events, err := client.ListDayEvents(ctx, "primary", dayStart, dayStart.Add(24*time.Hour))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 1 {
			t.Fatalf("expected only the fully timed event, got %d: %+v", len(events), events)
		}
		ev := events[0]
		if ev.ID != "standup" || ev.Location != "workplace" {
			t.Errorf("unexpected event: %+v", ev)
		}
		if !ev.StartTime.Equal(dayStart.Add(9*time.Hour)) || !ev.EndTime.Equal(dayStart.Add(10*time.Hour)) {
			t.Errorf("unexpected bounds: %v - %v", ev.StartTime, ev.EndTime)
		}
	})

	t.Run("Service Error Surfaces", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error": {"code": 403, "message": "quota exceeded"}}`))
		}))
		defer server.Close()

		client, err := gcalendar.NewClientFromHTTP(ctx, server.Client(), option.WithEndpoint(server.URL))
		if err != nil {
			t.Fatalf("failed to create client: %v", err)
		}

		dayStart := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
		if _, err := client.ListDayEvents(ctx, "primary", dayStart, dayStart.Add(24*time.Hour)); err == nil {
			t.Errorf("expected an error for a 403 response")
		}
	})
}
