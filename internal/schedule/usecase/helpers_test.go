package usecase

import (
	"context"
	"testing"
	"time"

	"home-pa-scheduler/internal/model"
	"home-pa-scheduler/pkg/enrich"
	"home-pa-scheduler/pkg/gcalendar"
)

// Fixed reference time for deterministic tests: Wednesday, 2024-05-15 09:00 UTC.
var testNow = time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock enrichment client
type mockEnricher struct {
	enrichFunc func(req enrich.Request) (*enrich.Response, error)
}

func (m *mockEnricher) Enrich(ctx context.Context, req enrich.Request) (*enrich.Response, error) {
	if m.enrichFunc == nil {
		return &enrich.Response{}, nil
	}
	return m.enrichFunc(req)
}

// Mock calendar source
type mockCalendar struct {
	listFunc func(dayStart, dayEnd time.Time) ([]gcalendar.Event, error)
}

func (m *mockCalendar) ListDayEvents(ctx context.Context, calendarID string, dayStart, dayEnd time.Time) ([]gcalendar.Event, error) {
	if m.listFunc == nil {
		return nil, nil
	}
	return m.listFunc(dayStart, dayEnd)
}

func newTestUseCase(t *testing.T) *implUseCase {
	t.Helper()
	uc, err := New(&mockLogger{}, nil, nil, Config{Timezone: "UTC"})
	if err != nil {
		t.Fatalf("failed to build usecase: %v", err)
	}
	return uc
}

func backlogTask(id string, minutes int) model.Task {
	return model.Task{
		ID:             id,
		Title:          id,
		Type:           model.TaskTypeBacklog,
		CreatedAt:      testNow.AddDate(0, 0, -7),
		SessionMinutes: minutes,
	}
}

func deadlineTask(id string, minutes int, deadline time.Time) model.Task {
	return model.Task{
		ID:             id,
		Title:          id,
		Type:           model.TaskTypeDeadline,
		CreatedAt:      testNow.AddDate(0, 0, -7),
		Deadline:       &deadline,
		SessionMinutes: minutes,
	}
}

func routineTask(id string, minutes, goalCount int, period model.RecurrencePeriod) model.Task {
	return model.Task{
		ID:             id,
		Title:          id,
		Type:           model.TaskTypeRoutine,
		CreatedAt:      testNow.AddDate(0, 0, -30),
		RecurrenceGoal: &model.RecurrenceGoal{Count: goalCount, Period: period},
		SessionMinutes: minutes,
		Status:         model.TaskStatus{PeriodStartDate: testNow.Add(-time.Hour)},
	}
}

func gap(id, start, end string, minutes int) model.Gap {
	return model.Gap{ID: id, Start: start, End: end, DurationMinutes: minutes}
}

func suggestion(id string, need, importance float64, minutes int, pref string) model.Suggestion {
	return model.Suggestion{
		ID:                 id,
		MemoID:             id,
		Need:               need,
		Importance:         importance,
		DurationMinutes:    minutes,
		LocationPreference: pref,
	}
}
