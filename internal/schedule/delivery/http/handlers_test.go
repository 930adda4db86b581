package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"home-pa-scheduler/internal/model"
	"home-pa-scheduler/internal/schedule"
	"home-pa-scheduler/pkg/response"
)

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

type mockUseCase struct {
	generateFunc func(input schedule.GenerateInput) (schedule.GenerateOutput, error)
	sessionFunc  func(input schedule.SessionInput) (schedule.SessionOutput, error)
}

func (m *mockUseCase) GenerateSchedule(ctx context.Context, input schedule.GenerateInput) (schedule.GenerateOutput, error) {
	return m.generateFunc(input)
}

func (m *mockUseCase) MarkSessionComplete(ctx context.Context, input schedule.SessionInput) (schedule.SessionOutput, error) {
	return m.sessionFunc(input)
}

func newTestRouter(uc schedule.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(&mockLogger{}, uc)
	r := gin.New()
	api := r.Group("/api/v1/schedule")
	api.POST("/generate", h.Generate)
	api.POST("/session", h.MarkSession)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockUseCase{generateFunc: func(input schedule.GenerateInput) (schedule.GenerateOutput, error) {
			if len(input.Tasks) != 1 || input.Tasks[0].ID != "memo-1" {
				t.Errorf("unexpected input: %+v", input)
			}
			return schedule.GenerateOutput{
				Schedule: model.ScheduleResult{
					Scheduled: []model.ScheduledBlock{{
						SuggestionID: "s1", MemoID: "memo-1", GapID: "g1",
						StartTime: "09:00", EndTime: "09:30",
					}},
					TotalScheduledMinutes: 30,
				},
				Summary: model.PipelineSummary{TasksProcessed: 1, ActiveTasks: 1},
			}, nil
		}}

		w := doJSON(t, newTestRouter(uc), "/api/v1/schedule/generate", generateReq{
			Tasks: []model.Task{{ID: "memo-1", Title: "Read", Type: model.TaskTypeBacklog}},
			Gaps:  []model.Gap{{ID: "g1", Start: "09:00", End: "10:00"}},
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.ErrorCode != 0 {
			t.Errorf("unexpected error code %d", resp.ErrorCode)
		}
	})

	t.Run("Malformed Body", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newTestRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/schedule/generate", bytes.NewReader([]byte("not json")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestMarkSessionHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockUseCase{sessionFunc: func(input schedule.SessionInput) (schedule.SessionOutput, error) {
			task := input.Task
			task.Status.TimeSpentMinutes += input.MinutesSpent
			return schedule.SessionOutput{Task: task, IsNowComplete: false}, nil
		}}

		w := doJSON(t, newTestRouter(uc), "/api/v1/schedule/session", sessionReq{
			Task:         model.Task{ID: "memo-1", Type: model.TaskTypeBacklog},
			MinutesSpent: 25,
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("Domain Error Maps To Bad Request", func(t *testing.T) {
		uc := &mockUseCase{sessionFunc: func(input schedule.SessionInput) (schedule.SessionOutput, error) {
			return schedule.SessionOutput{}, schedule.ErrMissingTaskID
		}}

		w := doJSON(t, newTestRouter(uc), "/api/v1/schedule/session", sessionReq{MinutesSpent: 25})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Unknown Error Maps To Internal", func(t *testing.T) {
		uc := &mockUseCase{sessionFunc: func(input schedule.SessionInput) (schedule.SessionOutput, error) {
			return schedule.SessionOutput{}, context.DeadlineExceeded
		}}

		w := doJSON(t, newTestRouter(uc), "/api/v1/schedule/session", sessionReq{
			Task:         model.Task{ID: "memo-1"},
			MinutesSpent: 25,
		})
		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
	})
}
