package model

import "time"

// TaskType classifies the urgency semantics of a memo.
type TaskType string

const (
	TaskTypeDeadline TaskType = "deadline" // hard due date, can become mandatory
	TaskTypeBacklog  TaskType = "backlog"  // neglected item, urgency grows with idle time
	TaskTypeRoutine  TaskType = "routine"  // recurring goal tracked per period
)

// ImportanceLabel is the coarse user/enrichment importance rating.
type ImportanceLabel string

const (
	ImportanceLow    ImportanceLabel = "low"
	ImportanceMedium ImportanceLabel = "medium"
	ImportanceHigh   ImportanceLabel = "high"
)

// CompletionState tracks the lifecycle of a task.
type CompletionState string

const (
	CompletionNotStarted CompletionState = "not_started"
	CompletionInProgress CompletionState = "in_progress"
	CompletionCompleted  CompletionState = "completed"
)

// RecurrencePeriod is the window over which a routine goal is tracked.
type RecurrencePeriod string

const (
	PeriodDay   RecurrencePeriod = "day"
	PeriodWeek  RecurrencePeriod = "week"
	PeriodMonth RecurrencePeriod = "month"
)

// LocationNoPreference means a task fits any gap regardless of its label.
const LocationNoPreference = "no_preference"

// RecurrenceGoal is a routine task's target: Count completions per Period.
type RecurrenceGoal struct {
	Count  int              `json:"count"`
	Period RecurrencePeriod `json:"period"`
}

// TaskStatus is the mutable progress state attached to a task.
// CompletionsThisPeriod and PeriodStartDate are meaningful for routine tasks only.
type TaskStatus struct {
	TimeSpentMinutes      int             `json:"time_spent_minutes"`
	CompletionState       CompletionState `json:"completion_state"`
	CompletionsThisPeriod int             `json:"completions_this_period"`
	PeriodStartDate       time.Time       `json:"period_start_date"`
}

// Task represents a pending memo owned by the caller's store.
// The engine reads it, scores it, and returns updated copies; it never deletes.
type Task struct {
	ID                   string          `json:"id"`
	Title                string          `json:"title"`
	Type                 TaskType        `json:"type"`
	CreatedAt            time.Time       `json:"created_at"`
	Deadline             *time.Time      `json:"deadline,omitempty"`        // deadline type only
	RecurrenceGoal       *RecurrenceGoal `json:"recurrence_goal,omitempty"` // routine type only
	LocationPreference   string          `json:"location_preference"`
	Genre                string          `json:"genre,omitempty"`
	Importance           ImportanceLabel `json:"importance,omitempty"` // empty = unset, scored as medium
	SessionMinutes       int             `json:"session_minutes,omitempty"`
	TotalExpectedMinutes int             `json:"total_expected_minutes,omitempty"`
	LastActivity         *time.Time      `json:"last_activity,omitempty"`
	Status               TaskStatus      `json:"status"`
}

// IsActive reports whether the task should still be scored and scheduled.
func (t Task) IsActive() bool {
	return t.Status.CompletionState != CompletionCompleted
}
