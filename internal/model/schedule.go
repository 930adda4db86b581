package model

// Suggestion is one scored, schedulable candidate derived from an active task.
// Ephemeral: recomputed on every pipeline run, never persisted.
type Suggestion struct {
	ID                 string  `json:"id"`
	MemoID             string  `json:"memo_id"`
	Need               float64 `json:"need"`       // >= 1.0 means mandatory today
	Importance         float64 `json:"importance"` // (0,1]
	DurationMinutes    int     `json:"duration_minutes"`
	LocationPreference string  `json:"location_preference"`
}

// ScheduledBlock binds a suggestion to a concrete slice of a gap.
// StartTime/EndTime are "HH:mm" local clock strings within the bound gap.
type ScheduledBlock struct {
	SuggestionID string `json:"suggestion_id"`
	MemoID       string `json:"memo_id"`
	GapID        string `json:"gap_id"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
}

// ScheduleResult is the outcome of one pipeline run.
// A non-empty MandatoryDropped is a caller-visible warning, not an error.
type ScheduleResult struct {
	Scheduled             []ScheduledBlock `json:"scheduled"`
	Dropped               []Suggestion     `json:"dropped"`
	MandatoryDropped      []Suggestion     `json:"mandatory_dropped"`
	TotalScheduledMinutes int              `json:"total_scheduled_minutes"`
	TotalDroppedMinutes   int              `json:"total_dropped_minutes"`
}

// PipelineSummary reports run counters for observability only.
type PipelineSummary struct {
	TasksProcessed        int   `json:"tasks_processed"`
	ActiveTasks           int   `json:"active_tasks"`
	PermutationsEvaluated int   `json:"permutations_evaluated"`
	ElapsedMillis         int64 `json:"elapsed_millis"`
}
