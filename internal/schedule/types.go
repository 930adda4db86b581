package schedule

import (
	"time"

	"home-pa-scheduler/internal/model"
)

// GenerateInput is the input for one pipeline run. Tasks and Gaps are
// caller-supplied snapshots; the pipeline never mutates the caller's copies.
// Events feed the gap enricher; when empty and a calendar source is
// configured, the day's events are fetched from it.
type GenerateInput struct {
	Tasks          []model.Task
	Gaps           []model.Gap
	Events         []model.CalendarEvent
	SkipEnrichment bool
	Now            time.Time // zero means time.Now() in the configured timezone
}

// GenerateOutput is the result of one pipeline run.
type GenerateOutput struct {
	Schedule model.ScheduleResult
	Summary  model.PipelineSummary
}

// SessionInput records minutes worked on a task in one session.
type SessionInput struct {
	Task         model.Task
	MinutesSpent int
	Now          time.Time // zero means time.Now()
}

// SessionOutput carries the updated task and derived completion flags.
type SessionOutput struct {
	Task          model.Task
	IsNowComplete bool
	GoalReached   bool
}
