package http

import (
	"time"

	"home-pa-scheduler/internal/model"
	"home-pa-scheduler/internal/schedule"
)

// --- Request DTOs ---

type generateReq struct {
	Tasks          []model.Task          `json:"tasks"`
	Gaps           []model.Gap           `json:"gaps"`
	Events         []model.CalendarEvent `json:"events,omitempty"`
	SkipEnrichment bool                  `json:"skip_enrichment"`
	Now            *time.Time            `json:"now,omitempty"`
}

func (r generateReq) toInput() schedule.GenerateInput {
	input := schedule.GenerateInput{
		Tasks:          r.Tasks,
		Gaps:           r.Gaps,
		Events:         r.Events,
		SkipEnrichment: r.SkipEnrichment,
	}
	if r.Now != nil {
		input.Now = *r.Now
	}
	return input
}

// ---

type sessionReq struct {
	Task         model.Task `json:"task"`
	MinutesSpent int        `json:"minutes_spent"`
	Now          *time.Time `json:"now,omitempty"`
}

func (r sessionReq) toInput() schedule.SessionInput {
	input := schedule.SessionInput{
		Task:         r.Task,
		MinutesSpent: r.MinutesSpent,
	}
	if r.Now != nil {
		input.Now = *r.Now
	}
	return input
}

// --- Response DTOs ---

type generateResp struct {
	Schedule model.ScheduleResult  `json:"schedule"`
	Summary  model.PipelineSummary `json:"summary"`
}

func (h *handler) newGenerateResp(out schedule.GenerateOutput) generateResp {
	return generateResp{
		Schedule: out.Schedule,
		Summary:  out.Summary,
	}
}

type sessionResp struct {
	Task          model.Task `json:"task"`
	IsNowComplete bool       `json:"is_now_complete"`
	GoalReached   bool       `json:"goal_reached"`
}

func (h *handler) newSessionResp(out schedule.SessionOutput) sessionResp {
	return sessionResp{
		Task:          out.Task,
		IsNowComplete: out.IsNowComplete,
		GoalReached:   out.GoalReached,
	}
}
