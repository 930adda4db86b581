package usecase

import (
	"context"

	"home-pa-scheduler/internal/model"
	"home-pa-scheduler/pkg/enrich"
)

// enrichTasks fills missing genre/importance/duration fields from the
// enrichment service, best effort. Every failure path falls back to the
// heuristic defaults; nothing here can fail the pipeline or block past the
// configured timeout.
func (uc *implUseCase) enrichTasks(ctx context.Context, tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	for i, task := range tasks {
		out[i] = uc.enrichTask(ctx, task)
	}
	return out
}

func (uc *implUseCase) enrichTask(ctx context.Context, task model.Task) model.Task {
	if !needsEnrichment(task) {
		return task
	}
	if uc.enricher == nil {
		return applyHeuristics(task)
	}

	callCtx, cancel := context.WithTimeout(ctx, uc.cfg.EnrichTimeout)
	defer cancel()

	resp, err := uc.enricher.Enrich(callCtx, enrich.Request{
		ID:       task.ID,
		Title:    task.Title,
		Type:     string(task.Type),
		Deadline: task.Deadline,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.enrichTask %s: falling back to heuristics: %v", task.ID, err)
		return applyHeuristics(task)
	}

	return applyHeuristics(mergeEnrichment(task, resp))
}

func needsEnrichment(task model.Task) bool {
	return task.Genre == "" || task.Importance == "" || task.SessionMinutes <= 0 || task.TotalExpectedMinutes <= 0
}

// mergeEnrichment copies validated response fields onto the task's unset
// fields. Invalid values are ignored rather than rejected.
func mergeEnrichment(task model.Task, resp *enrich.Response) model.Task {
	if task.Genre == "" && resp.Genre != "" {
		task.Genre = resp.Genre
	}
	if task.Importance == "" {
		switch model.ImportanceLabel(resp.Importance) {
		case model.ImportanceLow, model.ImportanceMedium, model.ImportanceHigh:
			task.Importance = model.ImportanceLabel(resp.Importance)
		}
	}
	if task.SessionMinutes <= 0 && resp.SessionMinutes > 0 {
		task.SessionMinutes = resp.SessionMinutes
	}
	if task.TotalExpectedMinutes <= 0 && resp.TotalExpectedMinutes > 0 {
		task.TotalExpectedMinutes = resp.TotalExpectedMinutes
	}
	return task
}

// applyHeuristics is the deterministic fallback used when enrichment is
// disabled, unavailable, or silent on a field.
func applyHeuristics(task model.Task) model.Task {
	if task.Genre == "" {
		task.Genre = string(task.Type)
	}
	if task.Importance == "" {
		task.Importance = model.ImportanceMedium
	}
	if task.SessionMinutes <= 0 {
		task.SessionMinutes = sessionDuration(task)
	}
	return task
}
