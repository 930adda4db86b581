package usecase

import (
	"time"

	"home-pa-scheduler/internal/model"
)

// scoreTask converts an active task into a scored suggestion.
// Pure function of (task, now); malformed or missing fields fall back to safe
// defaults so a task is never excluded for data-quality reasons.
func (uc *implUseCase) scoreTask(task model.Task, now time.Time) model.Suggestion {
	return model.Suggestion{
		ID:                 suggestionID(task.ID),
		MemoID:             task.ID,
		Need:               uc.needScore(task, now),
		Importance:         importanceScore(task.Importance),
		DurationMinutes:    sessionDuration(task),
		LocationPreference: task.LocationPreference,
	}
}

func (uc *implUseCase) needScore(task model.Task, now time.Time) float64 {
	switch task.Type {
	case model.TaskTypeDeadline:
		if task.Deadline == nil {
			return uc.backlogNeed(task, now)
		}
		return uc.deadlineNeed(task, *task.Deadline, now)
	case model.TaskTypeRoutine:
		if task.RecurrenceGoal == nil || task.RecurrenceGoal.Count <= 0 {
			return routineNeedFloor
		}
		return uc.routineNeed(task, now)
	default:
		return uc.backlogNeed(task, now)
	}
}

// deadlineNeed rises on a gradient from creation to deadline. A task due
// today or overdue is clamped to the mandatory threshold; this is the only
// path that can make a suggestion mandatory.
func (uc *implUseCase) deadlineNeed(task model.Task, deadline, now time.Time) float64 {
	if uc.cal.SameDay(deadline, now) || now.After(deadline) {
		return MandatoryNeedThreshold
	}

	total := deadline.Sub(task.CreatedAt)
	if total <= 0 {
		return MandatoryNeedThreshold
	}
	progress := clamp01(float64(now.Sub(task.CreatedAt)) / float64(total))
	return deadlineNeedFloor + (MandatoryNeedThreshold-deadlineNeedFloor)*progress
}

// backlogNeed grows with the time a task has been neglected, saturating after
// backlogSaturationDays. Never mandatory.
func (uc *implUseCase) backlogNeed(task model.Task, now time.Time) float64 {
	anchor := task.CreatedAt
	if task.LastActivity != nil {
		anchor = *task.LastActivity
	}
	idleDays := now.Sub(anchor).Hours() / 24
	if idleDays < 0 {
		idleDays = 0
	}
	return backlogNeedFloor + (backlogNeedCeil-backlogNeedFloor)*clamp01(idleDays/backlogSaturationDays)
}

// routineNeed compares remaining goal completions against remaining period
// time: the further behind schedule, the higher the need. Never mandatory.
func (uc *implUseCase) routineNeed(task model.Task, now time.Time) float64 {
	goal := task.RecurrenceGoal
	remaining := goal.Count - task.Status.CompletionsThisPeriod
	if remaining <= 0 {
		return routineNeedFloor
	}

	start := uc.periodStart(goal.Period, now)
	end := uc.periodEnd(goal.Period, now)
	elapsedFrac := clamp01(float64(now.Sub(start)) / float64(end.Sub(start)))
	timeLeftFrac := 1 - elapsedFrac
	if timeLeftFrac < 0.01 {
		timeLeftFrac = 0.01
	}

	pressure := clamp01((float64(remaining) / float64(goal.Count)) / timeLeftFrac)
	return routineNeedFloor + (routineNeedCeil-routineNeedFloor)*pressure
}

func importanceScore(label model.ImportanceLabel) float64 {
	switch label {
	case model.ImportanceLow:
		return importanceLow
	case model.ImportanceHigh:
		return importanceHigh
	default:
		return importanceMedium
	}
}

func sessionDuration(task model.Task) int {
	if task.SessionMinutes > 0 {
		return task.SessionMinutes
	}
	switch task.Type {
	case model.TaskTypeDeadline:
		return fallbackDeadlineMinutes
	case model.TaskTypeRoutine:
		return fallbackRoutineMinutes
	default:
		return fallbackBacklogMinutes
	}
}
