package usecase

import (
	"context"
	"time"

	"home-pa-scheduler/internal/model"
	"home-pa-scheduler/internal/schedule"
)

// MarkSessionComplete applies a worked session to a task: adds the minutes,
// bumps lastActivity, advances routine counters, and derives the completion
// state. A zero-minute session leaves the task untouched.
func (uc *implUseCase) MarkSessionComplete(ctx context.Context, input schedule.SessionInput) (schedule.SessionOutput, error) {
	task := input.Task
	if task.ID == "" {
		return schedule.SessionOutput{}, schedule.ErrMissingTaskID
	}
	if input.MinutesSpent < 0 {
		return schedule.SessionOutput{}, schedule.ErrNegativeMinutes
	}

	if input.MinutesSpent == 0 {
		return schedule.SessionOutput{
			Task:          task,
			IsNowComplete: task.Status.CompletionState == model.CompletionCompleted,
			GoalReached:   goalReached(task),
		}, nil
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}
	now = now.In(uc.cal.Location())

	task.Status.TimeSpentMinutes += input.MinutesSpent
	task.LastActivity = &now
	if task.Type == model.TaskTypeRoutine {
		task.Status.CompletionsThisPeriod++
	}

	complete := isComplete(task)
	reached := goalReached(task)
	if complete {
		task.Status.CompletionState = model.CompletionCompleted
	} else {
		task.Status.CompletionState = model.CompletionInProgress
	}

	return schedule.SessionOutput{
		Task:          task,
		IsNowComplete: complete,
		GoalReached:   reached,
	}, nil
}

// goalReached reports whether a routine task has met its per-period goal.
// Always false for non-routine tasks.
func goalReached(task model.Task) bool {
	if task.Type != model.TaskTypeRoutine || task.RecurrenceGoal == nil || task.RecurrenceGoal.Count <= 0 {
		return false
	}
	return task.Status.CompletionsThisPeriod >= task.RecurrenceGoal.Count
}

// isComplete derives the completion condition per type: expected total time
// met for deadline/backlog tasks, period goal reached for routine tasks.
func isComplete(task model.Task) bool {
	if task.Type == model.TaskTypeRoutine {
		return goalReached(task)
	}
	return task.TotalExpectedMinutes > 0 && task.Status.TimeSpentMinutes >= task.TotalExpectedMinutes
}
