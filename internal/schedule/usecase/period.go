package usecase

import (
	"time"

	"home-pa-scheduler/internal/model"
)

// rolloverPeriod resets a routine task's per-period completion counter when
// now has crossed into a new day/week/month relative to PeriodStartDate.
// Idempotent: calling twice within the same period is a no-op.
func (uc *implUseCase) rolloverPeriod(task model.Task, now time.Time) model.Task {
	if task.Type != model.TaskTypeRoutine || task.RecurrenceGoal == nil {
		return task
	}

	currentStart := uc.periodStart(task.RecurrenceGoal.Period, now)
	if !task.Status.PeriodStartDate.Before(currentStart) {
		return task
	}

	task.Status.CompletionsThisPeriod = 0
	task.Status.PeriodStartDate = currentStart
	return task
}

// periodStart returns the start of the period containing t.
func (uc *implUseCase) periodStart(period model.RecurrencePeriod, t time.Time) time.Time {
	switch period {
	case model.PeriodWeek:
		return uc.cal.StartOfWeek(t)
	case model.PeriodMonth:
		return uc.cal.StartOfMonth(t)
	default:
		return uc.cal.StartOfDay(t)
	}
}

// periodEnd returns the first instant of the period after the one containing t.
func (uc *implUseCase) periodEnd(period model.RecurrencePeriod, t time.Time) time.Time {
	start := uc.periodStart(period, t)
	switch period {
	case model.PeriodWeek:
		return start.AddDate(0, 0, 7)
	case model.PeriodMonth:
		return start.AddDate(0, 1, 0)
	default:
		return start.AddDate(0, 0, 1)
	}
}
