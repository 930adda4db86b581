package usecase

import (
	"context"
	"sort"
	"time"

	"home-pa-scheduler/internal/model"
	"home-pa-scheduler/internal/schedule"
)

// GenerateSchedule runs the suggestion-to-schedule pipeline for one day.
func (uc *implUseCase) GenerateSchedule(ctx context.Context, input schedule.GenerateInput) (schedule.GenerateOutput, error) {
	started := time.Now()

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}
	now = now.In(uc.cal.Location())

	// Period rollover + active filter.
	active := make([]model.Task, 0, len(input.Tasks))
	for _, task := range input.Tasks {
		task = uc.rolloverPeriod(task, now)
		if task.IsActive() {
			active = append(active, task)
		}
	}

	if !input.SkipEnrichment {
		active = uc.enrichTasks(ctx, active)
	}

	suggestions := make([]model.Suggestion, 0, len(active))
	for _, task := range active {
		suggestions = append(suggestions, uc.scoreTask(task, now))
	}

	events := input.Events
	if len(events) == 0 && uc.calendar != nil {
		events = uc.fetchDayEvents(ctx, now)
	}

	slots := uc.buildSlots(ctx, input.Gaps, events, now)
	result, permutations := uc.placeSuggestions(suggestions, slots)

	if len(result.MandatoryDropped) > 0 {
		uc.l.Warnf(ctx, "uc.GenerateSchedule: %d mandatory suggestions could not be placed", len(result.MandatoryDropped))
	}

	return schedule.GenerateOutput{
		Schedule: result,
		Summary: model.PipelineSummary{
			TasksProcessed:        len(input.Tasks),
			ActiveTasks:           len(active),
			PermutationsEvaluated: permutations,
			ElapsedMillis:         time.Since(started).Milliseconds(),
		},
	}, nil
}

// fetchDayEvents pulls the day's events from the configured calendar source.
// Best effort: any failure just means gaps stay unlabeled.
func (uc *implUseCase) fetchDayEvents(ctx context.Context, now time.Time) []model.CalendarEvent {
	dayEvents, err := uc.calendar.ListDayEvents(ctx, uc.cfg.CalendarID, uc.cal.StartOfDay(now), uc.cal.EndOfDay(now))
	if err != nil {
		uc.l.Warnf(ctx, "uc.fetchDayEvents: %v", err)
		return nil
	}

	events := make([]model.CalendarEvent, 0, len(dayEvents))
	for _, ev := range dayEvents {
		events = append(events, model.CalendarEvent{
			ID:       ev.ID,
			Title:    ev.Summary,
			Start:    ev.StartTime,
			End:      ev.EndTime,
			Location: ev.Location,
		})
	}
	return events
}

// placeSuggestions runs partition → knapsack selection → ordering search →
// assignment and assembles the schedule result.
func (uc *implUseCase) placeSuggestions(suggestions []model.Suggestion, slots []gapSlot) (model.ScheduleResult, int) {
	mandatory, optional := partition(suggestions)

	totalCapacity := 0
	for _, slot := range slots {
		totalCapacity += slot.capacity
	}

	var result model.ScheduleResult
	if totalCapacity <= 0 {
		result.Dropped = optional
		result.MandatoryDropped = mandatory
		result.TotalDroppedMinutes = sumDurations(optional) + sumDurations(mandatory)
		return result, 0
	}

	// When mandatory durations alone exceed capacity, shed the lowest-value
	// mandatory suggestions up front: placement cannot succeed for all of
	// them and the overflow belongs in the warning set.
	kept := mandatory
	if sumDurations(mandatory) > totalCapacity {
		kept, result.MandatoryDropped = shedMandatoryOverflow(mandatory, totalCapacity)
	}

	selected := selectOptional(optional, totalCapacity-sumDurations(kept))
	selectedIDs := make(map[string]bool, len(selected))
	for _, s := range selected {
		selectedIDs[s.ID] = true
	}
	for _, s := range optional {
		if !selectedIDs[s.ID] {
			result.Dropped = append(result.Dropped, s)
		}
	}

	candidates, cutOptional, cutMandatory := capCandidates(kept, selected, uc.cfg.PermutationLimit)
	result.Dropped = append(result.Dropped, cutOptional...)
	result.MandatoryDropped = append(result.MandatoryDropped, cutMandatory...)

	mandatoryIDs := make(map[string]bool, len(kept))
	for _, s := range kept {
		mandatoryIDs[s.ID] = true
	}

	best, permutations := searchBestOrder(candidates, slots, mandatoryIDs)
	for _, s := range candidates {
		if best.placed[s.ID] {
			continue
		}
		if mandatoryIDs[s.ID] {
			result.MandatoryDropped = append(result.MandatoryDropped, s)
		} else {
			result.Dropped = append(result.Dropped, s)
		}
	}

	result.Scheduled = sortBlocks(best.blocks, slots)
	result.TotalScheduledMinutes = best.score.minutesPlaced
	result.TotalDroppedMinutes = sumDurations(result.Dropped) + sumDurations(result.MandatoryDropped)
	sortByID(result.Dropped)
	sortByID(result.MandatoryDropped)
	return result, permutations
}

// shedMandatoryOverflow keeps the highest-value mandatory suggestions that
// fit within capacity; the rest become the mandatoryDropped warning set.
func shedMandatoryOverflow(mandatory []model.Suggestion, capacity int) (kept, dropped []model.Suggestion) {
	byValue := make([]model.Suggestion, len(mandatory))
	copy(byValue, mandatory)
	sortByValueDesc(byValue)

	used := 0
	for _, s := range byValue {
		if used+s.DurationMinutes <= capacity {
			kept = append(kept, s)
			used += s.DurationMinutes
		} else {
			dropped = append(dropped, s)
		}
	}
	sortByID(kept)
	sortByID(dropped)
	return kept, dropped
}

// sortBlocks orders scheduled blocks by gap position, then start time.
func sortBlocks(blocks []model.ScheduledBlock, slots []gapSlot) []model.ScheduledBlock {
	slotIndex := make(map[string]int, len(slots))
	for i, slot := range slots {
		slotIndex[slot.id] = i
	}
	sort.Slice(blocks, func(i, j int) bool {
		if slotIndex[blocks[i].GapID] != slotIndex[blocks[j].GapID] {
			return slotIndex[blocks[i].GapID] < slotIndex[blocks[j].GapID]
		}
		return blocks[i].StartTime < blocks[j].StartTime
	})
	return blocks
}
