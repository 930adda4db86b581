package usecase

import (
	"context"
	"strings"
	"time"

	"home-pa-scheduler/internal/model"
	"home-pa-scheduler/pkg/datemath"
)

// gapSlot is a gap prepared for placement: clock strings parsed, location
// label resolved, remaining capacity tracked during assignment.
type gapSlot struct {
	id          string
	startMinute int // minutes since midnight
	capacity    int // minutes
	label       string
	used        int // minutes consumed by earlier placements
}

func (g gapSlot) remaining() int {
	return g.capacity - g.used
}

// accepts reports whether a suggestion's location preference is compatible
// with this gap. No preference fits anything; an unlabeled gap fits everyone.
func (g gapSlot) accepts(preference string) bool {
	pref := normalizeLocation(preference)
	if pref == "" || pref == model.LocationNoPreference {
		return true
	}
	return g.label == "" || g.label == pref
}

// buildSlots turns raw gaps into placement slots, labeling each from the
// calendar events that border it. Malformed or zero-duration gaps are skipped
// and do not count toward capacity.
func (uc *implUseCase) buildSlots(ctx context.Context, gaps []model.Gap, events []model.CalendarEvent, now time.Time) []gapSlot {
	slots := make([]gapSlot, 0, len(gaps))
	for _, gap := range gaps {
		startMin, startErr := datemath.ParseClock(gap.Start)
		endMin, endErr := datemath.ParseClock(gap.End)
		if startErr != nil || endErr != nil || endMin <= startMin {
			uc.l.Debugf(ctx, "uc.buildSlots: skipping malformed gap %q (%s-%s)", gap.ID, gap.Start, gap.End)
			continue
		}

		// Capacity never exceeds the clock bounds: a block must stay inside
		// [start, end) no matter what duration the gap source claims.
		duration := endMin - startMin
		if gap.DurationMinutes > 0 && gap.DurationMinutes < duration {
			duration = gap.DurationMinutes
		}

		label := normalizeLocation(gap.LocationLabel)
		if label == "" {
			label = uc.inferLabel(events, uc.cal.ClockOn(now, startMin), uc.cal.ClockOn(now, endMin))
		}

		slots = append(slots, gapSlot{
			id:          gap.ID,
			startMinute: startMin,
			capacity:    duration,
			label:       label,
		})
	}
	return slots
}

// inferLabel derives a gap's location from its immediate calendar neighbors:
// the event ending at or before the gap's start and the event starting at or
// after its end. Conflicting neighbors leave the gap unlabeled, meaning
// compatible with anything.
func (uc *implUseCase) inferLabel(events []model.CalendarEvent, gapStart, gapEnd time.Time) string {
	var before, after *model.CalendarEvent
	for i := range events {
		ev := events[i]
		if !ev.End.After(gapStart) {
			if before == nil || ev.End.After(before.End) {
				before = &events[i]
			}
		}
		if !ev.Start.Before(gapEnd) {
			if after == nil || ev.Start.Before(after.Start) {
				after = &events[i]
			}
		}
	}

	beforeLoc, afterLoc := "", ""
	if before != nil {
		beforeLoc = normalizeLocation(before.Location)
	}
	if after != nil {
		afterLoc = normalizeLocation(after.Location)
	}

	switch {
	case beforeLoc != "" && afterLoc != "":
		if beforeLoc == afterLoc {
			return beforeLoc
		}
		return "" // neighbors disagree
	case beforeLoc != "":
		return beforeLoc
	default:
		return afterLoc
	}
}

func normalizeLocation(v string) string {
	v = strings.TrimSpace(strings.ToLower(v))
	return strings.ReplaceAll(v, " ", "_")
}
