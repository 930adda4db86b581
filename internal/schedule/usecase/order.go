package usecase

import (
	"home-pa-scheduler/internal/model"
	"home-pa-scheduler/pkg/datemath"
)

// placementScore orders candidate placements: more mandatory suggestions
// placed wins, then more suggestions placed, then more minutes placed
// (equivalently, less wasted gap capacity).
type placementScore struct {
	mandatoryPlaced int
	totalPlaced     int
	minutesPlaced   int
}

func (a placementScore) betterThan(b placementScore) bool {
	if a.mandatoryPlaced != b.mandatoryPlaced {
		return a.mandatoryPlaced > b.mandatoryPlaced
	}
	if a.totalPlaced != b.totalPlaced {
		return a.totalPlaced > b.totalPlaced
	}
	return a.minutesPlaced > b.minutesPlaced
}

type placementResult struct {
	blocks []model.ScheduledBlock
	placed map[string]bool // suggestion id -> placed
	score  placementScore
}

// assignOrder binds one ordering to the gaps greedily: each suggestion goes
// into the earliest compatible gap with sufficient remaining capacity.
// Suggestions that fit nowhere are skipped, not retried.
func assignOrder(order []model.Suggestion, slots []gapSlot, mandatoryIDs map[string]bool) placementResult {
	work := make([]gapSlot, len(slots))
	copy(work, slots)

	result := placementResult{placed: make(map[string]bool, len(order))}
	for _, s := range order {
		for i := range work {
			slot := &work[i]
			if !slot.accepts(s.LocationPreference) || slot.remaining() < s.DurationMinutes {
				continue
			}

			start := slot.startMinute + slot.used
			slot.used += s.DurationMinutes

			result.blocks = append(result.blocks, model.ScheduledBlock{
				SuggestionID: s.ID,
				MemoID:       s.MemoID,
				GapID:        slot.id,
				StartTime:    datemath.FormatClock(start),
				EndTime:      datemath.FormatClock(start + s.DurationMinutes),
			})
			result.placed[s.ID] = true
			result.score.totalPlaced++
			result.score.minutesPlaced += s.DurationMinutes
			if mandatoryIDs[s.ID] {
				result.score.mandatoryPlaced++
			}
			break
		}
	}
	return result
}

// searchBestOrder explores orderings of the candidates with Heap's algorithm
// and keeps the best placement found. Generation order is fixed and an
// ordering only replaces the incumbent on a strict improvement, so identical
// inputs always yield the identical winner. The caller caps len(candidates)
// at the configured permutation limit.
func searchBestOrder(candidates []model.Suggestion, slots []gapSlot, mandatoryIDs map[string]bool) (placementResult, int) {
	if len(candidates) == 0 {
		return placementResult{placed: map[string]bool{}}, 0
	}

	work := make([]model.Suggestion, len(candidates))
	copy(work, candidates)

	best := assignOrder(work, slots, mandatoryIDs)
	evaluated := 1

	// Heap's algorithm, iterative form.
	counters := make([]int, len(work))
	i := 0
	for i < len(work) {
		if counters[i] < i {
			if i%2 == 0 {
				work[0], work[i] = work[i], work[0]
			} else {
				work[counters[i]], work[i] = work[i], work[counters[i]]
			}
			candidate := assignOrder(work, slots, mandatoryIDs)
			evaluated++
			if candidate.score.betterThan(best.score) {
				best = candidate
			}
			counters[i]++
			i = 0
		} else {
			counters[i] = 0
			i++
		}
	}

	return best, evaluated
}

// capCandidates bounds the ordering search input. The base order is mandatory
// suggestions (by id) followed by selected optional ones (by id); when the
// set exceeds the limit, the lowest-value candidates are cut, optionals
// before mandatories.
func capCandidates(mandatory, optional []model.Suggestion, limit int) (candidates, cutOptional, cutMandatory []model.Suggestion) {
	if len(mandatory)+len(optional) <= limit {
		return append(append([]model.Suggestion{}, mandatory...), optional...), nil, nil
	}

	keepOpt := limit - len(mandatory)
	if keepOpt < 0 {
		keepOpt = 0
	}
	if keepOpt < len(optional) {
		byValue := make([]model.Suggestion, len(optional))
		copy(byValue, optional)
		sortByValueDesc(byValue)
		kept := byValue[:keepOpt]
		cutOptional = append(cutOptional, byValue[keepOpt:]...)
		optional = make([]model.Suggestion, len(kept))
		copy(optional, kept)
		sortByID(optional)
	}

	if len(mandatory) > limit {
		byValue := make([]model.Suggestion, len(mandatory))
		copy(byValue, mandatory)
		sortByValueDesc(byValue)
		kept := byValue[:limit]
		cutMandatory = append(cutMandatory, byValue[limit:]...)
		mandatory = make([]model.Suggestion, len(kept))
		copy(mandatory, kept)
		sortByID(mandatory)
	}

	candidates = append(append([]model.Suggestion{}, mandatory...), optional...)
	return candidates, cutOptional, cutMandatory
}
