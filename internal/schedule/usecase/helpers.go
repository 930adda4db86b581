package usecase

import (
	"sort"

	"github.com/google/uuid"

	"home-pa-scheduler/internal/model"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// suggestionValue is the knapsack value and the drop-priority of a suggestion.
func suggestionValue(s model.Suggestion) float64 {
	return s.Need * s.Importance
}

// suggestionID derives a stable, deterministic id for the suggestion spawned
// by a memo in this run. UUIDv5 keeps ids reproducible across identical runs.
func suggestionID(memoID string) string {
	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte("suggestion:"+memoID)).String()
}

// sortByID orders suggestions by id ascending, the fixed tie-break rule that
// keeps every downstream stage reproducible.
func sortByID(ss []model.Suggestion) {
	sort.Slice(ss, func(i, j int) bool { return ss[i].ID < ss[j].ID })
}

// sortByValueDesc orders suggestions by value descending, id ascending on ties.
func sortByValueDesc(ss []model.Suggestion) {
	sort.Slice(ss, func(i, j int) bool {
		vi, vj := suggestionValue(ss[i]), suggestionValue(ss[j])
		if vi != vj {
			return vi > vj
		}
		return ss[i].ID < ss[j].ID
	})
}

func sumDurations(ss []model.Suggestion) int {
	total := 0
	for _, s := range ss {
		total += s.DurationMinutes
	}
	return total
}
