package usecase

import "home-pa-scheduler/internal/model"

// selectOptional picks the subset of optional suggestions that maximizes
// total value (need × importance) within capacityMinutes, 0/1 knapsack
// semantics: a suggestion is taken whole or not at all. Items are processed
// in id order so equal-value solutions resolve the same way on every run.
func selectOptional(optional []model.Suggestion, capacityMinutes int) []model.Suggestion {
	if capacityMinutes <= 0 || len(optional) == 0 {
		return nil
	}

	items := make([]model.Suggestion, len(optional))
	copy(items, optional)
	sortByID(items)

	n := len(items)
	w := capacityMinutes

	dp := make([]float64, w+1)
	take := make([][]bool, n)
	for i := range take {
		take[i] = make([]bool, w+1)
	}

	for i := 0; i < n; i++ {
		weight := items[i].DurationMinutes
		if weight < 1 {
			weight = 1
		}
		value := suggestionValue(items[i])
		// iterate backwards so each item is used at most once
		for c := w; c >= weight; c-- {
			if candidate := dp[c-weight] + value; candidate > dp[c] {
				dp[c] = candidate
				take[i][c] = true
			}
		}
	}

	// backtrack the chosen set
	var chosen []model.Suggestion
	c := w
	for i := n - 1; i >= 0; i-- {
		if take[i][c] {
			chosen = append(chosen, items[i])
			weight := items[i].DurationMinutes
			if weight < 1 {
				weight = 1
			}
			c -= weight
		}
	}

	sortByID(chosen)
	return chosen
}
