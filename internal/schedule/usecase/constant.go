package usecase

import "time"

// Need scoring bounds per task type.
const (
	// MandatoryNeedThreshold marks suggestions that must be placed today.
	// Only deadline tasks can cross it.
	MandatoryNeedThreshold = 1.0

	deadlineNeedFloor = 0.1

	backlogNeedFloor      = 0.25
	backlogNeedCeil       = 0.7
	backlogSaturationDays = 14.0

	routineNeedFloor = 0.3
	routineNeedCeil  = 0.8
)

// Importance label weights. Unset labels score as medium.
const (
	importanceLow    = 0.3
	importanceMedium = 0.6
	importanceHigh   = 0.9
)

// Fallback session durations (minutes) when the task carries none and
// enrichment had no opinion.
const (
	fallbackDeadlineMinutes = 45
	fallbackBacklogMinutes  = 30
	fallbackRoutineMinutes  = 30
)

// Search and enrichment defaults.
const (
	// DefaultPermutationLimit caps the candidate set of the ordering search.
	// Candidates beyond the cap are dropped lowest value first.
	DefaultPermutationLimit = 8

	DefaultEnrichTimeout = 3 * time.Second

	DefaultTimezone = "Asia/Ho_Chi_Minh"
)
