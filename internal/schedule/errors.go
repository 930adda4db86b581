package schedule

import "errors"

// Domain-specific errors for the schedule package.
var (
	ErrMissingTaskID   = errors.New("task id is required")
	ErrNegativeMinutes = errors.New("minutes spent must not be negative")
)
