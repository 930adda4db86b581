package schedule

import "context"

// UseCase defines the business logic interface for the schedule domain.
type UseCase interface {
	// GenerateSchedule runs the full suggestion-to-schedule pipeline for one day:
	// period rollover, active filtering, optional enrichment, scoring, gap
	// enrichment, selection, and placement. Deterministic for identical inputs.
	GenerateSchedule(ctx context.Context, input GenerateInput) (GenerateOutput, error)

	// MarkSessionComplete applies a worked session to a task and derives its
	// updated completion state. Pure: no network or storage access.
	MarkSessionComplete(ctx context.Context, input SessionInput) (SessionOutput, error)
}
