package usecase

import (
	"context"
	"time"

	"home-pa-scheduler/pkg/datemath"
	"home-pa-scheduler/pkg/enrich"
	"home-pa-scheduler/pkg/gcalendar"
	pkgLog "home-pa-scheduler/pkg/log"
)

// CalendarSource supplies the day's events for the gap enricher.
// *gcalendar.Client satisfies it; nil means no source configured.
type CalendarSource interface {
	ListDayEvents(ctx context.Context, calendarID string, dayStart, dayEnd time.Time) ([]gcalendar.Event, error)
}

var _ CalendarSource = (*gcalendar.Client)(nil)

// Config holds per-instance scheduler settings. Instances carry configuration
// only, never run state; every GenerateSchedule call works on its own snapshot.
type Config struct {
	Timezone         string
	PermutationLimit int
	EnrichTimeout    time.Duration
	CalendarID       string
}

type implUseCase struct {
	l        pkgLog.Logger
	enricher enrich.IEnricher
	calendar CalendarSource
	cal      *datemath.Calendar
	cfg      Config
}

// New creates a new schedule UseCase instance.
// enricher and calendar are optional collaborators; pass nil to disable.
func New(l pkgLog.Logger, enricher enrich.IEnricher, calendar CalendarSource, cfg Config) (*implUseCase, error) {
	if cfg.Timezone == "" {
		cfg.Timezone = DefaultTimezone
	}
	if cfg.PermutationLimit <= 0 {
		cfg.PermutationLimit = DefaultPermutationLimit
	}
	if cfg.EnrichTimeout <= 0 {
		cfg.EnrichTimeout = DefaultEnrichTimeout
	}

	cal, err := datemath.NewCalendar(cfg.Timezone)
	if err != nil {
		return nil, err
	}

	return &implUseCase{
		l:        l,
		enricher: enricher,
		calendar: calendar,
		cal:      cal,
		cfg:      cfg,
	}, nil
}
