package model

import "time"

// Gap is a contiguous free-time window in a day's calendar.
// Start/End are "HH:mm" local clock strings supplied by the gap source.
// LocationLabel is filled by the gap enricher; empty means unknown, which is
// compatible with any location preference.
type Gap struct {
	ID              string `json:"id"`
	Start           string `json:"start"`
	End             string `json:"end"`
	DurationMinutes int    `json:"duration_minutes"`
	LocationLabel   string `json:"location_label,omitempty"`
}

// CalendarEvent is a concrete calendar event bordering gaps.
// Supplied by the calendar-event source; only read by the gap enricher.
type CalendarEvent struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Location string    `json:"location,omitempty"`
}
