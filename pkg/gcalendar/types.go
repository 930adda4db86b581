package gcalendar

import "time"

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID        string
	Summary   string
	StartTime time.Time
	EndTime   time.Time
	Location  string
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
