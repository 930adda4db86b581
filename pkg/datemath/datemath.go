package datemath

import (
	"fmt"
	"time"
)

// Calendar computes local-time period boundaries for a fixed IANA timezone.
type Calendar struct {
	location *time.Location
}

// NewCalendar creates a boundary calculator for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewCalendar(timezone string) (*Calendar, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Calendar{location: loc}, nil
}

// Location returns the calendar's timezone.
func (c *Calendar) Location() *time.Location {
	return c.location
}

// StartOfDay returns midnight at the start of the given day in the calendar's timezone.
func (c *Calendar) StartOfDay(t time.Time) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.location)
}

// EndOfDay returns 23:59:59 at the end of the given day.
func (c *Calendar) EndOfDay(t time.Time) time.Time {
	return c.StartOfDay(t).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// StartOfWeek returns midnight on the Monday of the given time's week.
func (c *Calendar) StartOfWeek(t time.Time) time.Time {
	t = t.In(c.location)
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	return c.StartOfDay(t.AddDate(0, 0, -(weekday - 1)))
}

// StartOfMonth returns midnight on the first day of the given time's month.
func (c *Calendar) StartOfMonth(t time.Time) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, c.location)
}

// SameDay reports whether a and b fall on the same local calendar day.
func (c *Calendar) SameDay(a, b time.Time) bool {
	a, b = a.In(c.location), b.In(c.location)
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// ClockOn anchors a minutes-since-midnight clock value on the given day.
func (c *Calendar) ClockOn(day time.Time, minutes int) time.Time {
	return c.StartOfDay(day).Add(time.Duration(minutes) * time.Minute)
}

// ParseClock parses a "HH:mm" local clock string into minutes since midnight.
func ParseClock(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", clock, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight as a "HH:mm" string.
// Values past midnight wrap around the day.
func FormatClock(minutes int) string {
	minutes %= 24 * 60
	if minutes < 0 {
		minutes += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
