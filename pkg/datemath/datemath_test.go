package datemath_test

import (
	"testing"
	"time"

	"home-pa-scheduler/pkg/datemath"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		name    string
		clock   string
		want    int
		wantErr bool
	}{
		{"Midnight", "00:00", 0, false},
		{"Morning", "09:30", 570, false},
		{"Last Minute", "23:59", 1439, false},
		{"Single Digit Hour", "9:30", 570, false},
		{"Twelve Hour", "9:30am", 0, true},
		{"Out Of Range", "25:00", 0, true},
		{"Empty", "", 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := datemath.ParseClock(tc.clock)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseClock(%q) expected error, got %d", tc.clock, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClock(%q) unexpected error: %v", tc.clock, err)
			}
			if got != tc.want {
				t.Errorf("ParseClock(%q) = %d, want %d", tc.clock, got, tc.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		name    string
		minutes int
		want    string
	}{
		{"Midnight", 0, "00:00"},
		{"Morning", 570, "09:30"},
		{"Last Minute", 1439, "23:59"},
		{"Wraps Past Midnight", 1500, "01:00"},
		{"Negative Wraps Back", -60, "23:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := datemath.FormatClock(tc.minutes); got != tc.want {
				t.Errorf("FormatClock(%d) = %q, want %q", tc.minutes, got, tc.want)
			}
		})
	}
}

func TestCalendarBoundaries(t *testing.T) {
	cal, err := datemath.NewCalendar("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("failed to build calendar: %v", err)
	}
	loc := cal.Location()

	// Wednesday local time.
	ref := time.Date(2024, 5, 15, 14, 30, 0, 0, loc)

	t.Run("Start Of Day", func(t *testing.T) {
		want := time.Date(2024, 5, 15, 0, 0, 0, 0, loc)
		if got := cal.StartOfDay(ref); !got.Equal(want) {
			t.Errorf("StartOfDay = %v, want %v", got, want)
		}
	})

	t.Run("End Of Day", func(t *testing.T) {
		want := time.Date(2024, 5, 15, 23, 59, 59, 0, loc)
		if got := cal.EndOfDay(ref); !got.Equal(want) {
			t.Errorf("EndOfDay = %v, want %v", got, want)
		}
	})

	t.Run("Week Starts Monday", func(t *testing.T) {
		want := time.Date(2024, 5, 13, 0, 0, 0, 0, loc)
		if got := cal.StartOfWeek(ref); !got.Equal(want) {
			t.Errorf("StartOfWeek = %v, want %v", got, want)
		}
	})

	t.Run("Sunday Belongs To The Previous Monday", func(t *testing.T) {
		sunday := time.Date(2024, 5, 19, 10, 0, 0, 0, loc)
		want := time.Date(2024, 5, 13, 0, 0, 0, 0, loc)
		if got := cal.StartOfWeek(sunday); !got.Equal(want) {
			t.Errorf("StartOfWeek(sunday) = %v, want %v", got, want)
		}
	})

	t.Run("Start Of Month", func(t *testing.T) {
		want := time.Date(2024, 5, 1, 0, 0, 0, 0, loc)
		if got := cal.StartOfMonth(ref); !got.Equal(want) {
			t.Errorf("StartOfMonth = %v, want %v", got, want)
		}
	})

	t.Run("Converts To Local Day First", func(t *testing.T) {
		// 2024-05-15 20:00 UTC is already May 16 in Ho Chi Minh (UTC+7).
		utc := time.Date(2024, 5, 15, 20, 0, 0, 0, time.UTC)
		want := time.Date(2024, 5, 16, 0, 0, 0, 0, loc)
		if got := cal.StartOfDay(utc); !got.Equal(want) {
			t.Errorf("StartOfDay(utc evening) = %v, want %v", got, want)
		}
	})

	t.Run("Same Day Across Zones", func(t *testing.T) {
		local := time.Date(2024, 5, 16, 1, 0, 0, 0, loc)
		utc := time.Date(2024, 5, 15, 20, 0, 0, 0, time.UTC)
		if !cal.SameDay(local, utc) {
			t.Errorf("expected %v and %v to share a local day", local, utc)
		}
		if cal.SameDay(local, time.Date(2024, 5, 15, 10, 0, 0, 0, loc)) {
			t.Errorf("different local days must not match")
		}
	})

	t.Run("Clock On Day", func(t *testing.T) {
		want := time.Date(2024, 5, 15, 9, 30, 0, 0, loc)
		if got := cal.ClockOn(ref, 570); !got.Equal(want) {
			t.Errorf("ClockOn = %v, want %v", got, want)
		}
	})

	t.Run("Invalid Timezone", func(t *testing.T) {
		if _, err := datemath.NewCalendar("Mars/Olympus_Mons"); err == nil {
			t.Errorf("expected an error for an unknown timezone")
		}
	})
}
