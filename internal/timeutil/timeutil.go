// Package timeutil holds the pure date and duration helpers shared by the
// analytics deriver, the timer controller and the presentation layers.
package timeutil

import (
	"fmt"
	"time"
)

// DayFormat is the bucket key layout for both day and week keys.
const DayFormat = "2006-01-02"

// WeekStart returns the Monday of the ISO week containing t, normalized to
// midnight UTC. Sunday counts as day 0 and maps to the previous Monday.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	offset := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		offset = 6
	}
	t = t.AddDate(0, 0, -offset)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayKey returns the UTC calendar date of t as YYYY-MM-DD
func DayKey(t time.Time) string {
	return t.UTC().Format(DayFormat)
}

// WeekKey returns the UTC date of the Monday of t's week as YYYY-MM-DD
func WeekKey(t time.Time) string {
	return WeekStart(t).Format(DayFormat)
}

// FormatDuration renders a signed duration in seconds compactly: M:SS below
// an hour, H:MM:SS at an hour or more. Negative input keeps its sign, so a
// countdown held open past expiry reads -0:05 rather than wrapping.
func FormatDuration(seconds int) string {
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	if seconds < 3600 {
		return fmt.Sprintf("%s%d:%02d", sign, seconds/60, seconds%60)
	}
	return fmt.Sprintf("%s%d:%02d:%02d", sign, seconds/3600, (seconds%3600)/60, seconds%60)
}

// FormatDurationLong renders cumulative totals: "2h 15m" at an hour or more,
// "5m 32s" below.
func FormatDurationLong(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	if seconds >= 3600 {
		return fmt.Sprintf("%dh %dm", seconds/3600, (seconds%3600)/60)
	}
	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}
