package model

import (
	"fmt"
	"strconv"
	"time"
)

// Clock is a time-of-day in HH:MM form, with no date attached.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses a strict HH:MM string (24-hour)
func ParseClock(s string) (Clock, error) {
	if len(s) != 5 || s[2] != ':' {
		return Clock{}, fmt.Errorf("invalid clock time %q, want HH:MM", s)
	}
	hour, err := strconv.Atoi(s[:2])
	if err != nil {
		return Clock{}, fmt.Errorf("invalid clock time %q, want HH:MM", s)
	}
	minute, err := strconv.Atoi(s[3:])
	if err != nil {
		return Clock{}, fmt.Errorf("invalid clock time %q, want HH:MM", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("clock time %q out of range", s)
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

// String renders the clock back to HH:MM
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// On combines the clock with the calendar date of ref, in ref's location
func (c Clock) On(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day(), c.Hour, c.Minute, 0, 0, ref.Location())
}

// Next returns the next occurrence of this clock time strictly after now.
// A clock time already past today falls forward to tomorrow.
func (c Clock) Next(now time.Time) time.Time {
	at := c.On(now)
	if !at.After(now) {
		at = at.AddDate(0, 0, 1)
	}
	return at
}
