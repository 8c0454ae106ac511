package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	c, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, Clock{Hour: 9, Minute: 30}, c)
	assert.Equal(t, "09:30", c.String())

	c, err = ParseClock("23:59")
	require.NoError(t, err)
	assert.Equal(t, Clock{Hour: 23, Minute: 59}, c)
}

func TestParseClock_Invalid(t *testing.T) {
	for _, s := range []string{"", "9:00", "0900", "24:00", "12:60", "ab:cd", "12:3x", "12-30", "12:300"} {
		_, err := ParseClock(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestClockNext_LaterToday(t *testing.T) {
	now := time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)
	c := Clock{Hour: 9, Minute: 30}
	assert.Equal(t, time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC), c.Next(now))
}

func TestClockNext_AlreadyPastFallsForward(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	c := Clock{Hour: 9, Minute: 30}
	assert.Equal(t, time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC), c.Next(now))
}

func TestClockNext_ExactNowFallsForward(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC)
	c := Clock{Hour: 9, Minute: 30}
	assert.Equal(t, time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC), c.Next(now))
}

func TestNewTask_Validates(t *testing.T) {
	task, err := NewTask("t1", "Write report", "weekly", "09:00", "10:30")
	require.NoError(t, err)
	assert.Equal(t, StatusTodo, task.Status)
	assert.Equal(t, 0, task.TimeSpent)
	assert.False(t, task.CreatedAt.IsZero())

	_, err = NewTask("t2", "Bad clock", "", "9am", "10:30")
	assert.Error(t, err)

	_, err = NewTask("t3", "Bad end", "", "09:00", "25:00")
	assert.Error(t, err)

	_, err = NewTask("", "No id", "", "09:00", "10:00")
	assert.Error(t, err)
}

func TestPatchApply(t *testing.T) {
	task := Task{ID: "t1", Title: "Old", Description: "desc", Status: StatusTodo, TimeSpent: 10}

	title := "New"
	status := StatusBacklog
	Patch{Title: &title, Status: &status}.Apply(&task)

	assert.Equal(t, "t1", task.ID)
	assert.Equal(t, "New", task.Title)
	assert.Equal(t, "desc", task.Description) // untouched
	assert.Equal(t, StatusBacklog, task.Status)
	assert.Equal(t, 10, task.TimeSpent) // untouched
}

func TestParseStatus(t *testing.T) {
	for _, s := range Statuses {
		got, err := ParseStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseStatus("done")
	assert.Error(t, err)
}
