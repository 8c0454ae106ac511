package analytics

import (
	"testing"
	"time"

	"github.com/existflow/flowboard/internal/model"
	"github.com/existflow/flowboard/internal/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTask(id string, createdAt time.Time, spent int) model.Task {
	return model.Task{
		ID:        id,
		Title:     "task " + id,
		Status:    model.StatusTodo,
		StartTime: "09:00",
		EndTime:   "17:00",
		TimeSpent: spent,
		CreatedAt: createdAt,
	}
}

func TestDerive_Empty(t *testing.T) {
	a := Derive(nil)
	assert.Equal(t, 0, a.TotalTimeSpent)
	assert.Empty(t, a.TasksByDay)
	assert.Empty(t, a.TasksByWeek)
	assert.Empty(t, a.TimeSpentByTask)
}

func TestDerive_TotalIsSum(t *testing.T) {
	day := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		makeTask("a", day, 120),
		makeTask("b", day.AddDate(0, 0, 1), 45),
		makeTask("c", day.AddDate(0, 0, 9), 0),
	}

	a := Derive(tasks)
	assert.Equal(t, 165, a.TotalTimeSpent)
	assert.Equal(t, 120, a.TimeSpentByTask["a"])
	assert.Equal(t, 45, a.TimeSpentByTask["b"])
	assert.Equal(t, 0, a.TimeSpentByTask["c"])
}

func TestDerive_EveryTaskInExactlyOneBucket(t *testing.T) {
	base := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	var tasks []model.Task
	for i := 0; i < 10; i++ {
		tasks = append(tasks, makeTask(string(rune('a'+i)), base.AddDate(0, 0, i), i))
	}

	a := Derive(tasks)

	dayCount := make(map[string]int)
	for _, ids := range a.TasksByDay {
		for _, id := range ids {
			dayCount[id]++
		}
	}
	weekCount := make(map[string]int)
	for _, ids := range a.TasksByWeek {
		for _, id := range ids {
			weekCount[id]++
		}
	}

	for _, task := range tasks {
		assert.Equal(t, 1, dayCount[task.ID], "task %s day buckets", task.ID)
		assert.Equal(t, 1, weekCount[task.ID], "task %s week buckets", task.ID)
		assert.Contains(t, a.TasksByDay[timeutil.DayKey(task.CreatedAt)], task.ID)
		assert.Contains(t, a.TasksByWeek[timeutil.WeekKey(task.CreatedAt)], task.ID)
	}
}

func TestDerive_SameDayKeepsInputOrder(t *testing.T) {
	day := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		makeTask("first", day, 0),
		makeTask("second", day, 0),
		makeTask("third", day, 0),
	}

	a := Derive(tasks)
	assert.Equal(t, []string{"first", "second", "third"}, a.TasksByDay["2026-08-31"])
	assert.Equal(t, []string{"first", "second", "third"}, a.TasksByWeek["2026-08-31"])
}

func TestDerive_DoesNotMutateInput(t *testing.T) {
	day := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	tasks := []model.Task{makeTask("a", day, 10)}
	before := tasks[0]

	_ = Derive(tasks)
	assert.Equal(t, before, tasks[0])
}

func TestTimeSpentOnDayAndWeek(t *testing.T) {
	now := time.Date(2026, 9, 2, 15, 0, 0, 0, time.UTC) // Wednesday
	tasks := []model.Task{
		makeTask("today", now, 100),
		makeTask("monday", time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC), 50),
		makeTask("lastweek", time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC), 999),
	}

	a := Derive(tasks)
	assert.Equal(t, 100, a.TimeSpentOnDay(now))
	assert.Equal(t, 150, a.TimeSpentInWeek(now))
}

func TestMostTimeConsuming(t *testing.T) {
	day := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	a := Derive([]model.Task{
		makeTask("small", day, 10),
		makeTask("big", day, 500),
		makeTask("mid", day, 60),
	})

	id, seconds, ok := a.MostTimeConsuming()
	require.True(t, ok)
	assert.Equal(t, "big", id)
	assert.Equal(t, 500, seconds)
}

func TestMostTimeConsuming_NoTrackedTime(t *testing.T) {
	day := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	a := Derive([]model.Task{makeTask("a", day, 0)})

	_, _, ok := a.MostTimeConsuming()
	assert.False(t, ok)
}
