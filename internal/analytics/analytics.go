// Package analytics derives aggregate productivity metrics from the task
// list. Analytics is always a full recomputation, never patched in place,
// so it cannot drift from task state.
package analytics

import (
	"time"

	"github.com/existflow/flowboard/internal/model"
	"github.com/existflow/flowboard/internal/timeutil"
)

// Analytics is the aggregate view over all tasks
type Analytics struct {
	TotalTimeSpent  int                 `json:"totalTimeSpent"` // seconds
	TasksByDay      map[string][]string `json:"tasksByDay"`
	TasksByWeek     map[string][]string `json:"tasksByWeek"`
	TimeSpentByTask map[string]int      `json:"timeSpentByTask"`
}

// Derive recomputes the aggregate from scratch in a single pass. Bucket
// membership follows the input order, so tasks created on the same day stay
// in insertion order. The input is never mutated.
func Derive(tasks []model.Task) Analytics {
	a := Analytics{
		TasksByDay:      make(map[string][]string),
		TasksByWeek:     make(map[string][]string),
		TimeSpentByTask: make(map[string]int),
	}

	for _, t := range tasks {
		a.TotalTimeSpent += t.TimeSpent

		day := timeutil.DayKey(t.CreatedAt)
		a.TasksByDay[day] = append(a.TasksByDay[day], t.ID)

		week := timeutil.WeekKey(t.CreatedAt)
		a.TasksByWeek[week] = append(a.TasksByWeek[week], t.ID)

		a.TimeSpentByTask[t.ID] = t.TimeSpent
	}

	return a
}

// TimeSpentOnDay sums tracked seconds over tasks created on now's day
func (a Analytics) TimeSpentOnDay(now time.Time) int {
	return a.sumBucket(a.TasksByDay[timeutil.DayKey(now)])
}

// TimeSpentInWeek sums tracked seconds over tasks created in now's week
func (a Analytics) TimeSpentInWeek(now time.Time) int {
	return a.sumBucket(a.TasksByWeek[timeutil.WeekKey(now)])
}

// MostTimeConsuming returns the task id with the largest tracked time.
// ok is false when no task has tracked time.
func (a Analytics) MostTimeConsuming() (id string, seconds int, ok bool) {
	for taskID, spent := range a.TimeSpentByTask {
		if spent > seconds || (spent == seconds && ok && taskID < id) {
			id, seconds, ok = taskID, spent, true
		}
	}
	if seconds == 0 {
		return "", 0, false
	}
	return id, seconds, ok
}

func (a Analytics) sumBucket(ids []string) int {
	total := 0
	for _, id := range ids {
		total += a.TimeSpentByTask[id]
	}
	return total
}
