package model

import (
	"fmt"
	"time"
)

// Status places a task in exactly one board column.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "inProgress"
	StatusCompleted  Status = "completed"
	StatusBacklog    Status = "backlog"
)

// Statuses lists all columns in board order.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusCompleted, StatusBacklog}

// ParseStatus converts a string to a Status
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusTodo, StatusInProgress, StatusCompleted, StatusBacklog:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown column %q", s)
}

// Title returns the human-readable column title
func (s Status) Title() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	case StatusBacklog:
		return "Backlog"
	}
	return string(s)
}

// Task represents a single unit of work on the board
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	StartTime   string     `json:"startTime"`
	EndTime     string     `json:"endTime"`
	TimeSpent   int        `json:"timeSpent"` // cumulative seconds of tracked work
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// NewTask creates a todo task with validated clock fields
func NewTask(id, title, description, startTime, endTime string) (Task, error) {
	t := Task{
		ID:          id,
		Title:       title,
		Description: description,
		Status:      StatusTodo,
		StartTime:   startTime,
		EndTime:     endTime,
		CreatedAt:   time.Now(),
	}
	if err := t.Validate(); err != nil {
		return Task{}, err
	}
	return t, nil
}

// Validate rejects tasks with missing ids or malformed clock fields.
// Clock parse failures surface here, at creation time, never at timer time.
func (t Task) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("task id is required")
	}
	if _, err := ParseClock(t.StartTime); err != nil {
		return fmt.Errorf("start time: %w", err)
	}
	if _, err := ParseClock(t.EndTime); err != nil {
		return fmt.Errorf("end time: %w", err)
	}
	if _, err := ParseStatus(string(t.Status)); err != nil {
		return err
	}
	return nil
}

// Patch is a partial task update. Nil fields are left untouched.
type Patch struct {
	Title       *string
	Description *string
	Status      *Status
	StartTime   *string
	EndTime     *string
	TimeSpent   *int
	CompletedAt *time.Time
}

// Apply merges the patch into the task, preserving identity fields
func (p Patch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.StartTime != nil {
		t.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		t.EndTime = *p.EndTime
	}
	if p.TimeSpent != nil {
		t.TimeSpent = *p.TimeSpent
	}
	if p.CompletedAt != nil {
		t.CompletedAt = p.CompletedAt
	}
}
