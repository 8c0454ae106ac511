// Package store owns the canonical task list and its derived analytics.
// Every mutation is one synchronous step: mutate, re-derive analytics,
// persist write-through, then return.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/existflow/flowboard/internal/analytics"
	"github.com/existflow/flowboard/internal/db"
	"github.com/existflow/flowboard/internal/logger"
	"github.com/existflow/flowboard/internal/model"
)

// StateKey is the KV slot holding the serialized board state.
const StateKey = "task-storage"

// ErrTaskNotFound is returned by operations targeting an unknown task id.
// State is left untouched; callers that want lenient semantics ignore it.
var ErrTaskNotFound = errors.New("task not found")

// State is the persisted blob shape. Analytics is stored redundantly and
// always re-derived on load.
type State struct {
	Tasks     []model.Task        `json:"tasks"`
	Analytics analytics.Analytics `json:"analytics"`
}

// Store is the single logical writer over the persisted task list
type Store struct {
	mu        sync.Mutex
	db        *db.DB
	tasks     []model.Task
	analytics analytics.Analytics
}

// New creates a store, restoring persisted state if present. A missing or
// malformed blob falls back to an empty board; startup never fails on it.
func New(ctx context.Context, database *db.DB) *Store {
	s := &Store{db: database}

	var st State
	if err := database.KVGet(ctx, StateKey, &st); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Debug("No persisted board state, starting empty")
		} else {
			logger.Warn("Unreadable board state, starting empty", logger.F("error", err))
		}
		st = State{}
	}
	s.tasks = st.Tasks
	s.analytics = analytics.Derive(s.tasks)
	return s
}

// Add appends a validated task and recomputes analytics.
// Duplicate ids are rejected rather than silently shadowed.
func (s *Store) Add(ctx context.Context, task model.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("add task: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(task.ID) >= 0 {
		return fmt.Errorf("add task: duplicate id %q", task.ID)
	}
	s.tasks = append(s.tasks, task)
	return s.commit(ctx)
}

// Update merges the patch into the matching task in place
func (s *Store) Update(ctx context.Context, id string, patch model.Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrTaskNotFound
	}
	patch.Apply(&s.tasks[i])
	return s.commit(ctx)
}

// Delete removes the matching task
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrTaskNotFound
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return s.commit(ctx)
}

// ClearColumn removes every task in the given column and returns how many
// were removed
func (s *Store) ClearColumn(ctx context.Context, status model.Status) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.tasks[:0]
	removed := 0
	for _, t := range s.tasks {
		if t.Status == status {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept
	return removed, s.commit(ctx)
}

// MoveToBacklog bulk-transitions every todo task to backlog and returns how
// many moved
func (s *Store) MoveToBacklog(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	moved := 0
	for i := range s.tasks {
		if s.tasks[i].Status == model.StatusTodo {
			s.tasks[i].Status = model.StatusBacklog
			moved++
		}
	}
	return moved, s.commit(ctx)
}

// AddTimeSpent adds seconds to the task's cumulative tracked time.
// Additive: two calls of 30 yield 60, never 30.
func (s *Store) AddTimeSpent(ctx context.Context, id string, seconds int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrTaskNotFound
	}
	s.tasks[i].TimeSpent += seconds
	return s.commit(ctx)
}

// Get returns a copy of the matching task
func (s *Store) Get(id string) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Task{}, ErrTaskNotFound
	}
	return s.tasks[i], nil
}

// Tasks returns a copy of the task list in insertion order
func (s *Store) Tasks() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// ByColumn returns copies of the tasks in one column, in insertion order
func (s *Store) ByColumn(status model.Status) []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Task
	for _, t := range s.tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// Analytics returns the last-computed aggregate without recomputing
func (s *Store) Analytics() analytics.Analytics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.analytics
}

// commit re-derives analytics and persists the full state. Callers hold mu.
func (s *Store) commit(ctx context.Context) error {
	s.analytics = analytics.Derive(s.tasks)
	st := State{Tasks: s.tasks, Analytics: s.analytics}
	if err := s.db.KVSet(ctx, StateKey, st); err != nil {
		return fmt.Errorf("persist board state: %w", err)
	}
	return nil
}

func (s *Store) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
