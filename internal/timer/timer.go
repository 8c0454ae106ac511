// Package timer runs the single countdown session against an active task.
// Elapsed time is measured from a captured wall-clock instant; the task's
// clock-of-day fields only ever determine the target expiry instant, so a
// session that crosses midnight still accrues the right elapsed time.
package timer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/existflow/flowboard/internal/logger"
	"github.com/existflow/flowboard/internal/model"
	"github.com/existflow/flowboard/internal/notify"
	"github.com/existflow/flowboard/internal/store"
)

var (
	// ErrSessionActive is returned by Start while a session is running.
	// The caller decides whether to Stop first; there is no implicit restart.
	ErrSessionActive = errors.New("a timer session is already active")

	// ErrNoSession is returned by Tick and Stop when nothing is running.
	ErrNoSession = errors.New("no active timer session")

	// ErrNotStartable is returned when the task is not in the todo column.
	ErrNotStartable = errors.New("timer can only start on a todo task")
)

// Tick reports the outcome of one scheduling tick
type Tick struct {
	TaskID    string
	TaskTitle string
	Remaining time.Duration // signed; zero or negative at expiry
	Expired   bool
	Elapsed   time.Duration // set when Expired
}

// Controller drives at most one timer session over the task store.
// It is not safe for concurrent use; callers drive it from a single
// event loop, interleaving ticks with user actions.
type Controller struct {
	store    *store.Store
	notifier notify.Notifier

	taskID    string
	taskTitle string
	startedAt time.Time
	deadline  time.Time
	running   bool
}

// New creates an idle controller
func New(st *store.Store, notifier notify.Notifier) *Controller {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &Controller{store: st, notifier: notifier}
}

// Start begins a session on a todo task: the task moves to inProgress, the
// start instant is captured, and the deadline becomes the next occurrence
// of the task's end clock time.
func (c *Controller) Start(ctx context.Context, id string, now time.Time) error {
	if c.running {
		return ErrSessionActive
	}

	task, err := c.store.Get(id)
	if err != nil {
		return err
	}
	if task.Status != model.StatusTodo {
		return ErrNotStartable
	}

	end, err := model.ParseClock(task.EndTime)
	if err != nil {
		// Validate rejects these at creation; a persisted blob predating
		// validation could still carry one.
		return fmt.Errorf("task %s: %w", id, err)
	}

	status := model.StatusInProgress
	if err := c.store.Update(ctx, id, model.Patch{Status: &status}); err != nil {
		return err
	}

	c.taskID = id
	c.taskTitle = task.Title
	c.startedAt = now
	c.deadline = end.Next(now)
	c.running = true

	logger.Info("Timer started",
		logger.F("task", id),
		logger.F("deadline", c.deadline.Format(time.RFC3339)))
	return nil
}

// Tick recomputes remaining time. At zero or below the session expires:
// elapsed time folds into the task exactly once, the task completes, and
// the notifier fires.
func (c *Controller) Tick(ctx context.Context, now time.Time) (Tick, error) {
	if !c.running {
		return Tick{}, ErrNoSession
	}

	t := Tick{
		TaskID:    c.taskID,
		TaskTitle: c.taskTitle,
		Remaining: c.deadline.Sub(now),
	}
	if t.Remaining > 0 {
		return t, nil
	}

	t.Expired = true
	t.Elapsed = now.Sub(c.startedAt)

	// The session ends here even when persisting fails; a later tick must
	// not fold elapsed time a second time.
	defer c.clear()

	if err := c.store.AddTimeSpent(ctx, c.taskID, int(t.Elapsed.Seconds())); err != nil {
		return t, err
	}
	status := model.StatusCompleted
	completedAt := now
	if err := c.store.Update(ctx, c.taskID, model.Patch{Status: &status, CompletedAt: &completedAt}); err != nil {
		return t, err
	}

	c.notifier.TimerExpired(ctx, c.taskTitle)
	logger.Info("Timer expired",
		logger.F("task", c.taskID),
		logger.F("elapsed", t.Elapsed.String()))

	return t, nil
}

// Stop ends the session early, folding elapsed time into the task. The task
// stays inProgress; only expiry completes it.
func (c *Controller) Stop(ctx context.Context, now time.Time) (time.Duration, error) {
	if !c.running {
		return 0, ErrNoSession
	}

	elapsed := now.Sub(c.startedAt)
	defer c.clear()

	if err := c.store.AddTimeSpent(ctx, c.taskID, int(elapsed.Seconds())); err != nil {
		return elapsed, err
	}

	logger.Info("Timer stopped",
		logger.F("task", c.taskID),
		logger.F("elapsed", elapsed.String()))

	return elapsed, nil
}

// Active returns the task id of the running session, if any
func (c *Controller) Active() (string, bool) {
	return c.taskID, c.running
}

// Remaining returns signed time left until the deadline
func (c *Controller) Remaining(now time.Time) time.Duration {
	if !c.running {
		return 0
	}
	return c.deadline.Sub(now)
}

func (c *Controller) clear() {
	c.taskID = ""
	c.taskTitle = ""
	c.startedAt = time.Time{}
	c.deadline = time.Time{}
	c.running = false
}
