package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/existflow/flowboard/internal/analytics"
	"github.com/existflow/flowboard/internal/db"
	"github.com/existflow/flowboard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*db.DB, *Store) {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "flowboard.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database, New(context.Background(), database)
}

func makeTask(id string, status model.Status, spent int) model.Task {
	return model.Task{
		ID:        id,
		Title:     "task " + id,
		Status:    status,
		StartTime: "09:00",
		EndTime:   "17:00",
		TimeSpent: spent,
		CreatedAt: time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC),
	}
}

func TestAdd(t *testing.T) {
	ctx := context.Background()
	_, st := newTestStore(t)

	require.NoError(t, st.Add(ctx, makeTask("a", model.StatusTodo, 0)))

	tasks := st.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "a", tasks[0].ID)
	assert.Contains(t, st.Analytics().TasksByDay["2026-08-31"], "a")
}

func TestAdd_RejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	_, st := newTestStore(t)

	require.NoError(t, st.Add(ctx, makeTask("a", model.StatusTodo, 0)))
	assert.Error(t, st.Add(ctx, makeTask("a", model.StatusTodo, 0)))
	assert.Len(t, st.Tasks(), 1)
}

func TestAdd_RejectsMalformedClock(t *testing.T) {
	ctx := context.Background()
	_, st := newTestStore(t)

	bad := makeTask("a", model.StatusTodo, 0)
	bad.EndTime = "9pm"
	assert.Error(t, st.Add(ctx, bad))
	assert.Empty(t, st.Tasks())
}

func TestUpdate_MergesInPlace(t *testing.T) {
	ctx := context.Background()
	_, st := newTestStore(t)
	require.NoError(t, st.Add(ctx, makeTask("a", model.StatusTodo, 30)))

	title := "renamed"
	status := model.StatusInProgress
	require.NoError(t, st.Update(ctx, "a", model.Patch{Title: &title, Status: &status}))

	task, err := st.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "renamed", task.Title)
	assert.Equal(t, model.StatusInProgress, task.Status)
	assert.Equal(t, 30, task.TimeSpent) // untouched
}

func TestUpdate_UnknownID(t *testing.T) {
	ctx := context.Background()
	_, st := newTestStore(t)
	require.NoError(t, st.Add(ctx, makeTask("a", model.StatusTodo, 0)))

	title := "x"
	err := st.Update(ctx, "nope", model.Patch{Title: &title})
	assert.ErrorIs(t, err, ErrTaskNotFound)

	// state untouched
	task, _ := st.Get("a")
	assert.Equal(t, "task a", task.Title)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	_, st := newTestStore(t)
	require.NoError(t, st.Add(ctx, makeTask("a", model.StatusTodo, 10)))
	require.NoError(t, st.Add(ctx, makeTask("b", model.StatusTodo, 20)))

	require.NoError(t, st.Delete(ctx, "a"))

	tasks := st.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "b", tasks[0].ID)
	assert.Equal(t, 20, st.Analytics().TotalTimeSpent)

	assert.ErrorIs(t, st.Delete(ctx, "a"), ErrTaskNotFound)
}

func TestClearColumn(t *testing.T) {
	ctx := context.Background()
	_, st := newTestStore(t)
	for _, id := range []string{"b1", "b2", "b3"} {
		require.NoError(t, st.Add(ctx, makeTask(id, model.StatusBacklog, 5)))
	}
	for _, id := range []string{"t1", "t2"} {
		require.NoError(t, st.Add(ctx, makeTask(id, model.StatusTodo, 7)))
	}

	removed, err := st.ClearColumn(ctx, model.StatusBacklog)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	tasks := st.Tasks()
	require.Len(t, tasks, 2)
	for _, task := range tasks {
		assert.Equal(t, model.StatusTodo, task.Status)
	}

	a := st.Analytics()
	assert.Equal(t, 14, a.TotalTimeSpent)
	assert.Len(t, a.TimeSpentByTask, 2)
}

func TestMoveToBacklog(t *testing.T) {
	ctx := context.Background()
	_, st := newTestStore(t)
	require.NoError(t, st.Add(ctx, makeTask("a", model.StatusTodo, 0)))
	require.NoError(t, st.Add(ctx, makeTask("b", model.StatusTodo, 0)))
	require.NoError(t, st.Add(ctx, makeTask("c", model.StatusCompleted, 0)))

	moved, err := st.MoveToBacklog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, moved)

	assert.Len(t, st.ByColumn(model.StatusBacklog), 2)
	assert.Empty(t, st.ByColumn(model.StatusTodo))
	assert.Len(t, st.ByColumn(model.StatusCompleted), 1)
}

func TestAddTimeSpent_Additive(t *testing.T) {
	ctx := context.Background()
	_, st := newTestStore(t)
	require.NoError(t, st.Add(ctx, makeTask("x", model.StatusTodo, 0)))

	require.NoError(t, st.AddTimeSpent(ctx, "x", 30))
	require.NoError(t, st.AddTimeSpent(ctx, "x", 30))

	task, err := st.Get("x")
	require.NoError(t, err)
	assert.Equal(t, 60, task.TimeSpent)
	assert.Equal(t, 60, st.Analytics().TotalTimeSpent)

	assert.ErrorIs(t, st.AddTimeSpent(ctx, "nope", 30), ErrTaskNotFound)
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	database, st := newTestStore(t)

	require.NoError(t, st.Add(ctx, makeTask("a", model.StatusTodo, 120)))
	require.NoError(t, st.Add(ctx, makeTask("b", model.StatusBacklog, 45)))
	require.NoError(t, st.AddTimeSpent(ctx, "a", 15))

	restored := New(ctx, database)
	assert.Equal(t, st.Tasks(), restored.Tasks())
	assert.Equal(t, analytics.Derive(st.Tasks()), restored.Analytics())
}

func TestNew_MalformedStateFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	database, err := db.Open(filepath.Join(t.TempDir(), "flowboard.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	// A string where the state object should be fails to unmarshal.
	require.NoError(t, database.KVSet(ctx, StateKey, "not a board"))

	st := New(ctx, database)
	assert.Empty(t, st.Tasks())
	assert.Equal(t, 0, st.Analytics().TotalTimeSpent)

	// The store remains usable after the fallback.
	require.NoError(t, st.Add(ctx, makeTask("a", model.StatusTodo, 0)))
	assert.Len(t, st.Tasks(), 1)
}

func TestAnalytics_NoRecomputeOnRead(t *testing.T) {
	ctx := context.Background()
	_, st := newTestStore(t)
	require.NoError(t, st.Add(ctx, makeTask("a", model.StatusTodo, 10)))

	first := st.Analytics()
	second := st.Analytics()
	assert.Equal(t, first, second)
}
