package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/flowboard/internal/logger"
	"github.com/existflow/flowboard/internal/model"
	"github.com/existflow/flowboard/internal/timer"
	"github.com/google/uuid"
)

// tickMsg is sent every second to drive the timer session
type tickMsg time.Time

// Init starts the per-second tick
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Every(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.handleTick(time.Time(msg))
		return m, tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.mode == ModeNormal {
			return m.updateNormal(msg)
		}
		if m.mode == ModeHelp {
			m.mode = ModeNormal
			return m, nil
		}
		return m.updateInput(msg)
	}

	return m, nil
}

func (m *Model) handleTick(now time.Time) {
	tick, err := m.controller.Tick(context.Background(), now)
	if err != nil {
		if !errors.Is(err, timer.ErrNoSession) {
			logger.Error("Timer tick failed", logger.F("error", err))
			m.message = err.Error()
		}
		m.timerRunning = false
		return
	}

	if tick.Expired {
		m.timerRunning = false
		m.message = fmt.Sprintf("Timer expired: %q completed", tick.TaskTitle)
		m.loadData()
		return
	}

	m.timerRunning = true
	m.timerLabel = tick.TaskTitle
	m.timerRemaining = int(tick.Remaining.Seconds())
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.mode = ModeHelp

	case key.Matches(msg, keys.Up):
		if m.row > 0 {
			m.row--
		}

	case key.Matches(msg, keys.Down):
		if m.row < len(m.currentColumn())-1 {
			m.row++
		}

	case key.Matches(msg, keys.Left):
		if m.col > 0 {
			m.col--
			m.clampCursor()
		}

	case key.Matches(msg, keys.Right):
		if m.col < len(model.Statuses)-1 {
			m.col++
			m.clampCursor()
		}

	case key.Matches(msg, keys.Add):
		m.mode = ModeAddTitle
		m.draft = draft{}
		m.input.Placeholder = "Task title..."
		m.input.SetValue("")
		m.input.Focus()
		return m, nil

	case key.Matches(msg, keys.MoveLeft):
		m.moveTask(ctx, -1)

	case key.Matches(msg, keys.MoveRight):
		m.moveTask(ctx, 1)

	case key.Matches(msg, keys.Start):
		if task := m.currentTask(); task != nil {
			if err := m.controller.Start(ctx, task.ID, time.Now()); err != nil {
				m.message = err.Error()
			} else {
				m.message = fmt.Sprintf("Timer running for %q until %s", task.Title, task.EndTime)
				m.loadData()
			}
		}

	case key.Matches(msg, keys.Stop):
		elapsed, err := m.controller.Stop(ctx, time.Now())
		if err != nil {
			m.message = err.Error()
		} else {
			m.timerRunning = false
			m.message = fmt.Sprintf("Timer stopped after %ds", int(elapsed.Seconds()))
			m.loadData()
		}

	case key.Matches(msg, keys.Complete):
		if task := m.currentTask(); task != nil {
			status := model.StatusCompleted
			if err := m.store.Update(ctx, task.ID, model.Patch{Status: &status}); err != nil {
				m.message = err.Error()
			} else {
				m.message = fmt.Sprintf("Completed %q", task.Title)
				m.loadData()
			}
		}

	case key.Matches(msg, keys.Delete):
		if task := m.currentTask(); task != nil {
			if err := m.store.Delete(ctx, task.ID); err != nil {
				m.message = err.Error()
			} else {
				m.message = fmt.Sprintf("Deleted %q", task.Title)
				m.loadData()
			}
		}

	case key.Matches(msg, keys.Clear):
		removed, err := m.store.ClearColumn(ctx, m.currentStatus())
		if err != nil {
			m.message = err.Error()
		} else {
			m.message = fmt.Sprintf("Cleared %d task(s) from %s", removed, m.currentStatus().Title())
			m.loadData()
		}

	case key.Matches(msg, keys.Backlog):
		moved, err := m.store.MoveToBacklog(ctx)
		if err != nil {
			m.message = err.Error()
		} else {
			m.message = fmt.Sprintf("Moved %d task(s) to Backlog", moved)
			m.loadData()
		}
	}

	return m, nil
}

// moveTask shifts the selected task one column left or right, the keyboard
// stand-in for dragging a card.
func (m *Model) moveTask(ctx context.Context, delta int) {
	task := m.currentTask()
	if task == nil {
		return
	}
	target := m.col + delta
	if target < 0 || target >= len(model.Statuses) {
		return
	}

	status := model.Statuses[target]
	if err := m.store.Update(ctx, task.ID, model.Patch{Status: &status}); err != nil {
		m.message = err.Error()
		return
	}
	m.col = target
	m.loadData()

	// The card keeps its insertion-order position, so find it in the
	// target column rather than assuming it landed last.
	m.row = 0
	for i, t := range m.currentColumn() {
		if t.ID == task.ID {
			m.row = i
			break
		}
	}
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil

	case key.Matches(msg, keys.Enter):
		return m.advanceAddFlow()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// advanceAddFlow walks title → description → start → end, then creates the
// task in the To Do column.
func (m Model) advanceAddFlow() (tea.Model, tea.Cmd) {
	value := m.input.Value()

	switch m.mode {
	case ModeAddTitle:
		if value == "" {
			return m, nil
		}
		m.draft.title = value
		m.mode = ModeAddDescription
		m.input.Placeholder = "Description (optional)..."
		m.input.SetValue("")

	case ModeAddDescription:
		m.draft.description = value
		m.mode = ModeAddStart
		m.input.Placeholder = "Start time (HH:MM)..."
		m.input.SetValue("09:00")

	case ModeAddStart:
		m.draft.start = value
		m.mode = ModeAddEnd
		m.input.Placeholder = "End time (HH:MM)..."
		m.input.SetValue("17:00")

	case ModeAddEnd:
		task, err := model.NewTask(uuid.New().String(), m.draft.title, m.draft.description, m.draft.start, value)
		if err != nil {
			m.message = err.Error()
			m.mode = ModeAddStart
			m.input.Placeholder = "Start time (HH:MM)..."
			m.input.SetValue(m.draft.start)
			return m, nil
		}
		if err := m.store.Add(context.Background(), task); err != nil {
			m.message = err.Error()
		} else {
			m.message = fmt.Sprintf("Added %q to To Do", task.Title)
		}
		m.mode = ModeNormal
		m.input.Blur()
		m.loadData()
	}

	return m, nil
}
