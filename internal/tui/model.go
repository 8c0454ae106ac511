package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/existflow/flowboard/internal/logger"
	"github.com/existflow/flowboard/internal/model"
	"github.com/existflow/flowboard/internal/store"
	"github.com/existflow/flowboard/internal/timer"
)

// Mode represents the current UI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeAddTitle
	ModeAddDescription
	ModeAddStart
	ModeAddEnd
	ModeHelp
)

// draft accumulates the add-task flow across input steps
type draft struct {
	title       string
	description string
	start       string
}

// Model is the main board model
type Model struct {
	store      *store.Store
	controller *timer.Controller

	columns map[model.Status][]model.Task

	// UI state
	width  int
	height int
	mode   Mode
	col    int // focused column index into model.Statuses
	row    int // cursor within the focused column

	// Add-task input
	input textinput.Model
	draft draft

	// Live countdown while a session runs
	timerLabel     string
	timerRemaining int
	timerRunning   bool

	message string
}

// NewModel creates the board model
func NewModel(st *store.Store, controller *timer.Controller) Model {
	logger.Info("Initializing board model")

	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40

	m := Model{
		store:      st,
		controller: controller,
		input:      ti,
	}
	m.loadData()
	return m
}

func (m *Model) loadData() {
	m.columns = make(map[model.Status][]model.Task, len(model.Statuses))
	for _, status := range model.Statuses {
		m.columns[status] = m.store.ByColumn(status)
	}
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.col < 0 {
		m.col = 0
	}
	if m.col >= len(model.Statuses) {
		m.col = len(model.Statuses) - 1
	}
	tasks := m.currentColumn()
	if m.row >= len(tasks) {
		m.row = len(tasks) - 1
	}
	if m.row < 0 {
		m.row = 0
	}
}

func (m *Model) currentStatus() model.Status {
	return model.Statuses[m.col]
}

func (m *Model) currentColumn() []model.Task {
	return m.columns[m.currentStatus()]
}

func (m *Model) currentTask() *model.Task {
	tasks := m.currentColumn()
	if len(tasks) == 0 || m.row >= len(tasks) {
		return nil
	}
	return &tasks[m.row]
}
