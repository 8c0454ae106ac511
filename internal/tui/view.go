package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/existflow/flowboard/internal/model"
	"github.com/existflow/flowboard/internal/timeutil"
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := m.renderHeader()
	board := m.renderBoard()
	statusBar := m.renderStatusBar()

	content := lipgloss.JoinVertical(lipgloss.Left, header, board)

	if m.mode >= ModeAddTitle && m.mode <= ModeAddEnd {
		content = m.overlay(m.renderAddModal())
	}
	if m.timerRunning && m.mode == ModeNormal {
		content = lipgloss.JoinVertical(lipgloss.Left, header, board, m.renderTimerBar())
	}
	if m.mode == ModeHelp {
		content = m.renderHelp()
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (m Model) renderHeader() string {
	now := time.Now().Format("15:04:05")
	title := HeaderStyle.Render("FlowBoard")
	clock := HelpStyle.Render(now)
	total := HelpStyle.Render("total " + timeutil.FormatDurationLong(m.store.Analytics().TotalTimeSpent))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", clock, "  ", total)
}

func (m Model) renderBoard() string {
	colWidth := m.width/len(model.Statuses) - 4
	if colWidth < 16 {
		colWidth = 16
	}
	colHeight := m.height - 6

	rendered := make([]string, 0, len(model.Statuses))
	for i, status := range model.Statuses {
		rendered = append(rendered, m.renderColumn(i, status, colWidth, colHeight))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderColumn(index int, status model.Status, width, height int) string {
	tasks := m.columns[status]

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(ColumnColor(status))
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%d)", status.Title(), len(tasks))))
	b.WriteString("\n\n")

	for row, t := range tasks {
		style := TaskItemStyle
		cursor := "  "
		if index == m.col && row == m.row {
			style = TaskItemSelectedStyle
			cursor = "❯ "
		}
		if t.Status == model.StatusCompleted {
			style = TaskDoneStyle
		}

		line := cursor + truncate(t.Title, width-10)
		meta := fmt.Sprintf("   %s-%s · %s", t.StartTime, t.EndTime,
			timeutil.FormatDurationLong(t.TimeSpent))

		b.WriteString(style.Render(line) + "\n")
		b.WriteString(HelpStyle.Render(truncate(meta, width-2)) + "\n")
	}

	if len(tasks) == 0 {
		b.WriteString(HelpStyle.Render("  (empty)"))
	}

	style := ColumnStyle
	if index == m.col {
		style = ColumnFocusedStyle
	}
	return style.Width(width).Height(height).Render(b.String())
}

func (m Model) renderTimerBar() string {
	countdown := timeutil.FormatDuration(m.timerRemaining)
	label := fmt.Sprintf("⏱  %s — %s remaining (S to stop)", truncate(m.timerLabel, 30), countdown)
	return TimerModalStyle.Render(label)
}

func (m Model) renderAddModal() string {
	step := map[Mode]string{
		ModeAddTitle:       "New task — title",
		ModeAddDescription: "New task — description",
		ModeAddStart:       "New task — start time",
		ModeAddEnd:         "New task — end time",
	}[m.mode]

	content := lipgloss.JoinVertical(lipgloss.Left,
		HeaderStyle.Render(step),
		"",
		m.input.View(),
		"",
		HelpStyle.Render("enter next · esc cancel"),
	)
	return ModalStyle.Render(content)
}

func (m Model) overlay(modal string) string {
	return lipgloss.Place(
		m.width, m.height-2,
		lipgloss.Center, lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
	)
}

func (m Model) renderHelp() string {
	lines := []string{
		HeaderStyle.Render("FlowBoard keys"),
		"",
		"  ↑/k ↓/j     move within column",
		"  ←/h →/l     switch column",
		"  </H >/L     move task between columns",
		"  a           add task",
		"  s           start timer (To Do only)",
		"  S           stop timer (task stays In Progress)",
		"  x           mark completed",
		"  d           delete task",
		"  C           clear focused column",
		"  b           move all To Do tasks to Backlog",
		"  q           quit",
		"",
		HelpStyle.Render("press any key to close"),
	}
	return m.overlay(ModalStyle.Render(strings.Join(lines, "\n")))
}

func (m Model) renderStatusBar() string {
	help := "a add · s start · S stop · d delete · ? help · q quit"
	if m.message != "" {
		help = m.message
	}
	return StatusBarStyle.Width(m.width).Render(help)
}
