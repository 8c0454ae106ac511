package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/existflow/flowboard/internal/model"
)

// Color palette
var (
	// Column accents
	TodoColor       = lipgloss.Color("#4ECDC4") // Teal
	InProgressColor = lipgloss.Color("#FFE66D") // Yellow
	CompletedColor  = lipgloss.Color("#95E1A3") // Green
	BacklogColor    = lipgloss.Color("#6C757D") // Gray

	// UI colors
	Primary   = lipgloss.Color("#4ECDC4")
	Surface   = lipgloss.Color("#16213e")
	TextMuted = lipgloss.Color("#888888")
	Border    = lipgloss.Color("#333333")
	Danger    = lipgloss.Color("#FF6B6B")
)

// Styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Padding(0, 1)

	ColumnStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	ColumnFocusedStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(Primary).
				Padding(0, 1)

	TaskItemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	TaskItemSelectedStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(Surface).
				Bold(true)

	TaskDoneStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Strikethrough(true).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)

	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	TimerModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Danger).
			Padding(1, 4).
			Align(lipgloss.Center)

	HelpStyle = lipgloss.NewStyle().
			Foreground(TextMuted)
)

// ColumnColor returns the accent color for a board column
func ColumnColor(status model.Status) lipgloss.Color {
	switch status {
	case model.StatusTodo:
		return TodoColor
	case model.StatusInProgress:
		return InProgressColor
	case model.StatusCompleted:
		return CompletedColor
	default:
		return BacklogColor
	}
}
