package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding
	Add       key.Binding
	Start     key.Binding
	Stop      key.Binding
	Complete  key.Binding
	Delete    key.Binding
	Clear     key.Binding
	Backlog   key.Binding
	Help      key.Binding
	Quit      key.Binding
	Escape    key.Binding
	Enter     key.Binding
}

var keys = keyMap{
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev column")),
	Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next column")),
	MoveLeft:  key.NewBinding(key.WithKeys("<", "H"), key.WithHelp("</H", "move task left")),
	MoveRight: key.NewBinding(key.WithKeys(">", "L"), key.WithHelp(">/L", "move task right")),
	Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
	Start:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start timer")),
	Stop:      key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "stop timer")),
	Complete:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "complete")),
	Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Clear:     key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear column")),
	Backlog:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "todo → backlog")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Escape:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
}
