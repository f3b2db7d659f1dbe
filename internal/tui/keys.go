package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Tab       key.Binding
	Enter     key.Binding
	Add       key.Binding
	Edit      key.Binding
	Toggle    key.Binding
	Delete    key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Theme     key.Binding
	Help      key.Binding
	Quit      key.Binding
	Escape    key.Binding
	Logout    key.Binding
}

var keys = keyMap{
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch tab")),
	Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
	Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit task")),
	Toggle:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "toggle done")),
	Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	PrevMonth: key.NewBinding(key.WithKeys("h", "left", "["), key.WithHelp("←/h", "prev month")),
	NextMonth: key.NewBinding(key.WithKeys("l", "right", "]"), key.WithHelp("→/l", "next month")),
	Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle theme")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Escape:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	Logout:    key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "logout")),
}
