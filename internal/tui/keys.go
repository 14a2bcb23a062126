package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the stopwatch key bindings with built-in help text.
type KeyMap struct {
	Toggle key.Binding
	Stop   key.Binding
	Change key.Binding
	Help   key.Binding
	Quit   key.Binding

	// Time entry
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space", "p"),
			key.WithHelp("space", "start/pause/resume"),
		),
		Stop: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stop"),
		),
		Change: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "change time"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (keys KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.Toggle, keys.Stop, keys.Change, keys.Quit}
}

// FullHelp implements help.KeyMap.
func (keys KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.Toggle, keys.Stop, keys.Change},
		{keys.Confirm, keys.Cancel},
		{keys.Help, keys.Quit},
	}
}
