package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/ftahirops/xpm/session"
)

// KeyMap defines the key bindings of the top session, per mode.
type KeyMap struct {
	// Normal
	Up      key.Binding
	Down    key.Binding
	Kill    key.Binding
	Search  key.Binding
	Refresh key.Binding
	Quit    key.Binding

	// Filtering; printable keys go to the query
	FilterUp   key.Binding
	FilterDown key.Binding
	Backspace  key.Binding
	ExitFilter key.Binding

	// Confirming
	Yes key.Binding
	No  key.Binding

	// Any mode
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Kill: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "kill"),
		),
		Search: key.NewBinding(
			key.WithKeys("s", "S", "/"),
			key.WithHelp("s", "search"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		FilterUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		FilterDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", "delete"),
		),
		ExitFilter: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "exit search"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm kill"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n/esc", "cancel"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
	}
}

// ShortHelp returns the hints shown in the footer for a mode.
func (k KeyMap) ShortHelp(mode session.Mode) []key.Binding {
	switch mode {
	case session.ModeConfirming:
		return []key.Binding{k.Yes, k.No}
	case session.ModeFiltering:
		return []key.Binding{k.FilterUp, k.FilterDown, k.Kill, k.Backspace, k.ExitFilter}
	default:
		return []key.Binding{k.Up, k.Down, k.Kill, k.Search, k.Refresh, k.Quit}
	}
}
