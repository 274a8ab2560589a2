package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ftahirops/xpm/session"
)

// action is the outcome of dispatching one key in one mode.
type action int

const (
	actNone action = iota
	actQuit
	actUp
	actDown
	actKill
	actSearch
	actRefresh
	actAppend
	actBackspace
	actExitFilter
	actConfirm
	actCancel
)

type rule struct {
	binding key.Binding
	act     action
}

// rules returns the (key → action) table for a mode. Rules are tried in
// order; the first match wins.
func (k KeyMap) rules(mode session.Mode) []rule {
	switch mode {
	case session.ModeConfirming:
		return []rule{
			{k.Yes, actConfirm},
			{k.No, actCancel},
		}
	case session.ModeFiltering:
		return []rule{
			{k.FilterUp, actUp},
			{k.FilterDown, actDown},
			{k.Kill, actKill},
			{k.Backspace, actBackspace},
			{k.ExitFilter, actExitFilter},
		}
	default:
		return []rule{
			{k.Quit, actQuit},
			{k.Up, actUp},
			{k.Down, actDown},
			{k.Kill, actKill},
			{k.Search, actSearch},
			{k.Refresh, actRefresh},
		}
	}
}

// resolve maps a key press in the given mode to an action. ctrl+c ends
// the session from any mode; confirmation consumes every other key.
func resolve(k KeyMap, mode session.Mode, msg tea.KeyMsg) action {
	if key.Matches(msg, k.ForceQuit) {
		return actQuit
	}
	for _, r := range k.rules(mode) {
		if key.Matches(msg, r.binding) {
			return r.act
		}
	}
	if mode == session.ModeFiltering && !msg.Alt &&
		(msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace) {
		return actAppend
	}
	return actNone
}

// typedRunes returns the characters a key press adds to the query.
func typedRunes(msg tea.KeyMsg) []rune {
	if msg.Type == tea.KeySpace {
		return []rune{' '}
	}
	return msg.Runes
}
