package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ftahirops/xpm/session"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestResolve(t *testing.T) {
	keys := DefaultKeyMap()
	normal, filtering, confirming := session.ModeNormal, session.ModeFiltering, session.ModeConfirming

	tests := []struct {
		name string
		mode session.Mode
		msg  tea.KeyMsg
		want action
	}{
		{"normal q quits", normal, runeKey('q'), actQuit},
		{"normal up", normal, tea.KeyMsg{Type: tea.KeyUp}, actUp},
		{"normal k", normal, runeKey('k'), actUp},
		{"normal down", normal, tea.KeyMsg{Type: tea.KeyDown}, actDown},
		{"normal j", normal, runeKey('j'), actDown},
		{"normal enter", normal, tea.KeyMsg{Type: tea.KeyEnter}, actKill},
		{"normal s", normal, runeKey('s'), actSearch},
		{"normal S", normal, runeKey('S'), actSearch},
		{"normal slash", normal, runeKey('/'), actSearch},
		{"normal r", normal, runeKey('r'), actRefresh},
		{"normal R", normal, runeKey('R'), actRefresh},
		{"normal y ignored", normal, runeKey('y'), actNone},
		{"normal esc ignored", normal, tea.KeyMsg{Type: tea.KeyEsc}, actNone},
		{"normal x ignored", normal, runeKey('x'), actNone},

		{"filter q types", filtering, runeKey('q'), actAppend},
		{"filter k types", filtering, runeKey('k'), actAppend},
		{"filter s types", filtering, runeKey('s'), actAppend},
		{"filter space types", filtering, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, actAppend},
		{"filter up", filtering, tea.KeyMsg{Type: tea.KeyUp}, actUp},
		{"filter down", filtering, tea.KeyMsg{Type: tea.KeyDown}, actDown},
		{"filter enter", filtering, tea.KeyMsg{Type: tea.KeyEnter}, actKill},
		{"filter backspace", filtering, tea.KeyMsg{Type: tea.KeyBackspace}, actBackspace},
		{"filter esc", filtering, tea.KeyMsg{Type: tea.KeyEsc}, actExitFilter},
		{"filter alt rune ignored", filtering, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, actNone},
		{"filter tab ignored", filtering, tea.KeyMsg{Type: tea.KeyTab}, actNone},

		{"confirm y", confirming, runeKey('y'), actConfirm},
		{"confirm Y", confirming, runeKey('Y'), actConfirm},
		{"confirm n", confirming, runeKey('n'), actCancel},
		{"confirm N", confirming, runeKey('N'), actCancel},
		{"confirm esc", confirming, tea.KeyMsg{Type: tea.KeyEsc}, actCancel},
		{"confirm q consumed", confirming, runeKey('q'), actNone},
		{"confirm enter consumed", confirming, tea.KeyMsg{Type: tea.KeyEnter}, actNone},
		{"confirm up consumed", confirming, tea.KeyMsg{Type: tea.KeyUp}, actNone},

		{"ctrl+c normal", normal, tea.KeyMsg{Type: tea.KeyCtrlC}, actQuit},
		{"ctrl+c filtering", filtering, tea.KeyMsg{Type: tea.KeyCtrlC}, actQuit},
		{"ctrl+c confirming", confirming, tea.KeyMsg{Type: tea.KeyCtrlC}, actQuit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolve(keys, tt.mode, tt.msg); got != tt.want {
				t.Errorf("resolve(%v, %q) = %d, want %d", tt.mode, tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestTypedRunes(t *testing.T) {
	if got := typedRunes(tea.KeyMsg{Type: tea.KeySpace}); string(got) != " " {
		t.Errorf("space: got %q", string(got))
	}
	if got := typedRunes(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")}); string(got) != "ab" {
		t.Errorf("runes: got %q", string(got))
	}
}
