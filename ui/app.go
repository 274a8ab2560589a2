package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/ftahirops/xpm/apperr"
	"github.com/ftahirops/xpm/session"
)

type tickMsg time.Time

// Model is the bubbletea model driving a top session. The session is
// only touched from Update, so it needs no locking.
type Model struct {
	ctx      context.Context
	sess     *session.Session
	keys     KeyMap
	interval time.Duration
	width    int
	height   int

	// last refresh failure, shown in the title line
	status string
}

// NewModel creates a new TUI model. interval is the input poll timeout:
// the view is repainted at least this often.
func NewModel(ctx context.Context, sess *session.Session, interval time.Duration) Model {
	return Model{
		ctx:      ctx,
		sess:     sess,
		keys:     DefaultKeyMap(),
		interval: interval,
	}
}

func (m Model) Init() tea.Cmd {
	return tick(m.interval)
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		return m, tick(m.interval)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	act := resolve(m.keys, m.sess.Mode(), msg)
	switch act {
	case actQuit:
		return m, tea.Quit
	case actUp:
		m.sess.MoveSelection(session.Up)
	case actDown:
		m.sess.MoveSelection(session.Down)
	case actKill:
		m.sess.InitiateKill()
	case actSearch:
		m.sess.EnterFilterMode()
	case actRefresh:
		m.setStatus(m.sess.Refresh(m.ctx))
	case actAppend:
		for _, r := range typedRunes(msg) {
			m.sess.AppendQuery(r)
		}
	case actBackspace:
		m.sess.Backspace()
	case actExitFilter:
		m.sess.ExitFilterMode()
	case actConfirm:
		m.setStatus(m.sess.ConfirmKill(m.ctx))
	case actCancel:
		m.sess.CancelKill()
	}
	return m, nil
}

func (m *Model) setStatus(refreshErr error) {
	if refreshErr != nil {
		log.Warn().Err(refreshErr).Msg("refresh failed")
		m.status = "refresh failed: " + refreshErr.Error()
		return
	}
	m.status = ""
}

func (m Model) View() string {
	return strings.Join(Render(m.sess, m.keys, m.width, m.height, m.status), "\n")
}

// Run loads the first snapshot and runs the interactive session until
// the user quits or ctx is cancelled. bubbletea restores the terminal on
// every exit path; failures of the terminal itself are returned as
// TerminalIO errors.
func Run(ctx context.Context, sess *session.Session, interval time.Duration) error {
	for _, f := range []*os.File{os.Stdin, os.Stdout} {
		if !term.IsTerminal(int(f.Fd())) {
			return apperr.TerminalIO("open terminal", fmt.Errorf("%s is not a terminal", f.Name()))
		}
	}

	m := NewModel(ctx, sess, interval)
	m.setStatus(sess.Refresh(ctx))

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return exitErr(ctx, err)
}

// exitErr maps the program result to the session result. A program
// killed because ctx was cancelled (SIGINT, SIGTERM, SIGHUP) ends the
// session cleanly; any other failure is a terminal failure.
func exitErr(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		log.Info().Err(ctx.Err()).Msg("session terminated")
		return nil
	}
	return apperr.TerminalIO("run session", err)
}
