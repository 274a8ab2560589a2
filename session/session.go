// Package session holds the state of an interactive process-manager
// session: the current snapshot, the text filter, the selection cursor
// and a pending kill confirmation. All operations are synchronous and
// must be called from a single goroutine.
package session

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/ftahirops/xpm/collector"
	"github.com/ftahirops/xpm/model"
)

// Mode is the input mode derived from the session state.
type Mode int

const (
	ModeNormal Mode = iota
	ModeFiltering
	ModeConfirming
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeFiltering:
		return "filtering"
	case ModeConfirming:
		return "confirming"
	}
	return "unknown"
}

// Direction moves the cursor.
type Direction int

const (
	Up   Direction = -1
	Down Direction = 1
)

// Killer terminates a process and reports whether it succeeded.
type Killer interface {
	Terminate(pid int) bool
}

// noCursor marks an empty visible list.
const noCursor = -1

// Session is the state behind `top`. Cursor index 0 is the header row;
// 1..Len address records of the visible list.
type Session struct {
	lister collector.Lister
	killer Killer

	full      model.Snapshot
	filtering bool
	query     string
	filtered  model.Snapshot

	cursor  int
	pending *model.ProcessRecord
}

// New returns an empty session. Call Refresh to load the first snapshot.
func New(lister collector.Lister, killer Killer) *Session {
	return &Session{lister: lister, killer: killer, cursor: noCursor}
}

// Refresh replaces the snapshot with a fresh listing. On error the
// session is left unchanged.
func (s *Session) Refresh(ctx context.Context) error {
	snap, err := collector.Snapshot(ctx, s.lister)
	if err != nil {
		return err
	}
	s.full = snap
	if s.filtering {
		s.filtered = s.full.Filter(s.query)
	}
	s.resetCursor()
	return nil
}

// EnterFilterMode starts filtering with an empty query.
func (s *Session) EnterFilterMode() {
	s.filtering = true
	s.query = ""
	s.filtered = s.full
	s.resetCursor()
}

// ExitFilterMode stops filtering and clears the query.
func (s *Session) ExitFilterMode() {
	s.filtering = false
	s.query = ""
	s.filtered = model.Snapshot{}
	s.resetCursor()
}

// SetQuery replaces the filter query. Ignored unless filtering.
func (s *Session) SetQuery(q string) {
	if !s.filtering {
		return
	}
	s.query = q
	s.filtered = s.full.Filter(q)
	s.resetCursor()
}

// AppendQuery adds r to the end of the query.
func (s *Session) AppendQuery(r rune) {
	s.SetQuery(s.query + string(r))
}

// Backspace removes the last rune of the query.
func (s *Session) Backspace() {
	q := []rune(s.query)
	if len(q) > 0 {
		q = q[:len(q)-1]
	}
	s.SetQuery(string(q))
}

// MoveSelection moves the cursor circularly over the header row and
// every visible record.
func (s *Session) MoveSelection(d Direction) {
	n := s.Visible().Len()
	if n == 0 {
		return
	}
	total := n + 1
	if s.cursor == noCursor {
		if d == Down {
			s.cursor = 0
		} else {
			s.cursor = n
		}
		return
	}
	s.cursor = ((s.cursor+int(d))%total + total) % total
}

// InitiateKill asks for confirmation to kill the selected record. It is
// a no-op on the header row, on an empty list, or while a confirmation
// is already pending.
func (s *Session) InitiateKill() {
	if s.pending != nil {
		return
	}
	rec, ok := s.Selected()
	if !ok {
		return
	}
	s.pending = &rec
}

// ConfirmKill terminates the pending process, refreshes, and leaves
// confirmation mode. The kill result is only logged. The returned error
// is the refresh error, if any.
func (s *Session) ConfirmKill(ctx context.Context) error {
	if s.pending == nil {
		return nil
	}
	pid := s.pending.PID
	ok := s.killer.Terminate(pid)
	log.Info().Int("pid", pid).Str("name", s.pending.Name).Bool("delivered", ok).Msg("kill confirmed")

	err := s.Refresh(ctx)
	s.pending = nil
	return err
}

// CancelKill leaves confirmation mode without side effects.
func (s *Session) CancelKill() {
	s.pending = nil
}

// Mode reports the current input mode. Confirmation takes precedence
// over filtering.
func (s *Session) Mode() Mode {
	switch {
	case s.pending != nil:
		return ModeConfirming
	case s.filtering:
		return ModeFiltering
	default:
		return ModeNormal
	}
}

// Visible returns the list eligible for selection and rendering: the
// filtered view while filtering, otherwise the full snapshot.
func (s *Session) Visible() model.Snapshot {
	if s.filtering {
		return s.filtered
	}
	return s.full
}

// Full returns the unfiltered snapshot.
func (s *Session) Full() model.Snapshot { return s.full }

// Filtering reports whether the filter is active.
func (s *Session) Filtering() bool { return s.filtering }

// Query returns the filter query.
func (s *Session) Query() string { return s.query }

// Cursor returns the cursor index; ok is false when the visible list
// is empty.
func (s *Session) Cursor() (int, bool) {
	if s.cursor == noCursor {
		return 0, false
	}
	return s.cursor, true
}

// Selected returns the record under the cursor, if the cursor is on a
// record row.
func (s *Session) Selected() (model.ProcessRecord, bool) {
	vis := s.Visible()
	if s.cursor < 1 || s.cursor > vis.Len() {
		return model.ProcessRecord{}, false
	}
	return vis.At(s.cursor - 1), true
}

// Pending returns the record awaiting kill confirmation.
func (s *Session) Pending() (model.ProcessRecord, bool) {
	if s.pending == nil {
		return model.ProcessRecord{}, false
	}
	return *s.pending, true
}

func (s *Session) resetCursor() {
	if s.Visible().Len() > 0 {
		s.cursor = 1
	} else {
		s.cursor = noCursor
	}
}
