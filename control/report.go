package control

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/unix"

	"github.com/ftahirops/xpm/apperr"
	"github.com/ftahirops/xpm/collector"
)

// Report is the outcome of a name-based operation. Every matching
// process is attempted independently.
type Report struct {
	Name      string
	Matched   int
	Succeeded int
	Failures  []error

	listErr error
}

// OK reports whether at least one matching process was signalled.
func (r Report) OK() bool { return r.Succeeded > 0 }

// Err returns nil when at least one signal was delivered, NotFound when
// nothing matched, and the joined per-process failures otherwise.
func (r Report) Err() error {
	switch {
	case r.listErr != nil:
		return r.listErr
	case r.Succeeded > 0:
		return nil
	case r.Matched == 0:
		return apperr.NotFoundName(r.Name)
	default:
		return errors.Join(r.Failures...)
	}
}

// SignalByName delivers sig to every process whose name equals name.
func (c *Controller) SignalByName(ctx context.Context, name string, sig unix.Signal) Report {
	rep := Report{Name: name}

	snap, err := collector.Snapshot(ctx, c.lister)
	if err != nil {
		rep.listErr = err
		return rep
	}

	for _, p := range snap.ByName(name) {
		rep.Matched++
		err := c.Signal(p.PID, sig)
		if err == nil {
			rep.Succeeded++
			continue
		}
		// report against the name; a NotFound here means the process
		// exited after the listing
		cause := errors.Unwrap(err)
		if cause == nil {
			cause = unix.ESRCH
		}
		rep.Failures = append(rep.Failures, apperr.SignalFailure(verbFor(sig), name, cause).WithPID(p.PID))
	}

	log.Debug().
		Str("name", name).
		Str("signal", unix.SignalName(sig)).
		Int("matched", rep.Matched).
		Int("succeeded", rep.Succeeded).
		Msg("signal by name")
	return rep
}
