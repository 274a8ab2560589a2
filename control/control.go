// Package control delivers kill, pause and resume signals to processes
// selected by PID or by exact name.
package control

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/unix"

	"github.com/ftahirops/xpm/apperr"
	"github.com/ftahirops/xpm/collector"
)

// Controller sends signals to processes. Name lookups go through the
// Lister so they see the same process list as `proc` and `top`.
type Controller struct {
	lister  collector.Lister
	killSig unix.Signal
	send    func(pid int, sig unix.Signal) error
}

// Option configures a Controller.
type Option func(*Controller)

// WithKillSignal overrides the signal used by Kill and Terminate.
func WithKillSignal(sig unix.Signal) Option {
	return func(c *Controller) { c.killSig = sig }
}

// WithSender replaces the signal delivery function.
func WithSender(send func(pid int, sig unix.Signal) error) Option {
	return func(c *Controller) { c.send = send }
}

// New returns a Controller that resolves names through lister.
func New(lister collector.Lister, opts ...Option) *Controller {
	c := &Controller{
		lister:  lister,
		killSig: unix.SIGKILL,
		send:    unix.Kill,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// verbFor names the user-facing action for a signal.
func verbFor(sig unix.Signal) string {
	switch sig {
	case unix.SIGSTOP:
		return "pause"
	case unix.SIGCONT:
		return "resume"
	default:
		return "kill"
	}
}

// Signal delivers sig to pid. ESRCH becomes NotFound; any other refusal
// is a SignalFailure.
func (c *Controller) Signal(pid int, sig unix.Signal) error {
	// pid <= 0 would address a process group
	if pid <= 0 {
		return apperr.Invalid("invalid PID "+strconv.Itoa(pid), nil)
	}
	err := c.send(pid, sig)
	switch {
	case err == nil:
		log.Debug().Int("pid", pid).Str("signal", unix.SignalName(sig)).Msg("signal delivered")
		return nil
	case errors.Is(err, unix.ESRCH):
		return apperr.NotFoundPID(pid)
	default:
		return apperr.SignalFailure(verbFor(sig), strconv.Itoa(pid), err)
	}
}

// Terminate kills pid with the configured kill signal and reports
// whether delivery succeeded. It never fails loudly.
func (c *Controller) Terminate(pid int) bool {
	if err := c.Signal(pid, c.killSig); err != nil {
		log.Debug().Err(err).Int("pid", pid).Msg("terminate failed")
		return false
	}
	return true
}

// Kill sends the configured kill signal to pid.
func (c *Controller) Kill(pid int) error { return c.Signal(pid, c.killSig) }

// Pause suspends pid with SIGSTOP.
func (c *Controller) Pause(pid int) error { return c.Signal(pid, unix.SIGSTOP) }

// Resume continues pid with SIGCONT.
func (c *Controller) Resume(pid int) error { return c.Signal(pid, unix.SIGCONT) }

// KillByName sends the configured kill signal to every process named name.
func (c *Controller) KillByName(ctx context.Context, name string) Report {
	return c.SignalByName(ctx, name, c.killSig)
}

// PauseByName suspends every process named name.
func (c *Controller) PauseByName(ctx context.Context, name string) Report {
	return c.SignalByName(ctx, name, unix.SIGSTOP)
}

// ResumeByName continues every process named name.
func (c *Controller) ResumeByName(ctx context.Context, name string) Report {
	return c.SignalByName(ctx, name, unix.SIGCONT)
}
