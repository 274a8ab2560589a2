// Package apperr defines the error kinds shared by the one-shot commands
// and the interactive session.
package apperr

import "fmt"

// Kind classifies an Error.
type Kind string

const (
	KindNotFound      Kind = "not_found"
	KindSignalFailure Kind = "signal_failure"
	KindTerminalIO    Kind = "terminal_io"
	KindInvalid       Kind = "invalid_argument"
)

// Error is an application error carrying its kind, the operation that
// failed and what it was applied to (a PID or a process name).
type Error struct {
	Kind   Kind
	Op     string
	Target string
	PID    int // set when Target is a name and the failure concerns one PID
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		if e.Op == "pid" {
			return fmt.Sprintf("PID '%s' not found", e.Target)
		}
		return fmt.Sprintf("Process '%s' not found", e.Target)
	case KindSignalFailure:
		msg := fmt.Sprintf("Failed to %s process '%s'", e.Op, e.Target)
		if e.PID > 0 {
			msg += fmt.Sprintf(" (PID %d)", e.PID)
		}
		if e.Err != nil {
			msg += ": " + e.Err.Error()
		}
		return msg
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Op)
}

func (e *Error) Unwrap() error { return e.Err }

// NotFoundPID reports that no process has the given PID.
func NotFoundPID(pid int) *Error {
	return &Error{Kind: KindNotFound, Op: "pid", Target: fmt.Sprint(pid)}
}

// NotFoundName reports that no process has the given name.
func NotFoundName(name string) *Error {
	return &Error{Kind: KindNotFound, Op: "name", Target: name}
}

// SignalFailure reports that the OS refused to deliver a signal. verb is
// the user-facing action ("kill", "pause", "resume").
func SignalFailure(verb, target string, cause error) *Error {
	return &Error{Kind: KindSignalFailure, Op: verb, Target: target, Err: cause}
}

// WithPID records the PID a name-based failure applies to.
func (e *Error) WithPID(pid int) *Error {
	e.PID = pid
	return e
}

// TerminalIO wraps a failure of the display or input device.
func TerminalIO(op string, cause error) *Error {
	return &Error{Kind: KindTerminalIO, Op: op, Err: cause}
}

// Invalid reports a malformed argument or option.
func Invalid(msg string, cause error) *Error {
	return &Error{Kind: KindInvalid, Op: msg, Err: cause}
}

// Is reports whether any error in err's chain is an *Error of kind k.
func Is(err error, k Kind) bool {
	if err == nil {
		return false
	}
	if e, ok := err.(*Error); ok && e.Kind == k {
		return true
	}
	switch u := err.(type) {
	case interface{ Unwrap() error }:
		return Is(u.Unwrap(), k)
	case interface{ Unwrap() []error }:
		for _, inner := range u.Unwrap() {
			if Is(inner, k) {
				return true
			}
		}
	}
	return false
}
