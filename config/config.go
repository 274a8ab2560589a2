package config

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"github.com/ftahirops/xpm/apperr"
	"github.com/ftahirops/xpm/collector"
)

// Config holds runtime options. Values come from command-line flags
// only; nothing is read from files or the environment.
type Config struct {
	Source       string        // process source name, see collector.Names
	PollInterval time.Duration // top: input poll timeout per loop iteration
	KillSignal   string        // kill|term|int|hup
	Debug        bool
	LogFile      string // top: log destination, empty discards
}

// Default returns a config with sensible defaults.
func Default() Config {
	return Config{
		Source:       collector.DefaultSource,
		PollInterval: 100 * time.Millisecond,
		KillSignal:   "kill",
	}
}

// Validate checks every option and returns the first problem found.
func (c Config) Validate() error {
	if _, err := collector.New(c.Source); err != nil {
		return err
	}
	if c.PollInterval <= 0 {
		return apperr.Invalid(fmt.Sprintf("poll interval must be positive, got %s", c.PollInterval), nil)
	}
	if _, err := ParseSignal(c.KillSignal); err != nil {
		return err
	}
	return nil
}

var killSignals = map[string]unix.Signal{
	"kill": unix.SIGKILL,
	"term": unix.SIGTERM,
	"int":  unix.SIGINT,
	"hup":  unix.SIGHUP,
}

// ParseSignal maps a signal name such as "term" or "SIGKILL" to the
// signal used for kill operations.
func ParseSignal(name string) (unix.Signal, error) {
	n := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "sig")
	if sig, ok := killSignals[n]; ok {
		return sig, nil
	}
	return 0, apperr.Invalid(fmt.Sprintf("unsupported kill signal %q (valid: kill, term, int, hup)", name), nil)
}
