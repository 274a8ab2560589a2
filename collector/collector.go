package collector

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ftahirops/xpm/apperr"
	"github.com/ftahirops/xpm/model"
)

// Lister produces the current process list. Implementations return
// records in any order; every record carries a name.
type Lister interface {
	Name() string
	List(ctx context.Context) ([]model.ProcessRecord, error)
}

// ListerFunc adapts a plain function to the Lister interface.
type ListerFunc func(ctx context.Context) ([]model.ProcessRecord, error)

func (f ListerFunc) Name() string { return "func" }

func (f ListerFunc) List(ctx context.Context) ([]model.ProcessRecord, error) {
	return f(ctx)
}

// DefaultSource is used when no source is requested.
const DefaultSource = "gopsutil"

var sources = map[string]func() Lister{
	"gopsutil": func() Lister { return &GopsutilCollector{} },
	"procfs":   func() Lister { return NewProcFS("/proc") },
}

// Names returns the registered source names, sorted.
func Names() []string {
	names := make([]string, 0, len(sources))
	for n := range sources {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// New returns the named source. An empty name selects DefaultSource.
func New(name string) (Lister, error) {
	if name == "" {
		name = DefaultSource
	}
	mk, ok := sources[strings.ToLower(name)]
	if !ok {
		return nil, apperr.Invalid(fmt.Sprintf("unknown process source %q (valid: %s)",
			name, strings.Join(Names(), ", ")), nil)
	}
	return mk(), nil
}

// Snapshot lists processes through l and returns them as a sorted,
// de-duplicated snapshot.
func Snapshot(ctx context.Context, l Lister) (model.Snapshot, error) {
	recs, err := l.List(ctx)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("%s: %w", l.Name(), err)
	}
	return model.NewSnapshot(recs), nil
}
