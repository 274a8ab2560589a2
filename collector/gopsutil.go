package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/process"

	"github.com/ftahirops/xpm/model"
)

// GopsutilCollector lists processes through gopsutil. It works on every
// platform gopsutil supports.
type GopsutilCollector struct{}

func (g *GopsutilCollector) Name() string { return "gopsutil" }

func (g *GopsutilCollector) List(ctx context.Context) ([]model.ProcessRecord, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}

	out := make([]model.ProcessRecord, 0, len(procs))
	for _, p := range procs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name, err := p.NameWithContext(ctx)
		if err != nil || name == "" {
			// process exited or is unreadable
			log.Trace().Err(err).Int32("pid", p.Pid).Msg("skip process without name")
			continue
		}

		rec := model.ProcessRecord{PID: int(p.Pid), Name: name}
		if uids, err := p.UidsWithContext(ctx); err == nil && len(uids) > 0 {
			rec.UID = uids[0]
		}
		if cpu, err := p.CPUPercentWithContext(ctx); err == nil && cpu > 0 {
			rec.CPUPercent = cpu
		}
		if mem, err := p.MemoryInfoWithContext(ctx); err == nil && mem != nil {
			rec.MemoryBytes = mem.RSS
		}
		if ms, err := p.CreateTimeWithContext(ctx); err == nil && ms > 0 {
			rec.StartTime = time.UnixMilli(ms)
		}
		out = append(out, rec)
	}
	return out, nil
}
