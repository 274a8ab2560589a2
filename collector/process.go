package collector

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tklauser/go-sysconf"

	"github.com/ftahirops/xpm/model"
)

// ProcFS reads per-PID stats directly from a procfs mount (Linux).
type ProcFS struct {
	Root string // usually /proc

	// HZ is the kernel clock tick rate; zero means query sysconf.
	HZ int64

	now func() time.Time
}

// NewProcFS returns a ProcFS rooted at root.
func NewProcFS(root string) *ProcFS {
	return &ProcFS{Root: root, now: time.Now}
}

func (p *ProcFS) Name() string { return "procfs" }

func (p *ProcFS) List(ctx context.Context) ([]model.ProcessRecord, error) {
	entries, err := os.ReadDir(p.Root)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p.Root, err)
	}
	boot, err := p.bootTime()
	if err != nil {
		return nil, err
	}
	hz := p.clockTicks()
	now := time.Now()
	if p.now != nil {
		now = p.now()
	}

	var procs []model.ProcessRecord
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !e.IsDir() {
			continue
		}
		pid, err := strconv.Atoi(e.Name())
		if err != nil || pid <= 0 {
			continue
		}
		rec, err := p.readProcess(pid, boot, hz, now)
		if err != nil {
			log.Trace().Err(err).Int("pid", pid).Msg("skip process")
			continue // process may have exited
		}
		procs = append(procs, rec)
	}
	return procs, nil
}

func (p *ProcFS) clockTicks() int64 {
	if p.HZ > 0 {
		return p.HZ
	}
	hz, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil || hz <= 0 {
		return 100
	}
	return hz
}

// bootTime reads the btime line of <root>/stat.
func (p *ProcFS) bootTime() (time.Time, error) {
	f, err := os.Open(filepath.Join(p.Root, "stat"))
	if err != nil {
		return time.Time{}, fmt.Errorf("read boot time: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 2 && fields[0] == "btime" {
			sec, err := strconv.ParseInt(fields[1], 10, 64)
			if err != nil {
				return time.Time{}, fmt.Errorf("parse btime: %w", err)
			}
			return time.Unix(sec, 0), nil
		}
	}
	if err := sc.Err(); err != nil {
		return time.Time{}, fmt.Errorf("read boot time: %w", err)
	}
	return time.Time{}, fmt.Errorf("btime missing from %s", filepath.Join(p.Root, "stat"))
}

func (p *ProcFS) readProcess(pid int, boot time.Time, hz int64, now time.Time) (model.ProcessRecord, error) {
	pidDir := filepath.Join(p.Root, strconv.Itoa(pid))

	data, err := os.ReadFile(filepath.Join(pidDir, "stat"))
	if err != nil {
		return model.ProcessRecord{}, err
	}
	st, err := parseStat(string(data))
	if err != nil {
		return model.ProcessRecord{}, fmt.Errorf("pid %d: %w", pid, err)
	}
	if st.comm == "" {
		return model.ProcessRecord{}, fmt.Errorf("pid %d: empty comm", pid)
	}

	rec := model.ProcessRecord{PID: pid, Name: st.comm}
	rec.StartTime = boot.Add(ticksToDuration(st.startTicks, hz))

	elapsed := now.Sub(rec.StartTime).Seconds()
	if elapsed > 0 {
		cpuSec := float64(st.utime+st.stime) / float64(hz)
		rec.CPUPercent = cpuSec / elapsed * 100
	}

	// status may be unreadable for some kernel threads; keep the record
	if status, err := os.ReadFile(filepath.Join(pidDir, "status")); err == nil {
		rec.UID, rec.MemoryBytes = parseStatus(string(status))
	}
	return rec, nil
}

func ticksToDuration(ticks uint64, hz int64) time.Duration {
	sec := ticks / uint64(hz)
	rem := ticks % uint64(hz)
	return time.Duration(sec)*time.Second + time.Duration(rem)*time.Second/time.Duration(hz)
}

type procStat struct {
	comm       string
	utime      uint64
	stime      uint64
	startTicks uint64
}

// parseStat parses /proc/[pid]/stat. comm can contain spaces and
// parens, so split on the last ')'.
func parseStat(content string) (procStat, error) {
	var st procStat
	openIdx := strings.Index(content, "(")
	closeIdx := strings.LastIndex(content, ")")
	if openIdx < 0 || closeIdx < openIdx {
		return st, fmt.Errorf("bad stat format")
	}
	st.comm = content[openIdx+1 : closeIdx]

	rest := strings.Fields(content[closeIdx+1:])
	// rest[0] is field 3 (state); utime 14, stime 15, starttime 22
	if len(rest) < 20 {
		return st, fmt.Errorf("stat too short")
	}
	st.utime, _ = strconv.ParseUint(rest[11], 10, 64)
	st.stime, _ = strconv.ParseUint(rest[12], 10, 64)
	st.startTicks, _ = strconv.ParseUint(rest[19], 10, 64)
	return st, nil
}

// parseStatus extracts the real UID and VmRSS (bytes) from
// /proc/[pid]/status. Kernel threads have no VmRSS.
func parseStatus(content string) (uid uint32, rss uint64) {
	for _, line := range strings.Split(content, "\n") {
		key, val, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		fields := strings.Fields(val)
		if len(fields) == 0 {
			continue
		}
		switch key {
		case "Uid":
			if v, err := strconv.ParseUint(fields[0], 10, 32); err == nil {
				uid = uint32(v)
			}
		case "VmRSS":
			if v, err := strconv.ParseUint(fields[0], 10, 64); err == nil {
				rss = v * 1024
			}
		}
	}
	return uid, rss
}
