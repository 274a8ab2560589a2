package model

import (
	"fmt"
	"time"
)

// ProcessRecord is one entry of a process snapshot. Records are never
// mutated after a collector produces them.
type ProcessRecord struct {
	PID         int       `json:"pid"`
	UID         uint32    `json:"uid"`
	CPUPercent  float64   `json:"cpu_percent"`
	MemoryBytes uint64    `json:"memory_bytes"` // resident set size
	StartTime   time.Time `json:"start_time"`
	Name        string    `json:"name"`
}

// MemoryMB returns the resident set size in whole megabytes.
func (r ProcessRecord) MemoryMB() uint64 {
	return r.MemoryBytes / 1024 / 1024
}

// StartClock formats the start time as local hh:mm:ss.
func (r ProcessRecord) StartClock() string {
	if r.StartTime.IsZero() {
		return "--:--:--"
	}
	return r.StartTime.Local().Format("15:04:05")
}

// Row returns the tab-separated row PID, UID, CPU, MEM, START, NAME.
// The same text is printed by `proc` and matched by the filter.
func (r ProcessRecord) Row() string {
	return fmt.Sprintf("%d\t%d\t%.2f%%\t%dMB\t%s\t%s",
		r.PID, r.UID, r.CPUPercent, r.MemoryMB(), r.StartClock(), r.Name)
}

// RowHeader is the header line matching Row.
const RowHeader = "PID\tUID\tCPU\tMEM\tSTART\tNAME"
