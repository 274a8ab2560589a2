package model

import (
	"sort"
	"strings"
	"time"
)

// Snapshot holds a point-in-time process listing, sorted by PID with no
// duplicate PIDs.
type Snapshot struct {
	Taken   time.Time       `json:"timestamp"`
	Records []ProcessRecord `json:"processes"`
}

// NewSnapshot sorts records ascending by PID and drops repeated PIDs,
// keeping the first occurrence. Records with a non-positive PID are
// dropped. The input slice is not modified.
func NewSnapshot(records []ProcessRecord) Snapshot {
	out := make([]ProcessRecord, 0, len(records))
	for _, r := range records {
		if r.PID > 0 {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PID < out[j].PID
	})

	n := 0
	for i, r := range out {
		if i > 0 && r.PID == out[n-1].PID {
			continue
		}
		out[n] = r
		n++
	}
	return Snapshot{Taken: time.Now(), Records: out[:n]}
}

// Len returns the number of records.
func (s Snapshot) Len() int { return len(s.Records) }

// At returns the i-th record.
func (s Snapshot) At(i int) ProcessRecord { return s.Records[i] }

// ByName returns every record whose name equals name exactly.
func (s Snapshot) ByName(name string) []ProcessRecord {
	var out []ProcessRecord
	for _, r := range s.Records {
		if r.Name == name {
			out = append(out, r)
		}
	}
	return out
}

// TotalMemory sums the resident set size of all records.
func (s Snapshot) TotalMemory() uint64 {
	var total uint64
	for _, r := range s.Records {
		total += r.MemoryBytes
	}
	return total
}

// Filter keeps the records whose display row contains query, ignoring
// case. An empty query returns s unchanged.
func (s Snapshot) Filter(query string) Snapshot {
	if query == "" {
		return s
	}
	q := strings.ToLower(query)
	out := Snapshot{Taken: s.Taken}
	for _, r := range s.Records {
		if strings.Contains(strings.ToLower(r.Row()), q) {
			out.Records = append(out.Records, r)
		}
	}
	return out
}
