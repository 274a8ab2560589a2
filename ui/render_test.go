package ui

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/ftahirops/xpm/collector"
	"github.com/ftahirops/xpm/model"
	"github.com/ftahirops/xpm/session"
)

type nopKiller struct{ pids []int }

func (k *nopKiller) Terminate(pid int) bool {
	k.pids = append(k.pids, pid)
	return true
}

func newTestSession(t *testing.T, recs []model.ProcessRecord) (*session.Session, *nopKiller) {
	t.Helper()
	lister := collector.ListerFunc(func(context.Context) ([]model.ProcessRecord, error) {
		return recs, nil
	})
	k := &nopKiller{}
	s := session.New(lister, k)
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	return s, k
}

func sampleRecords() []model.ProcessRecord {
	return []model.ProcessRecord{
		{PID: 1, UID: 0, Name: "init", MemoryBytes: 4 << 20},
		{PID: 42, UID: 1000, Name: "nginx", CPUPercent: 12.5, MemoryBytes: 64 << 20},
		{PID: 99, UID: 1000, Name: "bash", MemoryBytes: 8 << 20},
	}
}

func joined(lines []string) string { return strings.Join(lines, "\n") }

func TestRender_NormalMode(t *testing.T) {
	s, _ := newTestSession(t, sampleRecords())
	out := joined(Render(s, DefaultKeyMap(), 100, 30, ""))

	for _, want := range []string{"xpm top", "3/3 processes", "PID", "NAME", "init", "nginx", "bash", "12.50", "quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Kill process") {
		t.Error("banner shown without pending kill")
	}
	if !strings.Contains(out, "> 1 ") {
		t.Errorf("first record not selected after refresh:\n%s", out)
	}
}

func TestRender_HeaderMarkedAtCursorZero(t *testing.T) {
	s, _ := newTestSession(t, sampleRecords())
	s.MoveSelection(session.Up)

	lines := Render(s, DefaultKeyMap(), 100, 30, "")
	if !strings.Contains(lines[1], "> PID") {
		t.Errorf("header line = %q, want selection marker", lines[1])
	}
}

func TestRender_SelectedRowMarked(t *testing.T) {
	s, _ := newTestSession(t, sampleRecords())
	s.MoveSelection(session.Down) // pid 42

	found := false
	for _, l := range Render(s, DefaultKeyMap(), 100, 30, "") {
		if strings.Contains(l, "> 42") {
			found = true
		}
	}
	if !found {
		t.Error("selected row not marked")
	}
}

func TestRender_ConfirmBanner(t *testing.T) {
	s, _ := newTestSession(t, sampleRecords())
	s.InitiateKill()

	lines := Render(s, DefaultKeyMap(), 100, 30, "")
	if !strings.Contains(lines[1], "Kill process 1 (init)? [y/N]") {
		t.Errorf("banner line = %q", lines[1])
	}
	footer := lines[len(lines)-1]
	if !strings.Contains(footer, "confirm kill") || !strings.Contains(footer, "cancel") {
		t.Errorf("confirming footer = %q", footer)
	}
}

func TestRender_FilteringShowsQueryAndHints(t *testing.T) {
	s, _ := newTestSession(t, sampleRecords())
	s.EnterFilterMode()
	for _, r := range "ngi" {
		s.AppendQuery(r)
	}

	lines := Render(s, DefaultKeyMap(), 100, 30, "")
	out := joined(lines)
	if !strings.Contains(lines[0], "search: ngi_") {
		t.Errorf("title = %q, want query", lines[0])
	}
	if !strings.Contains(out, "1/3 processes") {
		t.Errorf("counts missing:\n%s", out)
	}
	if strings.Contains(out, "bash") {
		t.Error("filtered-out record rendered")
	}
	if !strings.Contains(lines[len(lines)-1], "exit search") {
		t.Errorf("filter footer = %q", lines[len(lines)-1])
	}
}

func TestRender_NoMatches(t *testing.T) {
	s, _ := newTestSession(t, sampleRecords())
	s.EnterFilterMode()
	for _, r := range "zzz" {
		s.AppendQuery(r)
	}
	if out := joined(Render(s, DefaultKeyMap(), 100, 30, "")); !strings.Contains(out, "no matching processes") {
		t.Errorf("empty view missing placeholder:\n%s", out)
	}
}

func TestRender_StatusInTitle(t *testing.T) {
	s, _ := newTestSession(t, sampleRecords())
	lines := Render(s, DefaultKeyMap(), 100, 30, "refresh failed: boom")
	if !strings.Contains(lines[0], "refresh failed: boom") {
		t.Errorf("title = %q", lines[0])
	}
}

func TestRender_DefaultsAndHeightBound(t *testing.T) {
	recs := make([]model.ProcessRecord, 100)
	for i := range recs {
		recs[i] = model.ProcessRecord{PID: i + 1, Name: fmt.Sprintf("p%d", i+1)}
	}
	s, _ := newTestSession(t, recs)

	lines := Render(s, DefaultKeyMap(), 0, 0, "")
	if len(lines) > defaultHeight {
		t.Errorf("rendered %d lines, want at most %d", len(lines), defaultHeight)
	}
}

func TestRender_CursorStaysVisible(t *testing.T) {
	recs := make([]model.ProcessRecord, 50)
	for i := range recs {
		recs[i] = model.ProcessRecord{PID: i + 1, Name: fmt.Sprintf("proc%d", i+1)}
	}
	s, _ := newTestSession(t, recs)
	for i := 0; i < 39; i++ {
		s.MoveSelection(session.Down)
	}
	sel, ok := s.Selected()
	if !ok || sel.PID != 40 {
		t.Fatalf("selected = %+v, %v; want pid 40", sel, ok)
	}
	out := joined(Render(s, DefaultKeyMap(), 100, 20, ""))
	if !strings.Contains(out, "> 40 ") {
		t.Errorf("selected row scrolled out of view:\n%s", out)
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name       string
		cursor     int
		hasCursor  bool
		n, avail   int
		start, end int
	}{
		{"no cursor", 0, false, 50, 10, 0, 10},
		{"header", 0, true, 50, 10, 0, 10},
		{"last fitting row", 10, true, 50, 10, 0, 10},
		{"scrolled", 11, true, 50, 10, 1, 11},
		{"bottom", 50, true, 50, 10, 40, 50},
		{"short list", 2, true, 3, 10, 0, 3},
		{"empty", 0, true, 0, 10, 0, 0},
		{"no room", 5, true, 50, 0, 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := window(tt.cursor, tt.hasCursor, tt.n, tt.avail)
			if start != tt.start || end != tt.end {
				t.Errorf("window = [%d,%d), want [%d,%d)", start, end, tt.start, tt.end)
			}
		})
	}
}

func TestCPUStyleThresholds(t *testing.T) {
	if cpuStyle(90).GetForeground() != colorRed {
		t.Error("90% should be critical")
	}
	if cpuStyle(40).GetForeground() != colorYellow {
		t.Error("40% should be warning")
	}
	if cpuStyle(1).GetForeground() != colorWhite {
		t.Error("1% should be plain")
	}
}

func TestRender_TitleFitsWidth(t *testing.T) {
	s, _ := newTestSession(t, sampleRecords())
	status := "refresh failed: gopsutil: list processes: open /proc: permission denied"

	for _, width := range []int{20, 60, 100} {
		lines := Render(s, DefaultKeyMap(), width, 30, status)
		if w := lipgloss.Width(lines[0]); w > width {
			t.Errorf("width %d: title is %d cells wide: %q", width, w, lines[0])
		}
		if !strings.Contains(lines[0], "xpm top") {
			t.Errorf("width %d: title lost its name: %q", width, lines[0])
		}
	}
}

func TestRender_ShortScreen(t *testing.T) {
	tests := []struct {
		name     string
		confirm  bool
		height   int
		wantRows int
	}{
		{"normal, one row", false, 4, 1},
		{"normal, no room", false, 3, 0},
		{"confirm, spacer dropped", true, 4, 0},
		{"confirm, one row", true, 5, 1},
		{"confirm, spacer kept", true, 6, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession(t, sampleRecords())
			if tt.confirm {
				s.InitiateKill()
			}
			lines := Render(s, DefaultKeyMap(), 100, tt.height, "")
			if len(lines) > tt.height {
				t.Fatalf("rendered %d lines for height %d:\n%s", len(lines), tt.height, joined(lines))
			}
			if !strings.Contains(lines[0], "xpm top") {
				t.Errorf("first line = %q, want title", lines[0])
			}
			if tt.confirm && !strings.Contains(lines[1], "Kill process 1 (init)?") {
				t.Errorf("second line = %q, want banner", lines[1])
			}
			rows := 0
			for _, l := range lines {
				if strings.Contains(l, "init") && !strings.Contains(l, "Kill process") {
					rows++
				}
			}
			if rows != tt.wantRows {
				t.Errorf("got %d record rows, want %d:\n%s", rows, tt.wantRows, joined(lines))
			}
		})
	}
}
