package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/ftahirops/xpm/model"
	"github.com/ftahirops/xpm/session"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// title, header, one row and the footer
	minRowsHeight = 4
)

// Render projects the session into display lines: title, the
// confirmation banner when confirming, the column header, the visible
// rows windowed around the cursor, and the key hints of the active
// mode. It has no side effects.
func Render(s *session.Session, keys KeyMap, width, height int, status string) []string {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	mode := s.Mode()
	vis := s.Visible()
	cursor, hasCursor := s.Cursor()

	lines := []string{renderTitle(s, width, status)}

	if p, ok := s.Pending(); ok {
		banner := fmt.Sprintf("Kill process %d (%s)? [y/N]", p.PID, p.Name)
		lines = append(lines, critStyle.Render(truncate(banner, width)))
		// spacer only when a row still fits below the header
		if height >= minRowsHeight+2 {
			lines = append(lines, "")
		}
	}

	header := tableLine("PID", "UID", "CPU%", "MEM(MB)", "START", "NAME", width)
	if hasCursor && cursor == 0 {
		lines = append(lines, selectedStyle.Render(mark(header, true, width)))
	} else {
		lines = append(lines, headerStyle.Render(mark(header, false, width)))
	}

	// title + header + footer, plus the banner when present; below
	// that the screen is too short for rows
	avail := height - len(lines) - 1
	if avail < 0 {
		avail = 0
	}
	start, end := window(cursor, hasCursor, vis.Len(), avail)
	for i := start; i < end; i++ {
		r := vis.At(i)
		selected := hasCursor && cursor == i+1
		lines = append(lines, renderRow(r, selected, width))
	}
	if vis.Len() == 0 && avail > 0 {
		lines = append(lines, dimStyle.Render(mark("no matching processes", false, width)))
	}

	h := help.New()
	h.Width = width
	lines = append(lines, h.ShortHelpView(keys.ShortHelp(mode)))
	return lines
}

func renderTitle(s *session.Session, width int, status string) string {
	full := s.Full()
	var b strings.Builder
	b.WriteString(titleStyle.Render("xpm top"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d/%d processes  %s RSS",
		s.Visible().Len(), full.Len(), humanize.IBytes(full.TotalMemory()))))
	if s.Filtering() {
		b.WriteString(dimStyle.Render("  search: "))
		b.WriteString(queryStyle.Render(s.Query() + "_"))
	}
	if status != "" {
		b.WriteString("  ")
		b.WriteString(warnStyle.Render(status))
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(b.String())
}

func renderRow(r model.ProcessRecord, selected bool, width int) string {
	line := mark(tableLine(
		strconv.Itoa(r.PID),
		strconv.FormatUint(uint64(r.UID), 10),
		fmt.Sprintf("%.2f", r.CPUPercent),
		strconv.FormatUint(r.MemoryMB(), 10),
		r.StartClock(),
		r.Name,
		width,
	), selected, width)
	if selected {
		return selectedStyle.Render(line)
	}
	if r.CPUPercent >= 30 {
		return cpuStyle(r.CPUPercent).Render(line)
	}
	return rowStyle.Render(line)
}

// tableLine lays out the six columns with fixed widths.
func tableLine(pid, uid, cpu, mem, start, name string, width int) string {
	cols := []string{
		padRight(pid, colPID),
		padRight(uid, colUID),
		padRight(cpu, colCPU),
		padRight(mem, colMem),
		padRight(start, colStart),
		truncate(name, nameWidth(width)),
	}
	return strings.Join(cols, strings.Repeat(" ", colGap))
}

// mark prefixes the selection marker and fits the line to width.
func mark(line string, selected bool, width int) string {
	prefix := "  "
	if selected {
		prefix = "> "
	}
	return padRight(prefix+line, width)
}

// window returns the [start, end) record range to draw so the cursor
// row stays visible within avail rows.
func window(cursor int, hasCursor bool, n, avail int) (int, int) {
	start := 0
	if hasCursor && cursor > avail {
		start = cursor - avail
	}
	end := start + avail
	if end > n {
		end = n
	}
	return start, end
}
