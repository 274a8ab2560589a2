package ui

import (
	"github.com/mattn/go-runewidth"
)

// Column widths of the process table. NAME takes the remaining width.
const (
	colPID   = 8
	colUID   = 8
	colCPU   = 8
	colMem   = 9
	colStart = 10
	colGap   = 1

	// selection marker in front of every table line
	markerWidth = 2
)

// fixedCols is the width of everything before the NAME column.
const fixedCols = markerWidth + colPID + colUID + colCPU + colMem + colStart + 5*colGap

// padRight pads s with spaces to the given display width, truncating
// with an ellipsis when it does not fit. Wide runes count double.
func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(truncate(s, width), width)
}

// truncate shortens s to at most maxLen display cells, ending in "..."
// when there is room for it.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return runewidth.Truncate(s, maxLen, "")
	}
	return runewidth.Truncate(s, maxLen, "...")
}

// nameWidth returns the width left for the NAME column.
func nameWidth(termWidth int) int {
	w := termWidth - fixedCols
	if w < 4 {
		return 4
	}
	return w
}
