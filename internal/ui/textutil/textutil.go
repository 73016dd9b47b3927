// Package textutil provides unicode-aware text fitting for panel bodies.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in … when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// FitBlock clips s to width columns and at most height lines. When lines are
// dropped the last kept line ends in an ellipsis.
func FitBlock(s string, width, height int) string {
	if height <= 0 || width <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	cut := len(lines) > height
	if cut {
		lines = lines[:height]
	}
	for i, line := range lines {
		lines[i] = Truncate(line, width)
	}
	if cut {
		last := lines[len(lines)-1]
		if VisualWidth(last)+1 > width {
			last = Truncate(last, width-1)
			last = strings.TrimSuffix(last, TruncateEllipsis)
		}
		lines[len(lines)-1] = last + TruncateEllipsis
	}
	return strings.Join(lines, "\n")
}
