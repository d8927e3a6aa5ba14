package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// TruncateString shortens s to at most width terminal cells, marking the cut
// with an ellipsis. Wide runes (CJK, emoji) count as two cells.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// SingleLine collapses newlines and runs of whitespace so that free text can
// be shown on one list row.
func SingleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
