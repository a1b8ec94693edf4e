package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const sgrReset = "\x1b[0m"

// Overlay draws fg over bg with its top-left corner at (x, y). Parts of fg
// outside bg are clipped.
func Overlay(bg, fg string, x, y int) string {
	if fg == "" {
		return bg
	}
	bgLines := strings.Split(bg, "\n")
	for i, line := range strings.Split(fg, "\n") {
		row := y + i
		if row < 0 || row >= len(bgLines) {
			continue
		}
		bgLines[row] = overlayLine(bgLines[row], line, x)
	}
	return strings.Join(bgLines, "\n")
}

func overlayLine(bg, fg string, x int) string {
	if x < 0 {
		fg = ansi.TruncateLeft(fg, -x, "")
		x = 0
	}
	width := ansi.StringWidth(bg)
	if x >= width {
		return bg
	}
	fg = ansi.Truncate(fg, width-x, "")

	left := ansi.Truncate(bg, x, "")
	var right string
	if end := x + ansi.StringWidth(fg); end < width {
		right = ansi.TruncateLeft(bg, end, "")
	}
	return left + sgrReset + fg + sgrReset + right
}
