// Package overlay composites ANSI-styled blocks onto a fixed-size screen.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Canvas returns a blank width x height block.
func Canvas(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// Place draws block over base with its top-left cell at (x, y). Every cell
// of the block is opaque and parts falling outside base are clipped.
// ANSI-aware.
func Place(base, block string, x, y int) string {
	if block == "" {
		return base
	}
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		baseLines[row] = placeLine(baseLines[row], line, x)
	}
	return strings.Join(baseLines, "\n")
}

func placeLine(base, seg string, x int) string {
	segWidth := ansi.StringWidth(seg)
	if x < 0 {
		if -x >= segWidth {
			return base
		}
		seg = ansi.Cut(seg, -x, segWidth)
		segWidth += x
		x = 0
	}

	baseWidth := ansi.StringWidth(base)
	if x >= baseWidth {
		return base
	}
	if x+segWidth > baseWidth {
		seg = ansi.Truncate(seg, baseWidth-x, "")
		segWidth = baseWidth - x
	}

	return ansi.Cut(base, 0, x) + seg + ansi.Cut(base, x+segWidth, baseWidth)
}
