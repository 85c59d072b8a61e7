// Package headerbar renders the title row: the gradient title in the middle
// and the deck status on the right.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/turntable/internal/turntable"
	"github.com/llehouerou/turntable/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// Title is the application name shown in the header.
const Title = "♥ turntable ♥"

// statusLabel describes the deck for the right side of the header.
func statusLabel(v turntable.Visual) string {
	switch v {
	case turntable.Empty:
		return "no record"
	case turntable.Idle:
		return "paused"
	case turntable.Spinning, turntable.NeedleBob:
		return "playing"
	}
	return ""
}

// Render returns the header bar string for the given width.
// The status is dropped when the width cannot fit both.
func Render(v turntable.Visual, width int) string {
	if width < lipgloss.Width(Title) {
		return ""
	}
	t := styles.T()
	title := styles.ApplyBoldGradient(Title, t.Primary, t.Heart)
	titleWidth := lipgloss.Width(Title)
	padLeft := (width - titleWidth) / 2
	line := strings.Repeat(" ", padLeft) + title

	status := statusLabel(v)
	statusStyle := t.S().Muted
	if v == turntable.Spinning || v == turntable.NeedleBob {
		statusStyle = t.S().Playing
	}
	room := width - padLeft - titleWidth - 1
	if w := lipgloss.Width(status); status != "" && w <= room-1 {
		line += strings.Repeat(" ", room-w) + statusStyle.Render(status) + " "
	}
	return line
}
