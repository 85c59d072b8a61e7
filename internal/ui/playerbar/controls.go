package playerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Button is a clickable transport control.
type Button int

const (
	ButtonPrev Button = iota
	ButtonToggle
	ButtonNext
)

func (b Button) String() string {
	switch b {
	case ButtonPrev:
		return "Prev"
	case ButtonToggle:
		return "Toggle"
	case ButtonNext:
		return "Next"
	default:
		return "Unknown"
	}
}

const buttonGap = 3

const (
	prevSymbol  = "⏮"
	playSymbol  = "▶"
	pauseSymbol = "⏸"
	nextSymbol  = "⏭"
)

type span struct {
	button     Button
	label      string
	start, end int // columns, end exclusive
}

func controlSpans(playing bool, width int) []span {
	toggle := playSymbol
	if playing {
		toggle = pauseSymbol
	}
	labels := []struct {
		b     Button
		label string
	}{
		{ButtonPrev, " " + prevSymbol + " "},
		{ButtonToggle, " " + toggle + " "},
		{ButtonNext, " " + nextSymbol + " "},
	}

	total := buttonGap * (len(labels) - 1)
	for _, l := range labels {
		total += lipgloss.Width(l.label)
	}

	x := max((width-total)/2, 0)
	spans := make([]span, len(labels))
	for i, l := range labels {
		w := lipgloss.Width(l.label)
		spans[i] = span{button: l.b, label: l.label, start: x, end: x + w}
		x += w + buttonGap
	}
	return spans
}

// RenderControls renders the buttons centered in width. The toggle shows
// pause while playing and play otherwise.
func RenderControls(playing bool, width int) string {
	var b strings.Builder
	col := 0
	for _, s := range controlSpans(playing, width) {
		b.WriteString(strings.Repeat(" ", s.start-col))
		style := buttonStyle()
		if s.button == ButtonToggle {
			style = toggleStyle()
		}
		b.WriteString(style.Render(s.label))
		col = s.end
	}
	if col < width {
		b.WriteString(strings.Repeat(" ", width-col))
	}
	return b.String()
}

// ButtonAt returns the button under column x of the controls row.
func ButtonAt(playing bool, width, x int) (Button, bool) {
	for _, s := range controlSpans(playing, width) {
		if x >= s.start && x < s.end {
			return s.button, true
		}
	}
	return 0, false
}
