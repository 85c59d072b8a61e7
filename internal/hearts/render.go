package hearts

import (
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/turntable/internal/ui/styles"
)

// Glyph is a rendered heart at a cell position.
type Glyph struct {
	X, Y int
	Text string
}

// glyphFor picks the heart character by size bucket.
func glyphFor(size int) string {
	switch {
	case size < 21:
		return "·"
	case size < 27:
		return "♡"
	default:
		return "♥"
	}
}

// Glyphs lays out the live hearts in a width x height area at now. Each heart
// falls from the top row to the bottom row over its duration while drifting
// by DriftX. Its color fades along the heart gradient as it falls.
func (e *Emitter) Glyphs(width, height int, now time.Time) []Glyph {
	if width <= 0 || height <= 0 || len(e.hearts) == 0 {
		return nil
	}

	t := styles.T()
	glyphs := make([]Glyph, 0, len(e.hearts))
	for _, h := range e.hearts {
		p := h.Progress(now)
		x := int(math.Round((h.StartX + h.DriftX*p) / 100 * float64(width-1)))
		y := int(math.Round(p * float64(height-1)))
		if x < 0 || x >= width {
			continue
		}
		color := styles.Blend(t.Heart, t.HeartFade, p)
		glyphs = append(glyphs, Glyph{
			X:    x,
			Y:    y,
			Text: lipgloss.NewStyle().Foreground(color).Render(glyphFor(h.Size)),
		})
	}
	return glyphs
}
