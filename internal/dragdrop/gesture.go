package dragdrop

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/turntable/internal/ui/styles"
)

// Sprite offsets from the cursor.
var (
	NeedleOffset = Point{X: 1, Y: 1}
	RecordOffset = Point{X: -3, Y: -1}
)

type SpriteKind int

const (
	NeedleSprite SpriteKind = iota
	RecordSprite
)

// Sprite is a transient visual owned by a gesture.
type Sprite struct {
	Kind SpriteKind
	Pos  Point
}

// View renders the sprite.
func (s Sprite) View() string {
	st := styles.T().S()
	switch s.Kind {
	case NeedleSprite:
		return st.Tonearm.Render("╲")
	case RecordSprite:
		return lipgloss.JoinVertical(lipgloss.Left,
			st.Vinyl.Render(" ▄▄▄ "),
			st.Vinyl.Render("█")+st.Label.Render("(●)")+st.Vinyl.Render("█"),
			st.Vinyl.Render(" ▀▀▀ "),
		)
	default:
		return ""
	}
}

// Gesture is one press-move-release sequence. Its sprites exist only while
// the gesture does.
type Gesture struct {
	Start  Point
	Cursor Point
	Needle Sprite
	Record Sprite
}

func newGesture(p Point) *Gesture {
	g := &Gesture{
		Start:  p,
		Needle: Sprite{Kind: NeedleSprite},
		Record: Sprite{Kind: RecordSprite},
	}
	g.moveTo(p)
	return g
}

func (g *Gesture) moveTo(p Point) {
	g.Cursor = p
	g.Needle.Pos = p.Add(NeedleOffset)
	g.Record.Pos = p.Add(RecordOffset)
}

// Sprites returns the sprites in draw order.
func (g Gesture) Sprites() []Sprite {
	return []Sprite{g.Record, g.Needle}
}
