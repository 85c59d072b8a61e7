package turntable

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/turntable/internal/ui/render"
	"github.com/llehouerou/turntable/internal/ui/styles"
)

const (
	platterWidth = 18
	armWidth     = 8
	innerWidth   = platterWidth + armWidth
	innerHeight  = 7
)

// Width and Height are the rendered size including the border.
const (
	Width  = innerWidth + 2
	Height = innerHeight + 2
)

// row is one line of a frame: the platter part and the tonearm part.
type row struct {
	platter string
	arm     string
}

var (
	platterEmpty = []string{
		"                  ",
		"     ┌──────┐     ",
		"   ┌─┘      └─┐   ",
		"   │    ()    │   ",
		"   └─┐      ┌─┘   ",
		"     └──────┘     ",
		"                  ",
	}
	platterRest = []string{
		"     ▄▄▄▄▄▄▄▄     ",
		"   ▄█░▒░▒░▒░▒█▄   ",
		"  █░▒░▒░▒░▒░▒░▒█  ",
		"  █▒░▒░(●)▒░▒░▒█  ",
		"  █░▒░▒░▒░▒░▒░▒█  ",
		"   ▀█▒░▒░▒░▒░█▀   ",
		"     ▀▀▀▀▀▀▀▀     ",
	}
	platterSpin = []string{
		"     ▄▄▄▄▄▄▄▄     ",
		"   ▄█▒░▒░▒░▒░█▄   ",
		"  █▒░▒░▒░▒░▒░▒░█  ",
		"  █░▒░▒(●)░▒░▒░█  ",
		"  █▒░▒░▒░▒░▒░▒░█  ",
		"   ▀█░▒░▒░▒░▒█▀   ",
		"     ▀▀▀▀▀▀▀▀     ",
	}

	armParked = []string{
		"   ▐▌   ",
		"   ││   ",
		"   ││   ",
		"   ││   ",
		"   ╰┘   ",
		"        ",
		"        ",
	}
	armPlaying = []string{
		"   ▐▌   ",
		"   │╲   ",
		"   │ ╲  ",
		"   │  ╲ ",
		"╱──┘   ",
		"        ",
		"        ",
	}
	armLifted = []string{
		"   ▐▌   ",
		"   │╲   ",
		"   │ ╲  ",
		"╲──╯  ╲ ",
		"        ",
		"        ",
		"        ",
	}
)

func zip(platter, arm []string) []row {
	rows := make([]row, len(platter))
	for i := range platter {
		rows[i] = row{platter: platter[i], arm: arm[i]}
	}
	return rows
}

var frames = map[Frame][]row{
	FrameEmpty:     zip(platterEmpty, armParked),
	FrameRest:      zip(platterRest, armPlaying),
	FrameSpin:      zip(platterSpin, armPlaying),
	FrameNeedleBob: zip(platterSpin, armLifted),
}

// View renders the current frame inside the turntable border. highlighted
// marks the turntable as the drop target under a dragged record.
func (m *Machine) View(highlighted bool) string {
	return RenderFrame(m.frame, highlighted)
}

func RenderFrame(f Frame, highlighted bool) string {
	st := styles.T().S()
	rows := frames[f]
	if rows == nil {
		rows = frames[FrameEmpty]
	}

	platterStyle := st.Vinyl
	if f == FrameEmpty {
		platterStyle = st.Subtle
	}

	lines := make([]string, len(rows))
	for i, r := range rows {
		platter := render.Pad(r.platter, platterWidth)
		if label := strings.Index(platter, "(●)"); label >= 0 {
			platter = platterStyle.Render(platter[:label]) +
				st.Label.Render("(●)") +
				platterStyle.Render(platter[label+len("(●)"):])
		} else {
			platter = platterStyle.Render(platter)
		}
		lines[i] = platter + st.Tonearm.Render(render.Pad(r.arm, armWidth))
	}

	return styles.PanelStyle(highlighted).
		Width(innerWidth).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
