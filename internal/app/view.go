package app

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/turntable/internal/dragdrop"
	"github.com/llehouerou/turntable/internal/ui/dropzone"
	"github.com/llehouerou/turntable/internal/ui/headerbar"
	"github.com/llehouerou/turntable/internal/ui/layout"
	"github.com/llehouerou/turntable/internal/ui/overlay"
	"github.com/llehouerou/turntable/internal/ui/playerbar"
	"github.com/llehouerou/turntable/internal/ui/render"
	"github.com/llehouerou/turntable/internal/ui/styles"
)

// View renders the screen. Layers are placed back to front: hearts, panels,
// rows, then the drag sprites on top of everything.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}
	l := m.layout
	st := styles.T().S()

	if m.Height < layout.MinHeight(l.Narrow) {
		msg := fmt.Sprintf("Terminal too small (need %d rows)", layout.MinHeight(l.Narrow))
		return overlay.Place(overlay.Canvas(m.Width, m.Height), st.Warning.Render(render.Center(msg, m.Width)), 0, 0)
	}

	screen := overlay.Canvas(m.Width, m.Height)

	for _, g := range m.hearts.Glyphs(m.Width, m.Height, m.now()) {
		screen = overlay.Place(screen, g.Text, g.X, g.Y)
	}

	screen = overlay.Place(screen, headerbar.Render(m.deck.Visual(), l.Header.W), l.Header.X, l.Header.Y)

	dz := dropzone.State{
		Tracks:    m.loose.Tracks,
		Available: m.loose.Available,
		Dragging:  m.drag.Dragging(),
		Ingesting: m.ingesting,
	}
	screen = overlay.Place(screen, dropzone.Render(dz, l.DropZone.W, l.DropZone.H), l.DropZone.X, l.DropZone.Y)
	if dz.ShowRecord() {
		home := dragdrop.Sprite{Kind: dragdrop.RecordSprite}
		screen = overlay.Place(screen, home.View(), l.Record.X, l.Record.Y)
	}

	screen = overlay.Place(screen, m.deck.View(m.drag.Over(l.Turntable)), l.Turntable.X, l.Turntable.Y)

	bar := playerbar.NewState(m.engine)
	if bar.Loaded {
		screen = overlay.Place(screen, playerbar.RenderControls(bar.Playing, l.Controls.W), l.Controls.X, l.Controls.Y)
		screen = overlay.Place(screen, playerbar.RenderProgress(bar, l.Progress.W), l.Progress.X, l.Progress.Y)
		screen = overlay.Place(screen, playerbar.RenderNowPlaying(bar, l.Playing.W), l.Playing.X, l.Playing.Y)
	}

	screen = overlay.Place(screen, m.renderStatus(), l.Status.X, l.Status.Y)
	// Full help grows upward from the bottom row.
	helpView := m.help.View(m.keys)
	screen = overlay.Place(screen, helpView, l.Help.X, l.Help.Bottom()-lipgloss.Height(helpView)+1)

	if g, ok := m.drag.Gesture(); ok {
		for _, s := range g.Sprites() {
			screen = overlay.Place(screen, s.View(), s.Pos.X, s.Pos.Y)
		}
	}
	return screen
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	st := styles.T().S()
	text := render.Truncate(m.status, m.layout.Status.W)
	if m.statusIsErr {
		return st.Error.Render(text)
	}
	return st.Muted.Render(text)
}
