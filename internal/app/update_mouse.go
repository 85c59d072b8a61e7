package app

import (
	tea "github.com/charmbracelet/bubbletea"
	zlog "github.com/rs/zerolog/log"

	"github.com/llehouerou/turntable/internal/dragdrop"
	"github.com/llehouerou/turntable/internal/playback"
	"github.com/llehouerou/turntable/internal/ui/playerbar"
)

// handleMouse routes pointer events. All-motion reporting is switched on
// only for the duration of a drag gesture.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p := dragdrop.Point{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m.handlePress(p)

	case tea.MouseActionMotion:
		m.drag.Move(p)
		return m, nil

	case tea.MouseActionRelease:
		return m.handleRelease(p)
	}
	return m, nil
}

func (m Model) handlePress(p dragdrop.Point) (tea.Model, tea.Cmd) {
	if m.layout.Record.Contains(p) {
		if m.drag.Press(p, m.loose.availability()) {
			zlog.Debug().Int("x", p.X).Int("y", p.Y).Msg("drag started")
			return m, tea.EnableMouseAllMotion
		}
		return m, nil
	}

	snap := m.engine.Snapshot()
	if !snap.Loaded || !m.layout.Controls.Contains(p) {
		return m, nil
	}
	b, ok := playerbar.ButtonAt(snap.Playing, m.layout.Controls.W, p.X-m.layout.Controls.X)
	if !ok {
		return m, nil
	}
	switch b {
	case playerbar.ButtonPrev:
		return m, m.advance(playback.Backward)
	case playerbar.ButtonToggle:
		return m, m.toggle()
	case playerbar.ButtonNext:
		return m, m.advance(playback.Forward)
	}
	return m, nil
}

func (m Model) handleRelease(p dragdrop.Point) (tea.Model, tea.Cmd) {
	outcome := m.drag.Release(p, m.layout.Turntable)
	switch outcome {
	case dragdrop.NoGesture:
		return m, nil
	case dragdrop.DroppedOnTarget:
		zlog.Debug().Int("tracks", m.loose.Tracks.Len()).Msg("record dropped on turntable")
		return m, tea.Batch(tea.EnableMouseCellMotion, m.commitRecord())
	case dragdrop.DroppedElsewhere:
	}
	return m, tea.EnableMouseCellMotion
}

// cancelDrag ends an open gesture as a miss.
func (m *Model) cancelDrag() tea.Cmd {
	if m.drag.Cancel() == dragdrop.NoGesture {
		return nil
	}
	return tea.EnableMouseCellMotion
}
