package app

import (
	tea "github.com/charmbracelet/bubbletea"
	zlog "github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/llehouerou/turntable/internal/errmsg"
	"github.com/llehouerou/turntable/internal/mpris"
	"github.com/llehouerou/turntable/internal/playback"
)

// commitRecord puts the loose record on the turntable and starts track 0.
// The loose slot empties even if the first track fails to start; the
// record is then loaded but not playing.
func (m *Model) commitRecord() tea.Cmd {
	tracks := m.loose.Tracks
	m.loose.Available = false
	err := m.engine.Load(tracks, 0)
	if !m.reportPlaybackError(errmsg.OpPlaybackStart, err) {
		m.setStatus("", false)
	}
	return m.syncVisuals()
}

func (m *Model) toggle() tea.Cmd {
	m.reportPlaybackError(errmsg.OpPlaybackToggle, m.engine.Toggle())
	return m.syncVisuals()
}

func (m *Model) advance(d playback.Direction) tea.Cmd {
	m.reportPlaybackError(errmsg.OpPlaybackAdvance, m.engine.Advance(d))
	return m.syncVisuals()
}

// eject takes the record off the turntable. It returns to the drop zone
// unless a newer loose record already sits there.
func (m *Model) eject() tea.Cmd {
	snap := m.engine.Snapshot()
	if !snap.Loaded {
		return nil
	}
	m.engine.Eject()
	if !m.loose.Available {
		m.loose = Record{Tracks: snap.Queue, Available: true}
	}
	if m.announcer != nil {
		if err := m.announcer.Dismiss(); err != nil {
			zlog.Debug().Err(err).Msg("dismiss notification")
		}
	}
	m.setStatus("", false)
	return m.syncVisuals()
}

func (m *Model) changeVolume(delta float64) {
	m.engine.SetVolume(lo.Clamp(m.engine.Volume()+delta, 0, 1))
}

// reportPlaybackError shows err on the status line. Returns true if there
// was an error.
func (m *Model) reportPlaybackError(op errmsg.Op, err error) bool {
	if err == nil {
		return false
	}
	m.setStatus(errmsg.Format(op, err), true)
	return true
}

// syncVisuals feeds the engine state into the turntable machine, the heart
// emitter and the key bindings. A changed input bumps the owner's
// generation, which retires its pending ticks; a fresh chain is started for
// the new generation when needed.
func (m *Model) syncVisuals() tea.Cmd {
	snap := m.engine.Snapshot()
	m.keys.SetPlaybackEnabled(snap.Loaded)

	var cmds []tea.Cmd
	if m.deck.Sync(snap.Loaded, snap.Playing) && m.deck.Spinning() {
		cmds = append(cmds, SpinTickCmd(m.deck.Config().Tick, m.deck.Generation()))
	}
	if m.hearts.SetActive(snap.Playing) && snap.Playing {
		gen := m.hearts.Generation()
		cfg := m.hearts.Config()
		cmds = append(cmds,
			HeartSpawnCmd(cfg.SpawnInterval, gen),
			HeartPruneCmd(cfg.PruneInterval, gen),
		)
	}
	if snap.Playing && !m.progressRunning {
		m.progressRunning = true
		cmds = append(cmds, ProgressTickCmd())
	}
	return tea.Batch(cmds...)
}

func (m *Model) announce(msg TrackChangedMsg) {
	if m.announcer == nil || msg.Change.Current == nil {
		return
	}
	snap := m.engine.Snapshot()
	err := m.announcer.TrackChanged(m.engine.TrackInfo(), msg.Change.Index, len(snap.Queue))
	if err != nil {
		zlog.Debug().Err(err).Msg(errmsg.Format(errmsg.OpNotify, err))
	}
}

func (m Model) handleMPRIS(msg MPRISMsg) (tea.Model, tea.Cmd) {
	snap := m.engine.Snapshot()
	switch msg.Command {
	case mpris.CommandPlayPause:
		return m, m.toggle()
	case mpris.CommandPlay:
		if snap.Loaded && !snap.Playing {
			return m, m.toggle()
		}
	case mpris.CommandPause, mpris.CommandStop:
		if snap.Playing {
			return m, m.toggle()
		}
	case mpris.CommandNext:
		return m, m.advance(playback.Forward)
	case mpris.CommandPrevious:
		return m, m.advance(playback.Backward)
	}
	return m, nil
}
