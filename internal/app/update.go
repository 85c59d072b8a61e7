package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	zlog "github.com/rs/zerolog/log"

	"github.com/llehouerou/turntable/internal/errmsg"
	"github.com/llehouerou/turntable/internal/ingest"
	"github.com/llehouerou/turntable/internal/keymap"
	"github.com/llehouerou/turntable/internal/playback"
	"github.com/llehouerou/turntable/internal/ui/layout"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		if msg.Paste {
			return m.handleDrop(ingest.ParseDrop(string(msg.Runes)), false)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case startupDropMsg:
		return m.handleDrop(msg.paths, true)

	case IngestedMsg:
		return m.handleIngested(msg)

	case SpinTickMsg:
		if m.deck.Tick(msg.Gen) {
			return m, SpinTickCmd(m.deck.Config().Tick, msg.Gen)
		}
		return m, nil

	case HeartSpawnMsg:
		if msg.Gen != m.hearts.Generation() || !m.hearts.Spawn(m.now()) {
			return m, nil
		}
		return m, HeartSpawnCmd(m.hearts.Config().SpawnInterval, msg.Gen)

	case HeartPruneMsg:
		if msg.Gen != m.hearts.Generation() || !m.hearts.Active() {
			return m, nil
		}
		m.hearts.Prune(m.now())
		return m, HeartPruneCmd(m.hearts.Config().PruneInterval, msg.Gen)

	case ProgressTickMsg:
		if !m.engine.Snapshot().Playing {
			m.progressRunning = false
			return m, nil
		}
		return m, ProgressTickCmd()

	case TrackFinishedMsg:
		err := m.engine.HandleFinished(msg.Gen)
		m.reportPlaybackError(errmsg.OpPlaybackAdvance, err)
		return m, tea.Batch(m.syncVisuals(), WatchFinished(m.finished))

	case TrackChangedMsg:
		m.announce(msg)
		return m, WatchPlayback(m.sub)

	case PlaybackClosedMsg:
		return m, nil

	case StderrMsg:
		m.setStatus(msg.Line, true)
		return m, WatchStderr()

	case MPRISMsg:
		return m.handleMPRIS(msg)
	}

	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.layout = layout.Calculate(msg.Width, msg.Height)
	m.help.Width = msg.Width

	// Cell coordinates of an open gesture no longer mean anything.
	return m, m.cancelDrag()
}

// handleDrop starts reading dropped paths. The loose record is replaced
// only when the result arrives and is non-empty.
func (m Model) handleDrop(paths []string, cli bool) (tea.Model, tea.Cmd) {
	if len(paths) == 0 {
		return m, nil
	}
	m.stopIngesting()
	ctx, cancel := context.WithCancel(context.Background())
	m.stopIngest = cancel
	m.ingestSeq++
	m.ingesting = true
	zlog.Debug().Strs("paths", paths).Uint64("seq", m.ingestSeq).Msg("drop received")
	return m, IngestCmd(ctx, m.ingester, m.ingestSeq, paths, cli)
}

// stopIngesting abandons the walk in flight, if any.
func (m *Model) stopIngesting() {
	if m.stopIngest != nil {
		m.stopIngest()
		m.stopIngest = nil
	}
}

func (m Model) handleIngested(msg IngestedMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.ingestSeq {
		// A newer drop superseded this one.
		return m, nil
	}
	m.stopIngesting()
	m.ingesting = false

	op := errmsg.OpIngest
	if msg.CLI {
		op = errmsg.OpIngestCLI
	}
	if msg.Err != nil {
		m.setStatus(errmsg.Format(op, msg.Err), true)
		return m, nil
	}
	if msg.Tracks.IsEmpty() {
		m.setStatus("No audio files found", false)
		return m, nil
	}

	// The gesture was for the previous record.
	cmd := m.cancelDrag()
	m.loose = Record{Tracks: msg.Tracks, Available: true}
	m.setStatus(fmt.Sprintf("Record ready: %d tracks", msg.Tracks.Len()), false)
	zlog.Info().Int("tracks", msg.Tracks.Len()).Msg("loose record ready")
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Resolve(msg) {
	case keymap.ActionQuit:
		m.stopIngesting()
		return m, tea.Quit
	case keymap.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case keymap.ActionCancel:
		return m, m.cancelDrag()
	case keymap.ActionPlayPause:
		return m, m.toggle()
	case keymap.ActionNextTrack:
		return m, m.advance(playback.Forward)
	case keymap.ActionPrevTrack:
		return m, m.advance(playback.Backward)
	case keymap.ActionEject:
		return m, m.eject()
	case keymap.ActionVolumeUp:
		m.changeVolume(volumeStep)
		return m, nil
	case keymap.ActionVolumeDown:
		m.changeVolume(-volumeStep)
		return m, nil
	case keymap.ActionNone:
	}
	return m, nil
}
