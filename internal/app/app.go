package app

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/turntable/internal/dragdrop"
	"github.com/llehouerou/turntable/internal/hearts"
	"github.com/llehouerou/turntable/internal/ingest"
	"github.com/llehouerou/turntable/internal/keymap"
	"github.com/llehouerou/turntable/internal/notify"
	"github.com/llehouerou/turntable/internal/playback"
	"github.com/llehouerou/turntable/internal/track"
	"github.com/llehouerou/turntable/internal/turntable"
	"github.com/llehouerou/turntable/internal/ui/layout"
)

// volumeStep is the change applied by one volume key press.
const volumeStep = 0.05

// Record is the loose record in the drop zone.
type Record struct {
	Tracks track.List
	// Available is false while the record sits on the turntable.
	Available bool
}

func (r Record) availability() dragdrop.Availability {
	return dragdrop.Availability{Available: r.Available, TrackCount: r.Tracks.Len()}
}

// Options configures a Model.
type Options struct {
	Engine   playback.Engine
	Ingester *ingest.Ingester
	// Finished delivers natural track ends from the audio output.
	Finished <-chan uint64

	Hearts    hearts.Config
	Turntable turntable.Config
	Rand      *rand.Rand

	// Notifier announces track changes; nil disables notifications.
	Notifier notify.Notifier
	// Paths are ingested at start as if dropped.
	Paths []string
	// CaptureStderr listens for captured C library output.
	CaptureStderr bool
	// Now is the clock; defaults to time.Now.
	Now func() time.Time
}

// Model is the root application model.
type Model struct {
	engine    playback.Engine
	sub       *playback.Subscription
	ingester  *ingest.Ingester
	finished  <-chan uint64
	announcer *notify.Announcer

	keys keymap.KeyMap
	help help.Model

	drag   *dragdrop.Controller
	hearts *hearts.Emitter
	deck   *turntable.Machine
	layout layout.Layout

	loose     Record
	ingestSeq uint64
	ingesting bool
	// stopIngest cancels the walk for ingestSeq.
	stopIngest context.CancelFunc

	progressRunning bool

	status      string
	statusIsErr bool

	paths         []string
	captureStderr bool
	now           func() time.Time

	Width  int
	Height int
}

// New creates the root model.
func New(opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	m := Model{
		engine:        opts.Engine,
		sub:           opts.Engine.Subscribe(),
		ingester:      opts.Ingester,
		finished:      opts.Finished,
		keys:          keymap.Default(),
		help:          help.New(),
		drag:          dragdrop.NewController(),
		hearts:        hearts.New(opts.Hearts, hearts.WithRand(rng)),
		deck:          turntable.New(opts.Turntable, rng),
		paths:         opts.Paths,
		captureStderr: opts.CaptureStderr,
		now:           now,
	}
	if opts.Notifier != nil {
		m.announcer = notify.NewAnnouncer(opts.Notifier)
	}
	m.keys.SetPlaybackEnabled(false)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		WatchFinished(m.finished),
		WatchPlayback(m.sub),
	}
	if m.captureStderr {
		cmds = append(cmds, WatchStderr())
	}
	if len(m.paths) > 0 {
		cmds = append(cmds, func() tea.Msg { return startupDropMsg{paths: m.paths} })
	}
	return tea.Batch(cmds...)
}

// startupDropMsg routes command-line paths through Update so the ingest
// sequence number is assigned there.
type startupDropMsg struct{ paths []string }

// Loose returns the loose record.
func (m Model) Loose() Record { return m.loose }

// Status returns the status line text.
func (m Model) Status() string { return m.status }

// Dragging reports whether a drag gesture is running.
func (m Model) Dragging() bool { return m.drag.Dragging() }

// Hearts returns the heart emitter.
func (m Model) Hearts() *hearts.Emitter { return m.hearts }

// Deck returns the turntable state machine.
func (m Model) Deck() *turntable.Machine { return m.deck }

// Layout returns the current screen layout.
func (m Model) Layout() layout.Layout { return m.layout }

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusIsErr = isErr
}
