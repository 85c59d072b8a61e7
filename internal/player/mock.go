// internal/player/mock.go
package player

import "time"

// Mock is a test double for Player.
type Mock struct {
	state      State
	position   time.Duration
	duration   time.Duration
	volume     float64
	trackInfo  *TrackInfo
	playErr    error
	playCalls  []string
	gen        uint64
	finishedCh chan uint64
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{
		state:      Stopped,
		volume:     1.0,
		finishedCh: make(chan uint64, 1),
	}
}

func (m *Mock) Play(path string, gen uint64) error {
	m.playCalls = append(m.playCalls, path)
	m.gen = gen
	m.state = Stopped
	m.trackInfo = nil
	if m.playErr != nil {
		return m.playErr
	}
	m.state = Playing
	m.trackInfo = &TrackInfo{Path: path, Title: path, Duration: m.duration}
	return nil
}

func (m *Mock) Stop() {
	m.state = Stopped
	m.trackInfo = nil
}

func (m *Mock) Pause() {
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Resume() {
	if m.state == Paused {
		m.state = Playing
	}
}

func (m *Mock) Toggle() {
	switch m.state {
	case Playing:
		m.Pause()
	case Paused:
		m.Resume()
	case Stopped:
	}
}

func (m *Mock) State() State { return m.state }

func (m *Mock) TrackInfo() *TrackInfo { return m.trackInfo }

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Duration() time.Duration { return m.duration }

func (m *Mock) SetVolume(level float64) {
	m.volume = min(max(level, 0), 1)
}

func (m *Mock) Volume() float64 { return m.volume }

func (m *Mock) FinishedChan() <-chan uint64 {
	return m.finishedCh
}

// Test helpers

func (m *Mock) SetState(s State) { m.state = s }

func (m *Mock) SetPlayError(err error) { m.playErr = err }

func (m *Mock) PlayCalls() []string { return m.playCalls }

func (m *Mock) SetDuration(d time.Duration) { m.duration = d }

func (m *Mock) SetPosition(d time.Duration) { m.position = d }

// SimulateFinished simulates the current track reaching its end. The gen
// of the last Play call is sent.
func (m *Mock) SimulateFinished() {
	m.state = Stopped
	select {
	case m.finishedCh <- m.gen:
	default:
	}
}

var _ Interface = (*Mock)(nil)
