// internal/player/interface.go
package player

import "time"

// Interface is the single-track audio output used by the playback engine.
type Interface interface {
	// Play binds path to the output. gen is delivered on FinishedChan when
	// this track reaches its natural end.
	Play(path string, gen uint64) error
	Stop()
	Pause()
	Resume()
	Toggle()
	State() State
	TrackInfo() *TrackInfo
	Position() time.Duration
	Duration() time.Duration
	SetVolume(level float64)
	Volume() float64
	// FinishedChan receives the gen passed to Play each time a track reaches
	// its natural end.
	FinishedChan() <-chan uint64
}

var _ Interface = (*Player)(nil)
