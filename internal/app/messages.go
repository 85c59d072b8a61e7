// Package app contains the root bubbletea model wiring the record player
// together: drop handling, the drag gesture, playback and the animations.
package app

import (
	"github.com/llehouerou/turntable/internal/mpris"
	"github.com/llehouerou/turntable/internal/playback"
	"github.com/llehouerou/turntable/internal/track"
)

// Timer messages carry the generation of the state machine that scheduled
// them. A message whose generation no longer matches is dropped, which ends
// that timer chain.

// SpinTickMsg advances the turntable animation.
type SpinTickMsg struct{ Gen uint64 }

// HeartSpawnMsg adds one heart.
type HeartSpawnMsg struct{ Gen uint64 }

// HeartPruneMsg trims the heart set.
type HeartPruneMsg struct{ Gen uint64 }

// ProgressTickMsg refreshes the progress row while playing.
type ProgressTickMsg struct{}

// TrackFinishedMsg reports the natural end of the track started at Gen.
type TrackFinishedMsg struct{ Gen uint64 }

// IngestedMsg is the result of reading dropped paths.
type IngestedMsg struct {
	Seq    uint64
	Tracks track.List
	Err    error
	// CLI is true for paths given on the command line.
	CLI bool
}

// TrackChangedMsg mirrors a playback TrackChange event.
type TrackChangedMsg struct{ Change playback.TrackChange }

// PlaybackClosedMsg is sent once the engine has shut down.
type PlaybackClosedMsg struct{}

// StderrMsg carries a line captured from C library output.
type StderrMsg struct{ Line string }

// MPRISMsg carries a media key command from the session bus.
type MPRISMsg struct{ Command mpris.Command }
