package playback

import "github.com/llehouerou/turntable/internal/track"

// StateChange is emitted when the snapshot changes.
type StateChange struct {
	Previous State
	Current  State
}

// TrackChange is emitted each time a track is bound to the output,
// including automatic advance after a track finishes.
//
// NOT emitted by:
//   - Toggle: pausing or resuming keeps the same track
//   - Eject: the engine emits a StateChange with an empty queue instead
type TrackChange struct {
	Previous      *track.Track
	Current       *track.Track
	PreviousIndex int
	Index         int
}

// ErrorEvent is emitted when the output fails to start a track.
type ErrorEvent struct {
	Operation string // e.g., "load", "advance"
	Path      string
	Err       error
}
