package playback

import (
	"time"

	"github.com/llehouerou/turntable/internal/player"
	"github.com/llehouerou/turntable/internal/track"
)

// Engine owns the loaded queue and the single audio output.
// Operations on an empty queue are no-ops.
type Engine interface {
	// Load replaces the queue and starts the track at index (wrapped).
	Load(queue track.List, index int) error
	// Toggle flips play/pause of the loaded record.
	Toggle() error
	// Advance moves to the adjacent track, wrapping at both ends, and plays it.
	Advance(d Direction) error
	// HandleFinished advances after a natural end of the track started at
	// generation gen. Stale generations are ignored.
	HandleFinished(gen uint64) error
	// Eject stops playback and removes the record.
	Eject()

	SetVolume(level float64)
	Volume() float64

	Snapshot() State
	Generation() uint64
	Position() time.Duration
	Duration() time.Duration
	TrackInfo() *player.TrackInfo

	Subscribe() *Subscription
	Close() error
}
