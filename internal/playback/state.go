// internal/playback/state.go
package playback

import "github.com/llehouerou/turntable/internal/track"

// State is an immutable snapshot of the engine.
//
// Invariants:
//   - empty Queue: Loaded and Playing are false, Index is -1
//   - non-empty Queue: Loaded is true, Index is in [0, len(Queue))
type State struct {
	Queue   track.List
	Index   int
	Playing bool
	Loaded  bool
}

// Current returns the selected track, or nil when nothing is loaded.
func (s State) Current() *track.Track {
	return s.Queue.At(s.Index)
}

// Equal reports whether two snapshots describe the same visible state.
// Queues are compared by length and handles.
func (s State) Equal(o State) bool {
	if s.Index != o.Index || s.Playing != o.Playing || s.Loaded != o.Loaded {
		return false
	}
	if len(s.Queue) != len(o.Queue) {
		return false
	}
	for i := range s.Queue {
		if s.Queue[i].Handle != o.Queue[i].Handle {
			return false
		}
	}
	return true
}

// Direction is a step through the queue.
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Backward:
		return "Backward"
	case Forward:
		return "Forward"
	default:
		return "Unknown"
	}
}
