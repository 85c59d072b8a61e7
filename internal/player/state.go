// internal/player/state.go
package player

// State is the transport state of the audio output.
//
// The output has three states:
//
//	┌──────────┐      play       ┌──────────┐
//	│  Stopped │ ───────────────▶│  Playing │◀─┐
//	└──────────┘                 └──────────┘  │
//	     ▲                            │ │      │ resume
//	     │ stop / end of track  pause │ │      │
//	     │                            ▼ │      │
//	     │                       ┌──────────┐  │
//	     └───────────────────────│  Paused  │──┘
//	                  stop       └──────────┘
//
// Valid transitions:
//   - Stopped → Playing (via Play)
//   - Playing → Paused  (via Pause)
//   - Paused  → Playing (via Resume)
//   - Playing → Stopped (via Stop, or when the track ends)
//   - Paused  → Stopped (via Stop)
//
// Toggle() flips Playing ↔ Paused and is a no-op while Stopped.
// Play() always replaces the current source, so only one track is ever bound
// to the output.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a source is bound (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

func (s State) CanPause() bool  { return s == Playing }
func (s State) CanResume() bool { return s == Paused }
