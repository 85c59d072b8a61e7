// Package dragdrop implements the record drag gesture from the loose record
// slot to the turntable.
//
//	       press on record         release inside target
//	Idle ───────────────────▶ Dragging ──────────────────▶ DroppedOnTarget ─┐
//	 ▲                          │  │ release outside / cancel               │
//	 │                          │  └──────────────────▶ DroppedElsewhere ─┤
//	 │                          │ move (sprites follow the cursor)          │
//	 └──────────────────────────┴───────────────────────────────────────────┘
//
// The controller never holds track data. It only reports the outcome; the
// caller commits the loose record to the playback engine.
package dragdrop

// Phase is the controller state between gestures.
type Phase int

const (
	Idle Phase = iota
	Dragging
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Dragging:
		return "Dragging"
	default:
		return "Unknown"
	}
}

// Outcome is the result of ending a gesture.
type Outcome int

const (
	// NoGesture means there was nothing to end.
	NoGesture Outcome = iota
	DroppedOnTarget
	DroppedElsewhere
)

func (o Outcome) String() string {
	switch o {
	case NoGesture:
		return "NoGesture"
	case DroppedOnTarget:
		return "DroppedOnTarget"
	case DroppedElsewhere:
		return "DroppedElsewhere"
	default:
		return "Unknown"
	}
}

// Availability is the read-only view of the loose record a gesture needs.
type Availability struct {
	Available  bool
	TrackCount int
}

// Controller tracks at most one drag gesture.
type Controller struct {
	gesture *Gesture
}

func NewController() *Controller {
	return &Controller{}
}

func (c *Controller) Phase() Phase {
	if c.gesture != nil {
		return Dragging
	}
	return Idle
}

func (c *Controller) Dragging() bool { return c.gesture != nil }

// Gesture returns the active gesture, or false when idle.
func (c *Controller) Gesture() (Gesture, bool) {
	if c.gesture == nil {
		return Gesture{}, false
	}
	return *c.gesture, true
}

// Press starts a gesture at p. It is honored only when a non-empty loose
// record is available and no gesture is running.
func (c *Controller) Press(p Point, rec Availability) bool {
	if c.gesture != nil || !rec.Available || rec.TrackCount == 0 {
		return false
	}
	c.gesture = newGesture(p)
	return true
}

// Move repositions the sprites. Ignored outside a gesture.
func (c *Controller) Move(p Point) bool {
	if c.gesture == nil {
		return false
	}
	c.gesture.moveTo(p)
	return true
}

// Over reports whether the cursor of the active gesture is inside target.
func (c *Controller) Over(target Rect) bool {
	return c.gesture != nil && target.Contains(c.gesture.Cursor)
}

// Release ends the gesture at p and hit-tests target.
func (c *Controller) Release(p Point, target Rect) Outcome {
	if c.gesture == nil {
		return NoGesture
	}
	c.gesture = nil
	if target.Contains(p) {
		return DroppedOnTarget
	}
	return DroppedElsewhere
}

// Cancel ends the gesture as a miss.
func (c *Controller) Cancel() Outcome {
	if c.gesture == nil {
		return NoGesture
	}
	c.gesture = nil
	return DroppedElsewhere
}
