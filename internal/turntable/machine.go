// Package turntable derives the player's displayed frame from whether a
// record is on the platter and whether it plays.
package turntable

import (
	"math/rand/v2"
	"time"
)

const (
	DefaultTick            = 300 * time.Millisecond
	DefaultNeedleBobChance = 0.35
)

// Visual is the state shown to the user.
type Visual int

const (
	Empty Visual = iota
	Idle
	Spinning
	NeedleBob
)

func (v Visual) String() string {
	switch v {
	case Empty:
		return "Empty"
	case Idle:
		return "Idle"
	case Spinning:
		return "Spinning"
	case NeedleBob:
		return "NeedleBob"
	default:
		return "Unknown"
	}
}

// Frame is the image currently drawn.
type Frame int

const (
	FrameEmpty Frame = iota
	FrameRest
	FrameSpin
	FrameNeedleBob
)

func (f Frame) String() string {
	switch f {
	case FrameEmpty:
		return "Empty"
	case FrameRest:
		return "Rest"
	case FrameSpin:
		return "Spin"
	case FrameNeedleBob:
		return "NeedleBob"
	default:
		return "Unknown"
	}
}

// transition is one row of the spinning frame table. When divert is set the
// machine goes to divertTo with the needle bob chance instead of next.
type transition struct {
	next     Frame
	divert   bool
	divertTo Frame
}

var spinTable = map[Frame]transition{
	FrameRest:      {next: FrameSpin},
	FrameSpin:      {next: FrameRest, divert: true, divertTo: FrameNeedleBob},
	FrameNeedleBob: {next: FrameRest},
}

type Config struct {
	Tick            time.Duration
	NeedleBobChance float64
}

func DefaultConfig() Config {
	return Config{Tick: DefaultTick, NeedleBobChance: DefaultNeedleBobChance}
}

// Machine holds the private animation state of the turntable.
type Machine struct {
	cfg       Config
	rng       *rand.Rand
	hasRecord bool
	playing   bool
	frame     Frame
	gen       uint64
}

func New(cfg Config, rng *rand.Rand) *Machine {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Machine{cfg: cfg, rng: rng, frame: FrameEmpty}
}

func (m *Machine) Config() Config { return m.cfg }

func (m *Machine) Frame() Frame { return m.frame }

// Generation changes whenever Sync changes the inputs; ticks carrying an
// older generation are ignored.
func (m *Machine) Generation() uint64 { return m.gen }

func (m *Machine) Visual() Visual {
	switch {
	case !m.hasRecord:
		return Empty
	case !m.playing:
		return Idle
	case m.frame == FrameNeedleBob:
		return NeedleBob
	default:
		return Spinning
	}
}

// Spinning reports whether the machine wants ticks.
func (m *Machine) Spinning() bool { return m.hasRecord && m.playing }

// Sync updates the inputs. Returns true when they changed; the caller then
// schedules a tick for the new generation if Spinning.
func (m *Machine) Sync(hasRecord, playing bool) bool {
	playing = playing && hasRecord
	if hasRecord == m.hasRecord && playing == m.playing {
		return false
	}
	m.hasRecord = hasRecord
	m.playing = playing
	m.gen++
	if hasRecord {
		m.frame = FrameRest
	} else {
		m.frame = FrameEmpty
	}
	return true
}

// Tick advances the spinning animation one step. Returns false for stale
// generations or when not spinning.
func (m *Machine) Tick(gen uint64) bool {
	if gen != m.gen || !m.Spinning() {
		return false
	}
	tr, ok := spinTable[m.frame]
	if !ok {
		m.frame = FrameRest
		return true
	}
	if tr.divert && m.rng.Float64() < m.cfg.NeedleBobChance {
		m.frame = tr.divertTo
	} else {
		m.frame = tr.next
	}
	return true
}
