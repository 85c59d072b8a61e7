// Package hearts emits the falling hearts shown while a record plays.
//
// The emitter is driven from outside: the caller invokes Spawn and Prune on
// its own timers and uses Generation to drop ticks scheduled before the last
// SetActive change.
package hearts

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	DefaultSpawnInterval = 400 * time.Millisecond
	DefaultPruneInterval = time.Second
	DefaultCap           = 30
)

const (
	minSize     = 16
	maxSize     = 32
	minDuration = 5 * time.Second
	maxDuration = 8 * time.Second
)

// Heart is one falling decoration.
type Heart struct {
	ID       uuid.UUID
	StartX   float64 // percent of the width, [0, 100)
	DriftX   float64 // horizontal travel over the fall, percent of the width, [-50, 50)
	Size     int     // [16, 32)
	Duration time.Duration
	Born     time.Time
}

// Progress returns how far the heart has fallen at now, in [0, 1].
func (h Heart) Progress(now time.Time) float64 {
	if h.Duration <= 0 {
		return 1
	}
	return lo.Clamp(float64(now.Sub(h.Born))/float64(h.Duration), 0, 1)
}

// Expired reports whether the heart's fall has completed at now.
func (h Heart) Expired(now time.Time) bool {
	return now.Sub(h.Born) > h.Duration
}

type Config struct {
	SpawnInterval time.Duration
	PruneInterval time.Duration
	// Cap is the number of most recent hearts kept by Prune.
	Cap int
	// Expire makes Prune also drop hearts whose fall has completed.
	Expire bool
}

func DefaultConfig() Config {
	return Config{
		SpawnInterval: DefaultSpawnInterval,
		PruneInterval: DefaultPruneInterval,
		Cap:           DefaultCap,
		Expire:        true,
	}
}

// Emitter owns the live heart set.
type Emitter struct {
	cfg    Config
	rng    *rand.Rand
	newID  func() uuid.UUID
	active bool
	gen    uint64
	hearts []Heart
}

type Option func(*Emitter)

// WithRand sets the random source used for heart parameters.
func WithRand(r *rand.Rand) Option {
	return func(e *Emitter) { e.rng = r }
}

// WithIDs sets the heart ID generator.
func WithIDs(fn func() uuid.UUID) Option {
	return func(e *Emitter) { e.newID = fn }
}

func New(cfg Config, opts ...Option) *Emitter {
	e := &Emitter{
		cfg:   cfg,
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		newID: uuid.New,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Emitter) Config() Config { return e.cfg }

func (e *Emitter) Active() bool { return e.active }

// Generation changes on every SetActive transition.
func (e *Emitter) Generation() uint64 { return e.gen }

// SetActive gates the emitter. Deactivating clears the live set at once.
// Returns true if the state changed, in which case the caller restarts its
// timers for the new generation.
func (e *Emitter) SetActive(active bool) bool {
	if active == e.active {
		return false
	}
	e.active = active
	e.gen++
	if !active {
		e.hearts = nil
	}
	return true
}

// Spawn adds one heart born at now. No-op while inactive.
func (e *Emitter) Spawn(now time.Time) bool {
	if !e.active {
		return false
	}
	e.hearts = append(e.hearts, Heart{
		ID:       e.newID(),
		StartX:   e.rng.Float64() * 100,
		DriftX:   e.rng.Float64()*100 - 50,
		Size:     minSize + e.rng.IntN(maxSize-minSize),
		Duration: minDuration + time.Duration(e.rng.Int64N(int64(maxDuration-minDuration))),
		Born:     now,
	})
	return true
}

// Prune keeps the most recent Cap hearts and, with Expire set, drops the
// hearts that finished falling.
func (e *Emitter) Prune(now time.Time) {
	if e.cfg.Cap > 0 && len(e.hearts) > e.cfg.Cap {
		e.hearts = slices.Clone(e.hearts[len(e.hearts)-e.cfg.Cap:])
	}
	if e.cfg.Expire {
		e.hearts = lo.Filter(e.hearts, func(h Heart, _ int) bool {
			return !h.Expired(now)
		})
	}
}

// Hearts returns a copy of the live set, oldest first.
func (e *Emitter) Hearts() []Heart {
	return slices.Clone(e.hearts)
}

func (e *Emitter) Len() int { return len(e.hearts) }
