package hearts

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 2, 14, 20, 0, 0, 0, time.UTC)

func newTestEmitter(cfg Config) *Emitter {
	return New(cfg, WithRand(rand.New(rand.NewPCG(1, 2))))
}

func TestSpawn_InactiveDoesNotGrow(t *testing.T) {
	e := newTestEmitter(DefaultConfig())

	for i := range 10 {
		assert.False(t, e.Spawn(epoch.Add(time.Duration(i)*DefaultSpawnInterval)))
	}

	assert.Zero(t, e.Len())
}

func TestSpawn_ParameterRanges(t *testing.T) {
	e := newTestEmitter(Config{})
	e.SetActive(true)

	for range 500 {
		require.True(t, e.Spawn(epoch))
	}

	seen := map[uuid.UUID]bool{}
	for _, h := range e.Hearts() {
		assert.GreaterOrEqual(t, h.StartX, 0.0)
		assert.Less(t, h.StartX, 100.0)
		assert.GreaterOrEqual(t, h.DriftX, -50.0)
		assert.Less(t, h.DriftX, 50.0)
		assert.GreaterOrEqual(t, h.Size, 16)
		assert.Less(t, h.Size, 32)
		assert.GreaterOrEqual(t, h.Duration, 5*time.Second)
		assert.Less(t, h.Duration, 8*time.Second)
		assert.Equal(t, epoch, h.Born)
		assert.False(t, seen[h.ID], "duplicate id %s", h.ID)
		seen[h.ID] = true
	}
}

func TestSetActive(t *testing.T) {
	e := newTestEmitter(DefaultConfig())
	gen := e.Generation()

	assert.True(t, e.SetActive(true))
	assert.NotEqual(t, gen, e.Generation())
	assert.False(t, e.SetActive(true), "repeated activation is not a change")

	e.Spawn(epoch)
	e.Spawn(epoch)
	require.Equal(t, 2, e.Len())

	gen = e.Generation()
	assert.True(t, e.SetActive(false))
	assert.Zero(t, e.Len(), "deactivation clears immediately")
	assert.NotEqual(t, gen, e.Generation())
}

// Drives spawn and prune ticks the way the app schedules them.
func TestEmitter_BoundedWhilePlaying(t *testing.T) {
	e := newTestEmitter(Config{
		SpawnInterval: DefaultSpawnInterval,
		PruneInterval: DefaultPruneInterval,
		Cap:           DefaultCap,
	})
	e.SetActive(true)

	step := 100 * time.Millisecond
	prev := 0
	for elapsed := step; elapsed <= 60*time.Second; elapsed += step {
		now := epoch.Add(elapsed)
		if elapsed%DefaultSpawnInterval == 0 {
			e.Spawn(now)
			if e.Len() <= DefaultCap {
				assert.Equal(t, prev+1, e.Len(), "grows by one per spawn at %v", elapsed)
			}
		}
		if elapsed%DefaultPruneInterval == 0 {
			e.Prune(now)
			assert.LessOrEqual(t, e.Len(), DefaultCap, "at %v", elapsed)
		}
		prev = e.Len()
	}
}

func TestPrune_KeepsMostRecent(t *testing.T) {
	e := newTestEmitter(Config{Cap: 3})
	e.SetActive(true)
	for i := range 5 {
		e.Spawn(epoch.Add(time.Duration(i) * time.Millisecond))
	}
	all := e.Hearts()

	e.Prune(epoch)

	assert.Equal(t, all[2:], e.Hearts())
}

func TestPrune_DropsExpired(t *testing.T) {
	e := newTestEmitter(Config{Cap: 30, Expire: true})
	e.SetActive(true)
	e.Spawn(epoch)
	e.Spawn(epoch.Add(7 * time.Second))

	e.Prune(epoch.Add(9 * time.Second))

	hearts := e.Hearts()
	require.Len(t, hearts, 1)
	assert.Equal(t, epoch.Add(7*time.Second), hearts[0].Born)
}

func TestPrune_WithoutExpireKeepsOldHearts(t *testing.T) {
	e := newTestEmitter(Config{Cap: 30})
	e.SetActive(true)
	e.Spawn(epoch)

	e.Prune(epoch.Add(time.Hour))

	assert.Equal(t, 1, e.Len())
}

func TestHeart_Progress(t *testing.T) {
	h := Heart{Duration: 4 * time.Second, Born: epoch}

	assert.InDelta(t, 0.0, h.Progress(epoch.Add(-time.Second)), 1e-9)
	assert.InDelta(t, 0.5, h.Progress(epoch.Add(2*time.Second)), 1e-9)
	assert.InDelta(t, 1.0, h.Progress(epoch.Add(time.Minute)), 1e-9)
	assert.False(t, h.Expired(epoch.Add(4*time.Second)))
	assert.True(t, h.Expired(epoch.Add(4*time.Second+1)))
	assert.InDelta(t, 1.0, Heart{}.Progress(epoch), 1e-9)
}

func TestHearts_ReturnsCopy(t *testing.T) {
	e := newTestEmitter(DefaultConfig())
	e.SetActive(true)
	e.Spawn(epoch)

	hs := e.Hearts()
	hs[0].Size = 999

	assert.NotEqual(t, 999, e.Hearts()[0].Size)
}
