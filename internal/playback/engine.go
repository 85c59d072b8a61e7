// internal/playback/engine.go
package playback

import (
	"slices"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/llehouerou/turntable/internal/player"
	"github.com/llehouerou/turntable/internal/track"
)

var _ Engine = (*engine)(nil)

type engine struct {
	mu sync.RWMutex

	player player.Interface
	queue  track.List
	index  int
	// gen identifies the most recent track start; finish signals carrying an
	// older value belong to a replaced track.
	gen uint64

	subs   []*Subscription
	subsMu sync.RWMutex

	closed bool
}

// New creates an engine bound to p. The engine is the only caller of p.
func New(p player.Interface) Engine {
	return &engine{
		player: p,
		index:  -1,
	}
}

func (e *engine) Load(queue track.List, index int) error {
	if queue.IsEmpty() {
		return nil
	}

	e.mu.Lock()
	before := e.snapshotLocked()
	e.queue = slices.Clone(queue)
	n := len(e.queue)
	tc, err := e.startLocked(((index%n)+n)%n)
	after := e.snapshotLocked()
	e.mu.Unlock()

	e.publish(before, after, tc, "load", err)
	return err
}

func (e *engine) Toggle() error {
	e.mu.Lock()
	if e.queue.IsEmpty() {
		e.mu.Unlock()
		return nil
	}
	before := e.snapshotLocked()

	var (
		tc  *TrackChange
		err error
	)
	switch e.player.State() {
	case player.Playing, player.Paused:
		e.player.Toggle()
	case player.Stopped:
		// Start failed or the track ended before the finish was handled.
		tc, err = e.startLocked(e.index)
	}
	after := e.snapshotLocked()
	e.mu.Unlock()

	e.publish(before, after, tc, "toggle", err)
	return err
}

func (e *engine) Advance(d Direction) error {
	e.mu.Lock()
	tc, before, after, err := e.advanceLocked(d)
	e.mu.Unlock()

	e.publish(before, after, tc, "advance", err)
	return err
}

func (e *engine) HandleFinished(gen uint64) error {
	e.mu.Lock()
	if gen != e.gen {
		current := e.gen
		e.mu.Unlock()
		zlog.Debug().Uint64("gen", gen).Uint64("current", current).Msg("stale track finish ignored")
		return nil
	}
	tc, before, after, err := e.advanceLocked(Forward)
	e.mu.Unlock()

	e.publish(before, after, tc, "advance", err)
	return err
}

func (e *engine) advanceLocked(d Direction) (*TrackChange, State, State, error) {
	before := e.snapshotLocked()
	n := len(e.queue)
	if n == 0 {
		return nil, before, before, nil
	}
	step := 1
	if d < 0 {
		step = -1
	}
	tc, err := e.startLocked((e.index+step+n)%n)
	return tc, before, e.snapshotLocked(), err
}

func (e *engine) Eject() {
	e.mu.Lock()
	before := e.snapshotLocked()
	e.player.Stop()
	e.queue = nil
	e.index = -1
	e.gen++
	after := e.snapshotLocked()
	e.mu.Unlock()

	e.publish(before, after, nil, "eject", nil)
}

// startLocked binds queue[i] to the output. On failure the record stays
// loaded at i without playing.
func (e *engine) startLocked(i int) (*TrackChange, error) {
	prevIndex := e.index
	prev := e.queue.At(prevIndex)
	e.index = i
	e.gen++

	t := e.queue[i]
	if err := e.player.Play(t.Handle, e.gen); err != nil {
		return nil, errors.Wrapf(err, "play %q", t.Name)
	}
	zlog.Debug().Str("track", t.Name).Int("index", i).Uint64("gen", e.gen).Msg("track started")
	return &TrackChange{
		Previous:      prev,
		Current:       e.queue.At(i),
		PreviousIndex: prevIndex,
		Index:         i,
	}, nil
}

func (e *engine) snapshotLocked() State {
	if e.queue.IsEmpty() {
		return State{Index: -1}
	}
	return State{
		Queue:   e.queue,
		Index:   e.index,
		Playing: e.player.State() == player.Playing,
		Loaded:  true,
	}
}

func (e *engine) publish(before, after State, tc *TrackChange, op string, err error) {
	e.subsMu.RLock()
	defer e.subsMu.RUnlock()

	if err != nil {
		zlog.Warn().Err(err).Msg("playback failed")
		ev := ErrorEvent{Operation: op, Err: err}
		if cur := after.Current(); cur != nil {
			ev.Path = cur.Handle
		}
		for _, sub := range e.subs {
			sub.sendError(ev)
		}
	}
	if tc != nil {
		for _, sub := range e.subs {
			sub.sendTrack(*tc)
		}
	}
	if !before.Equal(after) {
		for _, sub := range e.subs {
			sub.sendState(StateChange{Previous: before, Current: after})
		}
	}
}

func (e *engine) Snapshot() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	s := e.snapshotLocked()
	s.Queue = slices.Clone(s.Queue)
	return s
}

func (e *engine) Generation() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.gen
}

func (e *engine) SetVolume(level float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.player.SetVolume(level)
}

func (e *engine) Volume() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.player.Volume()
}

func (e *engine) Position() time.Duration {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.player.Position()
}

func (e *engine) Duration() time.Duration {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.player.Duration()
}

func (e *engine) TrackInfo() *player.TrackInfo {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.player.TrackInfo()
}

// Subscribe creates a new event subscription.
func (e *engine) Subscribe() *Subscription {
	e.subsMu.Lock()
	defer e.subsMu.Unlock()
	sub := newSubscription()
	e.subs = append(e.subs, sub)
	return sub
}

// Close stops the output and signals subscribers.
func (e *engine) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	e.player.Stop()
	e.mu.Unlock()

	e.subsMu.Lock()
	for _, sub := range e.subs {
		sub.close()
	}
	e.subs = nil
	e.subsMu.Unlock()

	return nil
}
