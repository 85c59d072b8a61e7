//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	zlog "github.com/rs/zerolog/log"

	"github.com/llehouerou/turntable/internal/playback"
	"github.com/llehouerou/turntable/internal/player"
)

// Adapter connects the playback engine to MPRIS over D-Bus.
type Adapter struct {
	server *server.Server
}

// New creates and starts a new MPRIS adapter. Status is read from engine;
// transport commands are handed to dispatch.
func New(engine playback.Engine, dispatch Dispatcher) (*Adapter, error) {
	a := &Adapter{
		server: server.NewServer("turntable", &rootAdapter{}, &playerAdapter{
			engine:   engine,
			dispatch: dispatch,
		}),
	}

	// Start the server in background
	go func() {
		if err := a.server.Listen(); err != nil {
			zlog.Warn().Err(err).Msg("mpris server stopped")
		}
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Turntable", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return player.SupportedContentTypes(), nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	engine   playback.Engine
	dispatch Dispatcher
}

func (p *playerAdapter) send(c Command) error {
	zlog.Debug().Stringer("command", c).Msg("mpris command")
	p.dispatch(c)
	return nil
}

func (p *playerAdapter) Next() error {
	return p.send(CommandNext)
}

func (p *playerAdapter) Previous() error {
	return p.send(CommandPrevious)
}

func (p *playerAdapter) Pause() error {
	return p.send(CommandPause)
}

func (p *playerAdapter) PlayPause() error {
	return p.send(CommandPlayPause)
}

func (p *playerAdapter) Stop() error {
	return p.send(CommandStop)
}

func (p *playerAdapter) Play() error {
	return p.send(CommandPlay)
}

func (p *playerAdapter) Seek(_ types.Microseconds) error {
	return nil // Not supported
}

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error {
	return nil // Not supported
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	s := p.engine.Snapshot()
	switch {
	case !s.Loaded:
		return types.PlaybackStatusStopped, nil
	case s.Playing:
		return types.PlaybackStatusPlaying, nil
	default:
		return types.PlaybackStatusPaused, nil
	}
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	info := p.engine.TrackInfo()
	if info == nil {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(info.Path)),
		Length:  types.Microseconds(info.Duration.Microseconds()),
		Title:   info.Title,
		Album:   info.Album,
	}
	if info.Artist != "" {
		meta.Artist = []string{info.Artist}
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return p.engine.Volume(), nil
}

// SetVolume applies directly; volume has no visual state to keep in step.
func (p *playerAdapter) SetVolume(level float64) error {
	p.engine.SetVolume(level)
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.engine.Position().Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

// Navigation wraps at both ends, so any loaded record can go either way.
func (p *playerAdapter) CanGoNext() (bool, error) {
	return p.engine.Snapshot().Loaded, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.engine.Snapshot().Loaded, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.engine.Snapshot().Loaded, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return p.engine.Snapshot().Loaded, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func formatTrackID(path string) string {
	h := fnv.New64a()
	h.Write([]byte(path))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
