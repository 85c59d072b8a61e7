// Package notify announces the track on the turntable as a desktop
// notification. Each announcement replaces the previous one, is kept out of
// the notification history and plays no sound over the music.
package notify

import (
	"fmt"

	"github.com/llehouerou/turntable/internal/player"
)

const (
	appName = "Turntable"
	appID   = "turntable"

	// trackIcon is a freedesktop icon name shown on track notifications.
	trackIcon = "media-playback-start"
	// trackTimeout is how long a track notification stays up, in ms.
	trackTimeout = 4000
)

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
	Transient  bool    // skip the server's notification history
	Silent     bool    // ask the server not to play its sound
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// ForTrack builds the now-playing notification for a track at a 0-based
// queue index.
func ForTrack(info *player.TrackInfo, index, total int) Notification {
	body := fmt.Sprintf("Track %d of %d", index+1, total)
	if info != nil && info.Album != "" {
		body = info.Album + "\n" + body
	}
	return Notification{
		Title:   info.DisplayName(),
		Body:    body,
		Icon:    trackIcon,
		Timeout:   trackTimeout,
		Urgency:   UrgencyLow,
		Transient: true,
		Silent:    true,
	}
}

// Nop drops every notification. It stands in when no notification server
// is reachable.
type Nop struct{}

func (Nop) Notify(Notification) (uint32, error) { return 0, nil }

func (Nop) Close(uint32) error { return nil }

// Announcer sends one notification per track change, replacing the
// previous one so they do not pile up.
type Announcer struct {
	notifier Notifier
	lastID   uint32
}

// NewAnnouncer wraps a notifier.
func NewAnnouncer(n Notifier) *Announcer {
	return &Announcer{notifier: n}
}

// TrackChanged announces the track now on the player.
func (a *Announcer) TrackChanged(info *player.TrackInfo, index, total int) error {
	n := ForTrack(info, index, total)
	n.ReplacesID = a.lastID
	id, err := a.notifier.Notify(n)
	if err != nil {
		return err
	}
	a.lastID = id
	return nil
}

// Dismiss closes the last notification, if any.
func (a *Announcer) Dismiss() error {
	if a.lastID == 0 {
		return nil
	}
	id := a.lastID
	a.lastID = 0
	return a.notifier.Close(id)
}
