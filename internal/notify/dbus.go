//go:build linux

package notify

import (
	"github.com/cockroachdb/errors"
	"github.com/godbus/dbus/v5"
	zlog "github.com/rs/zerolog/log"
)

const (
	busName      = "org.freedesktop.Notifications"
	busPath      = "/org/freedesktop/Notifications"
	busInterface = "org.freedesktop.Notifications"
)

// busNotifier talks to the session notification server.
type busNotifier struct {
	obj dbus.BusObject
}

// New connects to the session bus. Without one, track changes are simply
// not announced: Nop is returned and no error.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		zlog.Debug().Err(err).Msg("no session bus, track notifications off")
		return Nop{}, nil //nolint:nilerr // announcements are optional
	}
	return &busNotifier{obj: conn.Object(busName, busPath)}, nil
}

// hints maps a notification onto the freedesktop hint dictionary.
func hints(n Notification) map[string]dbus.Variant {
	h := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(n.Urgency)),
		"desktop-entry": dbus.MakeVariant(appID),
	}
	if n.Transient {
		h["transient"] = dbus.MakeVariant(true)
	}
	if n.Silent {
		h["suppress-sound"] = dbus.MakeVariant(true)
	}
	return h
}

// Notify calls Notify(app_name, replaces_id, app_icon, summary, body,
// actions, hints, expire_timeout) and returns the server's id.
func (b *busNotifier) Notify(n Notification) (uint32, error) {
	call := b.obj.Call(busInterface+".Notify", 0,
		appName, n.ReplacesID, n.Icon, n.Title, n.Body,
		[]string{}, hints(n), n.Timeout,
	)
	if call.Err != nil {
		return 0, errors.Wrapf(call.Err, "notify %q", n.Title)
	}
	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, errors.Wrap(err, "read notification id")
	}
	return id, nil
}

func (b *busNotifier) Close(id uint32) error {
	if err := b.obj.Call(busInterface+".CloseNotification", 0, id).Err; err != nil {
		return errors.Wrapf(err, "close notification %d", id)
	}
	return nil
}
