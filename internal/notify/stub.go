//go:build !linux

package notify

// New returns Nop: track announcements need the freedesktop notification
// bus, which only Linux desktops provide.
func New() (Notifier, error) {
	return Nop{}, nil
}
