// Package mpris exposes the player on the session bus so desktop media
// keys and applets can control it.
package mpris

// Command is a transport request received over MPRIS.
type Command int

const (
	CommandPlayPause Command = iota
	CommandPlay
	CommandPause
	CommandStop
	CommandNext
	CommandPrevious
)

func (c Command) String() string {
	switch c {
	case CommandPlayPause:
		return "PlayPause"
	case CommandPlay:
		return "Play"
	case CommandPause:
		return "Pause"
	case CommandStop:
		return "Stop"
	case CommandNext:
		return "Next"
	case CommandPrevious:
		return "Previous"
	}
	return "Unknown"
}

// Dispatcher delivers a command to the UI loop. Commands never touch the
// engine directly, so every transition still goes through the UI update.
type Dispatcher func(Command)
