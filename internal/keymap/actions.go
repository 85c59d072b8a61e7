package keymap

// Action represents a user-triggerable action.
type Action string

const (
	ActionNone Action = ""

	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Playback actions
	ActionPlayPause  Action = "play_pause"
	ActionNextTrack  Action = "next_track"
	ActionPrevTrack  Action = "prev_track"
	ActionEject      Action = "eject"
	ActionVolumeUp   Action = "volume_up"
	ActionVolumeDown Action = "volume_down"

	// Drag actions
	ActionCancel Action = "cancel"
)
