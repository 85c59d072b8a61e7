// Package keymap defines key bindings for the application.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap holds every binding of the widget. It implements help.KeyMap.
type KeyMap struct {
	PlayPause  key.Binding
	Next       key.Binding
	Prev       key.Binding
	Eject      key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding
	Cancel     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// Default returns the standard bindings.
func Default() KeyMap {
	return KeyMap{
		PlayPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play/pause"),
		),
		Next: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n/→", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("p", "left"),
			key.WithHelp("p/←", "previous"),
		),
		Eject: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "eject"),
		),
		VolumeUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "volume up"),
		),
		VolumeDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "volume down"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel drag"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SetPlaybackEnabled enables or disables the bindings that need a record
// on the player, so help only lists what currently works.
func (k *KeyMap) SetPlaybackEnabled(enabled bool) {
	k.PlayPause.SetEnabled(enabled)
	k.Next.SetEnabled(enabled)
	k.Prev.SetEnabled(enabled)
	k.Eject.SetEnabled(enabled)
}

// Resolve returns the action bound to a key press, or ActionNone.
// Disabled bindings never match.
func (k KeyMap) Resolve(msg tea.KeyMsg) Action {
	switch {
	case key.Matches(msg, k.Quit):
		return ActionQuit
	case key.Matches(msg, k.Help):
		return ActionHelp
	case key.Matches(msg, k.Cancel):
		return ActionCancel
	case key.Matches(msg, k.PlayPause):
		return ActionPlayPause
	case key.Matches(msg, k.Next):
		return ActionNextTrack
	case key.Matches(msg, k.Prev):
		return ActionPrevTrack
	case key.Matches(msg, k.Eject):
		return ActionEject
	case key.Matches(msg, k.VolumeUp):
		return ActionVolumeUp
	case key.Matches(msg, k.VolumeDown):
		return ActionVolumeDown
	}
	return ActionNone
}

// ShortHelp returns bindings shown in the collapsed help footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PlayPause, k.Next, k.Prev, k.Help, k.Quit}
}

// FullHelp returns bindings shown in the expanded help footer.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PlayPause, k.Next, k.Prev, k.Eject},
		{k.VolumeUp, k.VolumeDown, k.Cancel},
		{k.Help, k.Quit},
	}
}
