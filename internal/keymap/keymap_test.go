package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestResolve(t *testing.T) {
	km := Default()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, ActionPlayPause},
		{"n", runeKey('n'), ActionNextTrack},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, ActionNextTrack},
		{"p", runeKey('p'), ActionPrevTrack},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, ActionPrevTrack},
		{"e", runeKey('e'), ActionEject},
		{"+", runeKey('+'), ActionVolumeUp},
		{"=", runeKey('='), ActionVolumeUp},
		{"-", runeKey('-'), ActionVolumeDown},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, ActionCancel},
		{"?", runeKey('?'), ActionHelp},
		{"q", runeKey('q'), ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit},
		{"unbound", runeKey('z'), ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, km.Resolve(tt.msg))
		})
	}
}

func TestSetPlaybackEnabled(t *testing.T) {
	km := Default()
	km.SetPlaybackEnabled(false)

	assert.Equal(t, ActionNone, km.Resolve(runeKey('n')))
	assert.Equal(t, ActionNone, km.Resolve(runeKey('e')))
	assert.Equal(t, ActionVolumeUp, km.Resolve(runeKey('+')))
	assert.Equal(t, ActionQuit, km.Resolve(runeKey('q')))

	km.SetPlaybackEnabled(true)
	assert.Equal(t, ActionNextTrack, km.Resolve(runeKey('n')))
}

func TestHelp(t *testing.T) {
	km := Default()

	assert.Len(t, km.ShortHelp(), 5)

	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	assert.Equal(t, 9, total)
}
