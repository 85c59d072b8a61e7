// Package dropzone renders the area that accepts dropped folders and holds
// the loose record.
package dropzone

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/samber/lo"

	"github.com/llehouerou/turntable/internal/track"
	"github.com/llehouerou/turntable/internal/ui/render"
	"github.com/llehouerou/turntable/internal/ui/styles"
)

// State is the read-only projection the drop zone needs.
type State struct {
	Tracks    track.List
	Available bool
	Dragging  bool
	Ingesting bool
}

// ShowRecord reports whether the loose record is drawn in its home slot.
func (s State) ShowRecord() bool {
	return s.Available && !s.Dragging && !s.Tracks.IsEmpty()
}

// Summary is "12 tracks · 84 MB".
func Summary(l track.List) string {
	noun := "tracks"
	if l.Len() == 1 {
		noun = "track"
	}
	return fmt.Sprintf("%d %s · %s", l.Len(), noun, humanize.Bytes(uint64(max(l.TotalSize(), 0))))
}

// Formats lists the distinct content subtypes, e.g. "flac, mpeg".
func Formats(l track.List) []string {
	return lo.Uniq(lo.Map(l, func(t track.Track, _ int) string {
		_, sub, ok := strings.Cut(t.ContentType, "/")
		if !ok {
			return t.ContentType
		}
		return sub
	}))
}

// Render draws the bordered zone with its hint lines. The record itself is
// drawn by the caller at the record slot.
func Render(s State, width, height int) string {
	st := styles.T().S()
	inner := max(width-2, 0)

	var lines []string
	switch {
	case s.Ingesting:
		lines = []string{st.Title.Render("reading files…")}
	case s.Available && !s.Tracks.IsEmpty():
		hint := "drag the record to the turntable"
		if s.Dragging {
			hint = "release over the turntable"
		}
		lines = []string{
			st.Title.Render(render.Truncate(Summary(s.Tracks), inner)),
			st.Muted.Render(render.Truncate(strings.Join(Formats(s.Tracks), ", "), inner)),
			st.Subtle.Render(render.Truncate(hint, inner)),
		}
	default:
		lines = []string{
			st.Title.Render("drop a folder here"),
			st.Muted.Render(render.Truncate("or paste its path", inner)),
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return styles.DropZoneStyle(s.Dragging).
		Width(inner).
		Height(max(height-2, 0)).
		Align(lipgloss.Center).
		Render(body)
}
