// Package playerbar renders the controls, progress and now-playing rows under
// the turntable.
package playerbar

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/turntable/internal/playback"
	"github.com/llehouerou/turntable/internal/ui/render"
)

// State holds everything needed to render the rows.
type State struct {
	Loaded   bool
	Playing  bool
	Title    string
	Index    int // 0-based
	Total    int
	Position time.Duration
	Duration time.Duration
	Volume   float64
}

// NewState reads the engine. Returns a zero State (besides volume) when no
// record is loaded.
func NewState(e playback.Engine) State {
	snap := e.Snapshot()
	s := State{Volume: e.Volume()}
	if !snap.Loaded {
		return s
	}

	s.Loaded = true
	s.Playing = snap.Playing
	s.Index = snap.Index
	s.Total = len(snap.Queue)
	if cur := snap.Current(); cur != nil {
		s.Title = cur.Name
	}
	if info := e.TrackInfo(); info != nil {
		s.Title = info.DisplayName()
		s.Duration = info.Duration
		s.Position = e.Position()
	}
	return s
}

// RenderNowPlaying renders "3/12  Title" with the volume on the right.
func RenderNowPlaying(s State, width int) string {
	if !s.Loaded {
		return ""
	}
	counter := metaStyle().Render(fmt.Sprintf("%d/%d", s.Index+1, s.Total))
	vol := RenderVolumeCompact(s.Volume)

	titleWidth := max(width-lipgloss.Width(counter)-lipgloss.Width(vol)-4, 0)
	title := titleStyle().Render(render.Truncate(s.Title, titleWidth))
	return render.Row(counter+"  "+title, vol, width)
}

// RenderProgress renders the progress row, or nothing without a record.
func RenderProgress(s State, width int) string {
	if !s.Loaded {
		return ""
	}
	return RenderProgressBar(s.Position, s.Duration, width, s.Playing)
}

func formatDuration(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
