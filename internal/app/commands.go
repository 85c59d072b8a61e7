package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/turntable/internal/ingest"
	"github.com/llehouerou/turntable/internal/playback"
	"github.com/llehouerou/turntable/internal/stderr"
)

// ProgressInterval is how often the progress row refreshes while playing.
const ProgressInterval = time.Second

// IngestCmd reads the dropped paths in the background until ctx is canceled.
func IngestCmd(ctx context.Context, in *ingest.Ingester, seq uint64, paths []string, cli bool) tea.Cmd {
	return func() tea.Msg {
		tracks, err := in.Ingest(ctx, paths)
		return IngestedMsg{Seq: seq, Tracks: tracks, Err: err, CLI: cli}
	}
}

// SpinTickCmd schedules the next turntable frame.
func SpinTickCmd(d time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return SpinTickMsg{Gen: gen}
	})
}

// HeartSpawnCmd schedules the next heart.
func HeartSpawnCmd(d time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return HeartSpawnMsg{Gen: gen}
	})
}

// HeartPruneCmd schedules the next prune.
func HeartPruneCmd(d time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return HeartPruneMsg{Gen: gen}
	})
}

// ProgressTickCmd schedules a progress refresh.
func ProgressTickCmd() tea.Cmd {
	return tea.Tick(ProgressInterval, func(time.Time) tea.Msg {
		return ProgressTickMsg{}
	})
}

// WatchFinished waits for the audio output to report a natural track end.
// The output sends the generation the track was started with, so the engine
// can tell whether the finish still belongs to the current track.
func WatchFinished(finished <-chan uint64) tea.Cmd {
	if finished == nil {
		return nil
	}
	return func() tea.Msg {
		return TrackFinishedMsg{Gen: <-finished}
	}
}

// WatchPlayback waits for the next engine event worth a message.
func WatchPlayback(sub *playback.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		for {
			select {
			case tc := <-sub.TrackChanged:
				return TrackChangedMsg{Change: tc}
			case <-sub.StateChanged:
				// Visual state is resynced after every engine call in Update.
			case <-sub.Error:
				// Errors are returned by the engine call itself.
			case <-sub.Done:
				return PlaybackClosedMsg{}
			}
		}
	}
}

// WatchStderr returns a command that waits for stderr output from C libraries.
func WatchStderr() tea.Cmd {
	return func() tea.Msg {
		line, ok := <-stderr.Messages
		if !ok {
			return nil // Channel closed
		}
		return StderrMsg{Line: line}
	}
}
