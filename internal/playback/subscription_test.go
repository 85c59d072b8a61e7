package playback

import (
	"testing"
	"testing/synctest"
)

func TestNewSubscription_ChannelsReadable(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sub := newSubscription()

		sub.sendState(StateChange{Current: State{Index: 1, Loaded: true}})
		sub.sendTrack(TrackChange{Index: 1})
		sub.sendError(ErrorEvent{Operation: "load"})

		if e := <-sub.StateChanged; e.Current.Index != 1 {
			t.Errorf("StateChanged.Current.Index = %d, want 1", e.Current.Index)
		}
		if tr := <-sub.TrackChanged; tr.Index != 1 {
			t.Errorf("TrackChanged.Index = %d, want 1", tr.Index)
		}
		if ev := <-sub.Error; ev.Operation != "load" {
			t.Errorf("Error.Operation = %q, want load", ev.Operation)
		}
	})
}

func TestSubscription_DropsWhenFull(t *testing.T) {
	sub := newSubscription()

	for i := range eventBufferSize + 5 {
		sub.sendTrack(TrackChange{Index: i})
	}

	if got := len(sub.TrackChanged); got != eventBufferSize {
		t.Errorf("buffered = %d, want %d", got, eventBufferSize)
	}
}

func TestSubscription_CloseSignalsDone(t *testing.T) {
	sub := newSubscription()

	sub.close()

	select {
	case <-sub.Done:
	default:
		t.Error("Done channel not closed")
	}
}
