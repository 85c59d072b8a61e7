package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/turntable/internal/player"
)

func TestUrgencyValues(t *testing.T) {
	// Urgency values follow the freedesktop notification levels
	if UrgencyLow != 0 {
		t.Errorf("UrgencyLow = %d, want 0", UrgencyLow)
	}
	if UrgencyNormal != 1 {
		t.Errorf("UrgencyNormal = %d, want 1", UrgencyNormal)
	}
	if UrgencyCritical != 2 {
		t.Errorf("UrgencyCritical = %d, want 2", UrgencyCritical)
	}
}

func TestForTrack(t *testing.T) {
	tests := []struct {
		name      string
		info      *player.TrackInfo
		wantTitle string
		wantBody  string
	}{
		{
			name:      "full tags",
			info:      &player.TrackInfo{Title: "Song", Artist: "Band", Album: "LP"},
			wantTitle: "Band - Song",
			wantBody:  "LP\nTrack 2 of 3",
		},
		{
			name:      "title only",
			info:      &player.TrackInfo{Title: "b"},
			wantTitle: "b",
			wantBody:  "Track 2 of 3",
		},
		{
			name:      "nil info",
			info:      nil,
			wantTitle: "",
			wantBody:  "Track 2 of 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := ForTrack(tt.info, 1, 3)
			assert.Equal(t, tt.wantTitle, n.Title)
			assert.Equal(t, tt.wantBody, n.Body)
			assert.Equal(t, UrgencyLow, n.Urgency)
			assert.Zero(t, n.ReplacesID)
			assert.True(t, n.Transient, "track changes stay out of the history")
			assert.True(t, n.Silent, "no sound over the music")
		})
	}
}

type recordingNotifier struct {
	sent   []Notification
	closed []uint32
	nextID uint32
	err    error
}

func (r *recordingNotifier) Notify(n Notification) (uint32, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.sent = append(r.sent, n)
	if n.ReplacesID != 0 {
		return n.ReplacesID, nil
	}
	r.nextID++
	return r.nextID, nil
}

func (r *recordingNotifier) Close(id uint32) error {
	r.closed = append(r.closed, id)
	return nil
}

func TestAnnouncer_ReplacesPrevious(t *testing.T) {
	rec := &recordingNotifier{}
	a := NewAnnouncer(rec)

	require.NoError(t, a.TrackChanged(&player.TrackInfo{Title: "a"}, 0, 2))
	require.NoError(t, a.TrackChanged(&player.TrackInfo{Title: "b"}, 1, 2))

	require.Len(t, rec.sent, 2)
	assert.Zero(t, rec.sent[0].ReplacesID)
	assert.Equal(t, uint32(1), rec.sent[1].ReplacesID)

	require.NoError(t, a.Dismiss())
	assert.Equal(t, []uint32{1}, rec.closed)

	// Second dismiss has nothing to close.
	require.NoError(t, a.Dismiss())
	assert.Len(t, rec.closed, 1)
}

func TestAnnouncer_Nop(t *testing.T) {
	a := NewAnnouncer(Nop{})

	require.NoError(t, a.TrackChanged(&player.TrackInfo{Title: "a"}, 0, 1))
	assert.NoError(t, a.Dismiss(), "nothing was shown, nothing to close")
}

func TestAnnouncer_Error(t *testing.T) {
	rec := &recordingNotifier{err: errors.New("bus gone")}
	a := NewAnnouncer(rec)

	err := a.TrackChanged(&player.TrackInfo{Title: "a"}, 0, 1)
	require.Error(t, err)
	require.NoError(t, a.Dismiss())
	assert.Empty(t, rec.closed)
}
