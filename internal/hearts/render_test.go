package hearts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/turntable/internal/ui/testutil"
)

func TestGlyphs_FallAndDrift(t *testing.T) {
	e := newTestEmitter(DefaultConfig())
	e.hearts = []Heart{{StartX: 50, DriftX: 20, Size: 30, Duration: 4 * time.Second, Born: epoch}}

	start := e.Glyphs(101, 11, epoch)
	require.Len(t, start, 1)
	assert.Equal(t, 50, start[0].X)
	assert.Equal(t, 0, start[0].Y)
	assert.Equal(t, "♥", testutil.StripANSI(start[0].Text))

	mid := e.Glyphs(101, 11, epoch.Add(2*time.Second))
	require.Len(t, mid, 1)
	assert.Equal(t, 60, mid[0].X)
	assert.Equal(t, 5, mid[0].Y)

	end := e.Glyphs(101, 11, epoch.Add(10*time.Second))
	require.Len(t, end, 1)
	assert.Equal(t, 70, end[0].X)
	assert.Equal(t, 10, end[0].Y)
}

func TestGlyphs_SkipsOffscreen(t *testing.T) {
	e := newTestEmitter(DefaultConfig())
	e.hearts = []Heart{{StartX: 5, DriftX: -40, Size: 16, Duration: time.Second, Born: epoch}}

	assert.Empty(t, e.Glyphs(40, 10, epoch.Add(time.Second)))
	assert.Nil(t, e.Glyphs(0, 10, epoch))
}

func TestGlyphFor(t *testing.T) {
	tests := []struct {
		size int
		want string
	}{
		{16, "·"},
		{20, "·"},
		{21, "♡"},
		{26, "♡"},
		{27, "♥"},
		{31, "♥"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, glyphFor(tt.size), "size %d", tt.size)
	}
}
