package player

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gabriel-vasile/mimetype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelToVolume(t *testing.T) {
	tests := []struct {
		level float64
		want  float64
	}{
		{1.0, 0},
		{1.5, 0},
		{0.5, -1},
		{0.25, -2},
		{0, silentVolume},
		{-1, silentVolume},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, levelToVolume(tt.level), 1e-9, "level %v", tt.level)
	}
}

func TestSetVolume_ClampsWithoutSource(t *testing.T) {
	p := New()

	p.SetVolume(2)
	assert.InDelta(t, 1.0, p.Volume(), 1e-9)

	p.SetVolume(-0.3)
	assert.InDelta(t, 0.0, p.Volume(), 1e-9)

	p.SetVolume(0.4)
	assert.InDelta(t, 0.4, p.Volume(), 1e-9)
}

func TestDecoderFor(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    string
		wantErr bool
	}{
		{"mp3 with id3", append([]byte("ID3\x04\x00\x00"), make([]byte, 64)...), "audio/mpeg", false},
		{"flac", append([]byte("fLaC\x00\x00\x00\x22"), make([]byte, 64)...), "audio/flac", false},
		{"wav", append([]byte("RIFF\x24\x00\x00\x00WAVEfmt "), make([]byte, 64)...), "audio/wav", false},
		{"plain text", []byte("just some notes about the album"), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec, err := decoderFor(mimetype.Detect(tt.data))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnsupportedFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, dec.contentType)
		})
	}
}

func TestSniff_Rewinds(t *testing.T) {
	r := bytes.NewReader(append([]byte("fLaC\x00\x00\x00\x22"), make([]byte, 32)...))

	mt, err := sniff(r)
	require.NoError(t, err)
	assert.True(t, mt.Is("audio/flac"))

	head := make([]byte, 4)
	_, err = r.Read(head)
	require.NoError(t, err)
	assert.Equal(t, "fLaC", string(head))
}

func TestSupportedContentTypes(t *testing.T) {
	assert.Equal(t,
		[]string{"audio/mpeg", "audio/flac", "audio/wav", "audio/ogg"},
		SupportedContentTypes(),
	)
}

func TestPlay_Errors(t *testing.T) {
	dir := t.TempDir()
	notes := filepath.Join(dir, "notes.mp3")
	require.NoError(t, os.WriteFile(notes, []byte("not audio at all"), 0o644))

	p := New()

	err := p.Play(filepath.Join(dir, "missing.mp3"), 1)
	require.Error(t, err)
	assert.Equal(t, Stopped, p.State())

	err = p.Play(notes, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	assert.Equal(t, Stopped, p.State())
	assert.Nil(t, p.TrackInfo())
}

func TestReadTrackInfo_FallsBackToFileName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "02 Side B.flac")
	require.NoError(t, os.WriteFile(path, []byte("untagged"), 0o644))

	info := ReadTrackInfo(path)

	assert.Equal(t, "02 Side B", info.Title)
	assert.Equal(t, "02 Side B", info.DisplayName())
	assert.Empty(t, info.Artist)
}

func TestTrackInfo_DisplayName(t *testing.T) {
	var nilInfo *TrackInfo
	assert.Empty(t, nilInfo.DisplayName())

	info := &TrackInfo{Title: "Song", Artist: "Band"}
	assert.Equal(t, "Band - Song", info.DisplayName())
}
