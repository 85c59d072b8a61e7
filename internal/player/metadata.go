package player

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
)

// TrackInfo describes the track bound to the output.
type TrackInfo struct {
	Path        string
	Title       string
	Artist      string
	Album       string
	ContentType string
	SampleRate  int
	Duration    time.Duration
}

// DisplayName is "Artist - Title" when an artist tag exists, else the title.
func (t *TrackInfo) DisplayName() string {
	if t == nil {
		return ""
	}
	if t.Artist == "" {
		return t.Title
	}
	return t.Artist + " - " + t.Title
}

// ReadTrackInfo reads the tags of path. Files without readable tags get the
// file name (without extension) as title; it never returns nil.
func ReadTrackInfo(path string) *TrackInfo {
	info := &TrackInfo{
		Path:  path,
		Title: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
	}

	f, err := os.Open(path)
	if err != nil {
		return info
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return info
	}
	if title := strings.TrimSpace(m.Title()); title != "" {
		info.Title = title
	}
	info.Artist = strings.TrimSpace(m.Artist())
	info.Album = strings.TrimSpace(m.Album())
	return info
}
