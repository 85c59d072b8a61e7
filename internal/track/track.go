// Package track defines the immutable track value produced by ingestion and
// consumed by the playback engine.
package track

import (
	"slices"
	"strings"
)

// Track is a single playable audio file.
// Handle is the absolute path and identifies the track within a List.
type Track struct {
	Name        string
	Handle      string
	ContentType string
	Size        int64
}

// List is an ordered sequence of tracks; order is playback order.
type List []Track

// Len returns the number of tracks.
func (l List) Len() int { return len(l) }

// IsEmpty returns true if the list holds no tracks.
func (l List) IsEmpty() bool { return len(l) == 0 }

// At returns the track at index i, or nil if out of range.
func (l List) At(i int) *Track {
	if i < 0 || i >= len(l) {
		return nil
	}
	t := l[i]
	return &t
}

// Names returns the track names in list order.
func (l List) Names() []string {
	names := make([]string, len(l))
	for i, t := range l {
		names[i] = t.Name
	}
	return names
}

// TotalSize returns the summed size of all tracks in bytes.
func (l List) TotalSize() int64 {
	var total int64
	for _, t := range l {
		total += t.Size
	}
	return total
}

// Sorted returns a sorted copy of the list. Names are compared with
// NaturalLess; equal names fall back to the handle so the order is total.
func (l List) Sorted() List {
	out := slices.Clone(l)
	slices.SortStableFunc(out, func(a, b Track) int {
		switch {
		case NaturalLess(a.Name, b.Name):
			return -1
		case NaturalLess(b.Name, a.Name):
			return 1
		default:
			return strings.Compare(a.Handle, b.Handle)
		}
	})
	return out
}
