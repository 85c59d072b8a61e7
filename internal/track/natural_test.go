package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaturalLess(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"numeric order", "track2", "track10", true},
		{"numeric order reversed", "track10", "track2", false},
		{"case insensitive", "Alpha.mp3", "beta.mp3", true},
		{"case insensitive reversed", "beta.mp3", "ALPHA.mp3", false},
		{"letters before digits", "b.mp3", "2.mp3", true},
		{"digits after letters", "10.mp3", "a.mp3", false},
		{"prefix first", "track", "track2", true},
		{"leading zeros numeric", "track02", "track10", true},
		{"padding breaks ties", "track2", "track02", true},
		{"identical", "same.mp3", "same.mp3", false},
		{"huge numbers do not overflow", "99999999999999999999999.mp3", "100000000000000000000000.mp3", true},
		{"arabic-indic digits by value", "track\u0662", "track10", true},
		{"arabic-indic zero padding trimmed", "track\u0660\u0662", "track10", true},
		{"arabic-indic ten after nine", "track\u0661\u0660", "track9", false},
		{"mixed scripts in one run", "track1\u0660", "track9", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NaturalLess(tt.a, tt.b))
		})
	}
}

func TestList_Sorted(t *testing.T) {
	l := List{
		{Name: "b.mp3", Handle: "/m/b.mp3"},
		{Name: "a.mp3", Handle: "/m/a.mp3"},
		{Name: "10.mp3", Handle: "/m/10.mp3"},
		{Name: "2.mp3", Handle: "/m/2.mp3"},
	}

	sorted := l.Sorted()

	assert.Equal(t, []string{"a.mp3", "b.mp3", "2.mp3", "10.mp3"}, sorted.Names())
	assert.Equal(t, "b.mp3", l[0].Name, "Sorted must not mutate the receiver")
}

func TestList_Sorted_TiesBrokenByHandle(t *testing.T) {
	l := List{
		{Name: "song.mp3", Handle: "/z/song.mp3"},
		{Name: "song.mp3", Handle: "/a/song.mp3"},
	}

	sorted := l.Sorted()

	assert.Equal(t, "/a/song.mp3", sorted[0].Handle)
	assert.Equal(t, "/z/song.mp3", sorted[1].Handle)
}

func TestList_At(t *testing.T) {
	l := List{{Name: "one"}, {Name: "two"}}

	assert.Equal(t, "two", l.At(1).Name)
	assert.Nil(t, l.At(2))
	assert.Nil(t, l.At(-1))
	assert.True(t, List{}.IsEmpty())
}

func TestList_TotalSize(t *testing.T) {
	l := List{{Size: 100}, {Size: 250}}
	assert.Equal(t, int64(350), l.TotalSize())
}
