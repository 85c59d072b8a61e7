package render

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean", "Track 01.flac", "Track 01.flac"},
		{"control chars", "a\x1b[31mb\x07", "a[31mb"},
		{"tab kept", "a\tb", "a\tb"},
		{"nbsp", "a\u00a0b", "a b"},
		{"invalid utf8", "a\xffb", "ab"},
		{"c1 control", "a\u0085b", "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"truncated", "hello world", 6, "hello…"},
		{"wide runes", "日本語テキスト", 7, "日本語…"},
		{"zero width", "hello", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.width)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, runewidth.StringWidth(got), max(tt.width, 0))
		})
	}
}

func TestFit(t *testing.T) {
	assert.Equal(t, "ab   ", Fit("ab", 5))
	assert.Equal(t, "abcd…", Fit("abcdefgh", 5))
	assert.Equal(t, 6, runewidth.StringWidth(Fit("日本語テキスト", 6)))
}

func TestCenter(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"ab", 6, "  ab  "},
		{"ab", 5, " ab  "},
		{"abcdef", 4, "abc…"},
		{"", 3, "   "},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Center(tt.input, tt.width), "Center(%q, %d)", tt.input, tt.width)
	}
}

func TestRow(t *testing.T) {
	assert.Equal(t, "1/3   vol", Row("1/3", "vol", 9))
	assert.Equal(t, "left right", Row("left", "right", 4))
}
