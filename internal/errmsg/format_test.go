//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpIngest,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpIngest,
			err:      errors.New("permission denied"),
			expected: "Failed to read dropped files: permission denied",
		},
		{
			name:     "keeps wrapped context",
			op:       OpPlaybackStart,
			err:      errors.Wrap(errors.New("unsupported audio format"), `play "a.mp3"`),
			expected: `Failed to start playback: play "a.mp3": unsupported audio format`,
		},
		{
			name:     "config load",
			op:       OpConfigLoad,
			err:      errors.New("bad toml"),
			expected: "Failed to load config: bad toml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.op, tt.err); got != tt.expected {
				t.Errorf("Format() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpPlaybackAdvance,
			context:  "b.mp3",
			expected: "",
		},
		{
			name:     "includes context",
			op:       OpPlaybackAdvance,
			context:  "b.mp3",
			err:      errors.New("decode failed"),
			expected: "Failed to change track 'b.mp3': decode failed",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpNotify,
			err:      errors.New("no bus"),
			expected: "Failed to send notification: no bus",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatWith(tt.op, tt.context, tt.err); got != tt.expected {
				t.Errorf("FormatWith() = %q, want %q", got, tt.expected)
			}
		})
	}
}
