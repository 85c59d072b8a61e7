// Package stderr captures output that C audio libraries (ALSA) write
// directly to file descriptor 2, bypassing Go's os.Stderr, so it cannot
// corrupt the TUI. Captured lines go to the log; lines worth showing are
// also delivered on Messages.
package stderr

import (
	"bufio"
	"io"
	"strings"

	zlog "github.com/rs/zerolog/log"
)

// Messages receives captured stderr lines that should reach the status line.
var Messages = make(chan string, 100)

// noise are substrings of routine ALSA chatter that is logged but not shown.
var noise = []string{
	"underrun occurred",
	"snd_pcm_recover",
	"Unknown PCM",
	"Evaluate error",
}

// IsNoise reports whether a captured line is routine library chatter.
func IsNoise(line string) bool {
	for _, n := range noise {
		if strings.Contains(line, n) {
			return true
		}
	}
	return false
}

// pump reads lines from r until EOF, logging each one and forwarding
// non-noise lines to out without blocking.
func pump(r io.Reader, out chan<- string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if IsNoise(line) {
			zlog.Debug().Str("source", "stderr").Msg(line)
			continue
		}
		zlog.Warn().Str("source", "stderr").Msg(line)
		select {
		case out <- line:
		default:
			// Channel full, drop message to avoid blocking
		}
	}
}
