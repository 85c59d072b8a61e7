package ingest

import (
	"net/url"
	"strings"
)

// ParseDrop extracts paths from the text a terminal pastes when files are
// dropped onto it. Terminals differ: some paste quoted paths, some escape
// spaces with backslashes, some paste file:// URIs one per line.
func ParseDrop(text string) []string {
	var (
		paths   []string
		cur     strings.Builder
		quote   rune
		escaped bool
		inToken bool
	)

	flush := func() {
		if inToken {
			if p := normalize(cur.String()); p != "" {
				paths = append(paths, p)
			}
		}
		cur.Reset()
		inToken = false
	}

	for _, r := range text {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '\\':
			escaped = true
			inToken = true
		case r == '\'' || r == '"':
			quote = r
			inToken = true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			flush()
		default:
			cur.WriteRune(r)
			inToken = true
		}
	}
	flush()

	return paths
}

func normalize(p string) string {
	if !strings.HasPrefix(p, "file://") {
		return p
	}
	u, err := url.Parse(p)
	if err != nil {
		return ""
	}
	return u.Path
}
