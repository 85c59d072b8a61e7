package track

import (
	"strings"
	"unicode"
)

// NaturalLess reports whether a sorts before b using a case-insensitive,
// numeric-aware comparison: "track2" < "track10".
//
// Names are compared run by run. Digit runs compare by numeric value, text
// runs compare case-folded, and at the same position a text run sorts before
// a digit run ("b.mp3" < "2.mp3").
func NaturalLess(a, b string) bool {
	return naturalCompare(a, b) < 0
}

func naturalCompare(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	i, j := 0, 0
	for i < len(ra) && j < len(rb) {
		da, db := unicode.IsDigit(ra[i]), unicode.IsDigit(rb[j])
		switch {
		case da && db:
			ei := runEnd(ra, i, true)
			ej := runEnd(rb, j, true)
			if c := compareDigits(ra[i:ei], rb[j:ej]); c != 0 {
				return c
			}
			i, j = ei, ej
		case da:
			return 1
		case db:
			return -1
		default:
			ei := runEnd(ra, i, false)
			ej := runEnd(rb, j, false)
			if c := strings.Compare(fold(ra[i:ei]), fold(rb[j:ej])); c != 0 {
				return c
			}
			i, j = ei, ej
		}
	}
	switch {
	case len(ra)-i < len(rb)-j:
		return -1
	case len(ra)-i > len(rb)-j:
		return 1
	}
	// Equal ignoring case; keep the comparison deterministic.
	return strings.Compare(a, b)
}

func runEnd(r []rune, start int, digits bool) int {
	end := start
	for end < len(r) && unicode.IsDigit(r[end]) == digits {
		end++
	}
	return end
}

// compareDigits compares two digit runs numerically without overflow.
// Digits of any script count by value, so "٢" equals "2". Equal values with
// different zero padding sort shorter first.
func compareDigits(a, b []rune) int {
	ta, tb := trimZeros(a), trimZeros(b)
	if len(ta) != len(tb) {
		if len(ta) < len(tb) {
			return -1
		}
		return 1
	}
	for k := range ta {
		va, vb := digitValue(ta[k]), digitValue(tb[k])
		if va != vb {
			if va < vb {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func trimZeros(r []rune) []rune {
	for len(r) > 1 && digitValue(r[0]) == 0 {
		r = r[1:]
	}
	return r
}

// digitValue returns the value of a decimal digit. Decimal digits come in
// contiguous runs of ten starting at zero, so the offset into the unicode.Nd
// range gives the value.
func digitValue(r rune) int {
	if r >= '0' && r <= '9' {
		return int(r - '0')
	}
	for _, rg := range unicode.Nd.R16 {
		if lo := rune(rg.Lo); r >= lo && r <= rune(rg.Hi) {
			return int(r-lo) % 10
		}
	}
	for _, rg := range unicode.Nd.R32 {
		if lo := rune(rg.Lo); r >= lo && r <= rune(rg.Hi) {
			return int(r-lo) % 10
		}
	}
	return -1
}

func fold(r []rune) string {
	return strings.ToLower(string(r))
}
