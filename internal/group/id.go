package group

import (
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

// pathID is a group ID read from a URL segment.
// A segment without a numeric prefix is NaN and matches no group.
type pathID struct {
	value int64
	text  string
	valid bool
}

func (p pathID) String() string {
	return p.text
}

// parseID reads the leading integer of s. Leading whitespace and an optional
// sign are accepted, a 0x prefix selects hexadecimal, and anything after the
// digits is ignored, so "12abc" is 12 and "abc" is NaN.
func parseID(s string) pathID {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = "-"
		}
		s = s[1:]
	}

	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end], base) {
		end++
	}
	if end == 0 {
		return pathID{text: "NaN"}
	}
	digits := sign + s[:end]

	value, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		// out of int64 range: no group can have this ID
		n, _ := new(big.Int).SetString(digits, base)
		return pathID{text: n.String()}
	}

	return pathID{value: value, text: strconv.FormatInt(value, 10), valid: true}
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && c >= 'a' && c <= 'f':
		return true
	case base == 16 && c >= 'A' && c <= 'F':
		return true
	}
	return false
}
