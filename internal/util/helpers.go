package util

import (
	"strconv"
	"strings"
	"unicode"
)

// Clamp constrains a value to a range.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ParseLeadingInt reads an optionally signed run of digits at the start of s,
// after leading whitespace, and ignores anything that follows ("25min" is 25).
// ok is false when no digits are present or the value overflows.
func ParseLeadingInt(s string) (n int, ok bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return v, true
}

// BoolString formats b the way the settings table stores flags.
func BoolString(b bool) string {
	return strconv.FormatBool(b)
}
