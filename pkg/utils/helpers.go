package utils

import (
	"strconv"
	"strings"
)

// ParseValue converts a raw cell string into a typed value.
// Tries int first, then float, and falls back to the trimmed string.
func ParseValue(s string) interface{} {
	// Trim whitespace first
	s = strings.TrimSpace(s)

	// try int
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	// try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// ParseNumber converts supported cell values to float64.
// String parsing is deliberately permissive: a leading numeric prefix is
// consumed, so "123abc" parses as 123. Returns false when no numeric
// prefix exists at all.
func ParseNumber(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case string:
		return parseNumericPrefix(strings.TrimSpace(val))
	default:
		return 0, false
	}
}

// parseNumericPrefix scans the longest prefix of s that forms a valid
// floating point literal (sign, digits, one decimal point, optional
// exponent) and parses it.
func parseNumericPrefix(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}

	i := 0
	if s[i] == '+' || s[i] == '-' {
		i++
	}

	digits := 0
	seenDot := false
	for i < len(s) {
		c := s[i]
		if c >= '0' && c <= '9' {
			digits++
			i++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			i++
			continue
		}
		break
	}
	if digits == 0 {
		return 0, false
	}

	// Optional exponent, only consumed when at least one digit follows.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expDigits := 0
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			expDigits++
			j++
		}
		if expDigits > 0 {
			i = j
		}
	}

	f, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
