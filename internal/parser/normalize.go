package parser

import (
	"strconv"
	"strings"
	"time"
)

// timeLayout is the fixed-width combat-log timestamp pattern.
const timeLayout = "2006.01.02-15.04.05"

// parseTimestamp converts a combat-log timestamp into an instant.
// ok is false only for a non-empty string that does not match the
// pattern; an empty string is simply absent.
func parseTimestamp(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// parseFloat coerces a decimal string to a float. A missing value and an
// unparsable value both yield nil, but only the latter reports !ok so the
// caller can warn; "missing" must never silently become zero.
func parseFloat(s string) (v *float64, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, false
	}
	return &f, true
}

// parseInt is parseFloat's integer counterpart, used for team ids.
func parseInt(s string) (v *int, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, false
	}
	return &n, true
}
