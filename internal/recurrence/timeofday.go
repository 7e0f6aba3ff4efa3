package recurrence

import (
	"strconv"
	"strings"
)

// ParseTimeOfDay parses an "H:MM" or "HH:MM" 24-hour clock string.
//
// A malformed or out-of-range value is a recognized failure, not an error:
// ok is false and callers treat the field as missing. Empty strings,
// non-numeric components, hours outside 0-23 and minutes outside 0-59 are
// all rejected this way.
func ParseTimeOfDay(s string) (hour, minute int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	if !allDigits(parts[0]) || !allDigits(parts[1]) {
		return 0, 0, false
	}
	if len(parts[0]) < 1 || len(parts[0]) > 2 || len(parts[1]) != 2 {
		return 0, 0, false
	}

	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	if h > 23 || m > 59 {
		return 0, 0, false
	}

	return h, m, true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
