package utils

import "strconv"

// ClampLimit parses a raw ?limit= value and clamps it into (0, max].
// An empty, malformed or non-positive value yields the fallback.
func ClampLimit(raw string, fallback, max int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	if n > max {
		return max
	}
	return n
}
