// Package validate sanitizes the free-text inputs that feed the calendar
// generator. Both validators are total: malformed input degrades to a safe
// default instead of failing.
package validate

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// FallbackClientName is used when the sanitized client name is empty.
	FallbackClientName = "Sample Client"

	// MaxClientNameLength is the maximum length of a sanitized client name, in runes.
	MaxClientNameLength = 50

	// DefaultHorizonWeeks is used when the horizon input does not parse as an integer.
	DefaultHorizonWeeks = 4

	// MinHorizonWeeks and MaxHorizonWeeks bound the planning horizon.
	MinHorizonWeeks = 1
	MaxHorizonWeeks = 52
)

// forbiddenChars are stripped from client names. The sanitized name ends up in
// the spreadsheet title and in log lines, so anything unsafe in a file-path or
// injection context is removed outright.
const forbiddenChars = `<>:"/\|?*`

// ClientName sanitizes a raw client name: strips forbidden characters, trims
// surrounding whitespace and truncates to MaxClientNameLength runes. Inputs
// that sanitize to nothing (empty, whitespace-only, or made up entirely of
// forbidden characters) yield FallbackClientName.
func ClientName(raw string) string {
	sanitized := strings.Map(func(r rune) rune {
		if strings.ContainsRune(forbiddenChars, r) {
			return -1
		}
		return r
	}, raw)

	sanitized = strings.TrimSpace(sanitized)

	if runes := []rune(sanitized); len(runes) > MaxClientNameLength {
		sanitized = string(runes[:MaxClientNameLength])
	}

	if sanitized == "" {
		return FallbackClientName
	}

	return sanitized
}

// Horizon parses a raw horizon-in-weeks input. Unparseable input yields
// DefaultHorizonWeeks; parseable input is clamped into
// [MinHorizonWeeks, MaxHorizonWeeks].
func Horizon(raw string) int {
	weeks, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return DefaultHorizonWeeks
	}

	return max(MinHorizonWeeks, min(weeks, MaxHorizonWeeks))
}

// Filename rejects anything other than a bare file name. The credentials and
// token descriptors are resolved against the working directory; allowing path
// components would let a flag value escape it.
func Filename(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("file name must not be empty")
	}

	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("file name %q must be a bare file name without path components", name)
	}

	return nil
}
