// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package numeric turns loosely formatted user and catalog strings into
// numbers. Every function states its fallback explicitly; nothing panics
// or guesses.
package numeric

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatError reports a string whose cleaned form is not a valid number,
// typically because it holds more than one decimal point.
type FormatError struct {
	Input   string
	Cleaned string
	Err     error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed number %q (cleaned %q): %v", e.Input, e.Cleaned, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Clean drops every character that is not an ASCII digit or '.'.
// Repeated decimal points are kept.
func Clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || c == '.' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// NormalizePrice cleans s and parses the remainder. A string with nothing
// left after cleaning is 0. "$20,000" is 20000; "1.2.3" is a *FormatError.
func NormalizePrice(s string) (float64, error) {
	cleaned := Clean(s)
	if cleaned == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, &FormatError{Input: s, Cleaned: cleaned, Err: err}
	}
	return v, nil
}

// ParseThreshold reads a user-supplied price ceiling. ok is false when the
// string is blank, contains no digits, or is malformed; callers then apply
// no price constraint at all.
func ParseThreshold(s string) (v float64, ok bool) {
	if strings.TrimSpace(s) == "" || !strings.ContainsAny(s, "0123456789") {
		return 0, false
	}
	v, err := NormalizePrice(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FloatOr parses s as a float, returning def when s is blank, malformed,
// or not finite.
func FloatOr(s string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

// IntOr parses s as a base-10 integer, returning def when s is blank or
// malformed.
func IntOr(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}
