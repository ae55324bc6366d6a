package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical date format across the CLI and the store.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string at the input boundary. An empty
// string is a valid "no date" and returns nil with no error; anything
// else either parses or reports why it didn't.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return &t, nil
}

// ParseDurationDays parses a duration-in-days input. Malformed, empty, or
// negative input degrades to zero and the result is clamped to the
// MinStageDuration floor; it never fails.
func ParseDurationDays(s string) float64 {
	d, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || d < 0 {
		d = 0
	}
	if d < MinStageDuration {
		return MinStageDuration
	}
	return d
}

// SameDay reports whether two times fall on the same calendar day,
// ignoring the time of day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Midnight truncates a time to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
