// Package utils provides small helpers shared across layers.
package utils

import "time"

// DateTimeLayout is the canonical textual form for show start times,
// e.g. "2025-08-21 10:00". The core treats parsed times as exact-match
// keys; no timezone normalization happens here or downstream.
const DateTimeLayout = "2006-01-02 15:04"

// ParseDateTime parses a timestamp in the canonical layout.
func ParseDateTime(s string) (time.Time, error) {
	return time.Parse(DateTimeLayout, s)
}

// FormatDateTime renders a timestamp in the canonical layout.
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}
