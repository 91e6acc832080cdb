package main

import (
	"fmt"
	"time"
)

const timePrecision = time.Millisecond

// formatSeconds renders an optional duration in seconds as mm:ss (or
// h:mm:ss past the hour), "-" when unknown.
func formatSeconds(seconds *float64) string {
	if seconds == nil {
		return "-"
	}
	total := int(*seconds + 0.5)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
