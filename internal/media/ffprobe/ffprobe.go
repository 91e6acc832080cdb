package ffprobe

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// DefaultTimeout bounds a single probe invocation.
const DefaultTimeout = 10 * time.Second

// Probe executes ffprobe against local media files to extract durations.
type Probe struct {
	binary  string
	timeout time.Duration
}

// New creates a Probe. An empty binary falls back to "ffprobe" on PATH; a
// non-positive timeout falls back to DefaultTimeout.
func New(binary string, timeout time.Duration) *Probe {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Probe{binary: binary, timeout: timeout}
}

// Duration returns the container duration of the file at path in seconds.
// ok is false when the duration could not be determined for any reason:
// missing binary, timeout, non-zero exit, or unparsable output. It never
// returns an error; absence of a duration degrades matching gracefully.
func (p *Probe) Duration(ctx context.Context, path string) (float64, bool) {
	if strings.TrimSpace(path) == "" {
		return 0, false
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, p.binary,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "csv=p=0",
		"--", path)
	output, err := cmd.Output()
	if err != nil {
		return 0, false
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil || seconds <= 0 {
		return 0, false
	}
	return seconds, true
}
