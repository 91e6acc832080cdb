// Package ffprobe provides a bounded wrapper around the ffprobe binary for
// extracting container durations.
//
// Duration is an optional confidence signal for identity resolution, so the
// probe is deliberately forgiving: any failure mode (missing binary, timeout,
// non-zero exit, garbage output) yields "unknown" rather than an error.
//
// Primary entry point:
//   - Probe.Duration: executes ffprobe and returns the duration in seconds
//     with an ok flag
package ffprobe
