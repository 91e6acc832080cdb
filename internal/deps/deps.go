// Package deps reports the availability of the external tools vidsync
// shells out to.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"vidsync/internal/config"
)

// Requirement defines an external binary vidsync relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a requirement.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Requirements lists the external tools for the given configuration.
// ffprobe is optional: a missing probe degrades duration matching but never
// blocks a pass.
func Requirements(cfg *config.Config) []Requirement {
	return []Requirement{
		{
			Name:        "yt-dlp",
			Command:     cfg.Tools.YtdlpBinary,
			Description: "Fetches remote channel listings and video metadata",
		},
		{
			Name:        "ffprobe",
			Command:     cfg.Tools.FFprobeBinary,
			Description: "Probes local file durations for fuzzy matching",
			Optional:    true,
		},
	}
}

// Check evaluates the provided requirements and reports availability.
func Check(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: req.Description,
			Optional:    req.Optional,
		}
		switch {
		case cmd == "":
			status.Detail = "command not configured"
		default:
			if _, err := exec.LookPath(cmd); err != nil {
				status.Detail = fmt.Sprintf("binary %q not found", cmd)
			} else {
				status.Available = true
			}
		}
		results = append(results, status)
	}
	return results
}
