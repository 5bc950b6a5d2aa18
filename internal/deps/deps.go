// Package deps reports availability of the external tools the
// conversion pipeline shells out to.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"cuepress/internal/config"
)

// Requirement defines an external dependency cuepress relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Requirements returns the tool set for the configured binaries.
// ffmpeg is optional: it is only exercised when an APE source needs
// decoding before the split.
func Requirements(cfg *config.Config) []Requirement {
	return []Requirement{
		{Name: "LAME", Command: cfg.Tools.Lame, Description: "MP3 encoder"},
		{Name: "shnsplit", Command: cfg.Tools.Shnsplit, Description: "CUE-aware track splitter (shntool)"},
		{Name: "cueprint", Command: cfg.Tools.Cueprint, Description: "CUE sheet metadata reader (cuetools)"},
		{Name: "ffmpeg", Command: cfg.Tools.FFmpeg, Description: "APE to WAV decoder", Optional: true},
	}
}

// CheckBinaries evaluates the provided requirements and reports
// availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

// MissingRequired returns the names of required tools that are not
// available. A non-empty result is fatal for a conversion run.
func MissingRequired(statuses []Status) []string {
	var missing []string
	for _, status := range statuses {
		if !status.Available && !status.Optional {
			missing = append(missing, status.Name)
		}
	}
	return missing
}
