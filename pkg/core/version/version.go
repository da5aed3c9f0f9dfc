// ============================================================================
// DateTool - Calendar Difference Calculator
// ============================================================================
//
// Package:     version
// Description: Central version and build information
// Created:     2025-12-06
// Modified:    2026-10-14
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Release version of the datetool binary
const Release = "1.0.0"

// Build metadata, set with -ldflags "-X github.com/msto63/datetool/pkg/core/version.GitCommit=..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"git_commit" yaml:"git_commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   Release,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a one-line summary, e.g. "datetool v1.0.0 (development)"
func (i Info) String() string {
	return fmt.Sprintf("datetool v%s (%s)", i.Version, i.GitCommit)
}
