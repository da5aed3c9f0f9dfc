package version

import (
	"regexp"
	"runtime"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestRelease(t *testing.T) {
	if !semverRegex.MatchString(Release) {
		t.Errorf("Release %q does not match semver format (x.y.z)", Release)
	}
}

func TestGet(t *testing.T) {
	info := Get()

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"version", info.Version, Release},
		{"git commit", info.GitCommit, GitCommit},
		{"build date", info.BuildDate, BuildDate},
		{"go version", info.GoVersion, runtime.Version()},
		{"platform", info.Platform, runtime.GOOS + "/" + runtime.GOARCH},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestInfo_String(t *testing.T) {
	s := Get().String()
	if !strings.HasPrefix(s, "datetool v"+Release) {
		t.Errorf("String() = %q", s)
	}
	if !strings.Contains(s, GitCommit) {
		t.Errorf("String() = %q, missing commit", s)
	}
}
