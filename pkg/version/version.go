// Package version exposes build metadata injected at link time.
package version

import "fmt"

// Build-time variables injected via -ldflags, e.g.
// -X github.com/modu-ai/moai-starter/pkg/version.Version=v0.3.0
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// GetVersion returns the current version string. Generated projects
// record it in their README and wrapper files.
func GetVersion() string {
	return Version
}

// GetCommit returns the build commit hash.
func GetCommit() string {
	return Commit
}

// GetDate returns the build date.
func GetDate() string {
	return Date
}

// GetFullVersion returns a formatted full version string.
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
