// Package version exposes build-time version information.
package version

import "fmt"

// Overridden during build with ldflags, e.g.
//
//	go build -ldflags="-X 'github.com/guardrail-dev/guardrail/pkg/version.Version=1.0.0'"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns a single-line human-readable version string.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
