// Package version carries build-time version information.
package version

// Set at build time via -ldflags "-X timelane/internal/version.Version=...".
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)
