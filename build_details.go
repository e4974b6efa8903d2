package oasdraft

import (
	"fmt"
	"runtime"
)

var (
	// version, commit and buildTime are set via ldflags for release builds.
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Version returns the compiled version or "dev" if run from source.
func Version() string {
	return version
}

// Commit returns the git commit the binary was built from, or "unknown".
func Commit() string {
	return commit
}

// BuildTime returns the RFC3339 build timestamp, or "unknown".
func BuildTime() string {
	return buildTime
}

// GoVersion returns the Go version the binary was built with.
func GoVersion() string {
	return runtime.Version()
}

// UserAgent returns the implementation name reported to MCP clients.
func UserAgent() string {
	return fmt.Sprintf("oasdraft/%s", version)
}
