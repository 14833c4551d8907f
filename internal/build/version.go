// Package build provides version and build information for notifier.
// It has no dependencies on other internal packages.
package build

import (
	"fmt"
	"runtime"
)

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// IsDevBuild returns true if running a development build (not a release).
func IsDevBuild() bool {
	return Version == "dev"
}

// Info renders the version block printed by --version.
func Info() string {
	return fmt.Sprintf("notifier %s\ncommit: %s\nbuilt: %s\ngo: %s\nplatform: %s/%s\n",
		Version, Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
