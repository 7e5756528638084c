// Package version reports build information for the consolelog binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is the release version, set via ldflags.
	Version = "dev"
	// BuildDate is when the binary was built, set via ldflags.
	BuildDate string

	// Revision is the VCS revision recorded by the Go toolchain.
	Revision = revision(debug.ReadBuildInfo)
)

// String returns a one-line description of the build.
func String() string {
	s := fmt.Sprintf("consolelog %s (%s, %s %s/%s)",
		Version, Revision, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if BuildDate != "" {
		s += " built " + BuildDate
	}

	return s
}

func revision(read func() (*debug.BuildInfo, bool)) string {
	rev := "unknown"

	info, ok := read()
	if !ok {
		return rev
	}

	dirty := false

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}

	if dirty {
		return rev + "-dirty"
	}

	return rev
}
