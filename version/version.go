package version

import (
	"runtime/debug"
	"strings"
)

// Version can be set at build time using something like:
// go build -ldflags "-X github.com/vsariola/gramocut/version.Version=$(git describe --dirty)"
var Version string

// Hash is the short vcs revision the binary was built from, with a "-dirty"
// suffix for modified trees. Empty if the build carries no vcs info.
var Hash = func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value[:min(7, len(setting.Value))]
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if revision != "" && modified {
		return revision + "-dirty"
	}
	return revision
}()

var VersionOrHash = func() string {
	if Version != "" {
		return Version
	}
	return Hash
}()

// Describe returns e.g. "gramocut v0.3.0", or just the program name when the
// build has no version information.
func Describe(program string) string {
	return strings.TrimSpace(program + " " + VersionOrHash)
}
