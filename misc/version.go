// Package misc provides build time metadata for the rest of the program.
package misc

import "runtime/debug"

// Normally set by the build system via ldflags.
var (
	appName = "genlist"
	version = ""
	gitHash = ""
)

// GetAppName returns short program name used for logs, reports and generated
// header comment.
func GetAppName() string {
	return appName
}

// GetVersion returns program version set at build time, falling back to
// module build info when building without the task file.
func GetVersion() string {
	if len(version) > 0 {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && len(bi.Main.Version) > 0 {
		return bi.Main.Version
	}
	return "unknown"
}

// GetGitHash returns VCS revision the program was built from.
func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
