// Package buildinfo holds the build metadata of the xbwd binary.
package buildinfo

import (
	"strings"

	"golang.org/x/mod/semver"
)

// ServerName is the name the server reports about itself.
const ServerName = "xbwd"

// These variables are set at build time via -ldflags.
var (
	date        string
	goVersion   string
	shortCommit string
	version     string
)

// fallbackVersion is reported by builds which were not stamped with a valid
// semantic version.
const fallbackVersion = "0.0.0-devel"

// VersionString returns the semantic version of this build, without a leading
// "v".
func VersionString() string {
	v := strings.TrimSpace(version)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fallbackVersion
	}
	return strings.TrimPrefix(v, "v")
}

// Details returns the commit, Go version and build date of this build. Empty
// values are reported as "unknown".
func Details() (string, string, string) {
	return orUnknown(shortCommit), orUnknown(goVersion), orUnknown(date)
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
