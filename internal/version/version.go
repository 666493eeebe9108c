// Package version exposes the build version of the nucent binary.
package version

// version is overridden at build time via -ldflags.
var version = "0.1.0"

// GetVersion returns the current version string.
func GetVersion() string {
	return version
}
