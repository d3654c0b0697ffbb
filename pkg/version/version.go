// Package version exposes the build version of the more binary.
package version

// version is overridden at build time:
//
//	go build -ldflags "-X github.com/rshade/more/pkg/version.version=v1.0.0"
//
//nolint:gochecknoglobals // Set via ldflags
var version = "dev"

// GetVersion returns the build version, or "dev" for untagged builds.
func GetVersion() string {
	return version
}
