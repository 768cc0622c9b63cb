// Package version provides build version information for bouwlca.
package version

// version is the current release version. It is overridden at build time via
// -ldflags "-X github.com/mvandervelde/bouwlca/pkg/version.version=v1.2.3".
var version = "0.4.0-dev" //nolint:gochecknoglobals // Set via ldflags at build time.

// GetVersion returns the current bouwlca version string.
func GetVersion() string {
	return version
}
