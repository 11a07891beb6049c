// Package version exposes build metadata injected with -ldflags at link time.
package version

// Build metadata. Override with:
//
//	go build -ldflags "-X github.com/oshokin/utilkit/internal/version.Version=1.2.3 ..."
//
//nolint:gochecknoglobals // Set by the linker.
var (
	// Version is the semantic version of the build.
	Version = "0.1.0"
	// Commit is the VCS revision of the build.
	Commit = "none"
	// BuildTime is the time the binary was built.
	BuildTime = "unknown"
)

// Short returns the version number.
func Short() string {
	return Version
}

// Full returns the version, commit and build time.
func Full() string {
	return "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
}
