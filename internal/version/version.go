// Package version carries build metadata injected at link time.
package version

// Set at build time via -ldflags, e.g.
//
//	go build -ldflags "-X github.com/domthom21/eurocodedesign/internal/version.Version=1.0.0"
var (
	// Version is the semantic version of the binary.
	Version = "0.1.0"

	// GitCommit is the git commit hash the binary was built from.
	GitCommit = "unknown"

	// BuildTime is the timestamp of the build.
	BuildTime = "unknown"
)
