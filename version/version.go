// Package version records build metadata injected at link time.
package version

var (
	// Version is the release tag, or "dev" for local builds.
	Version = "dev"
	// Commit is the git commit hash the binary was built from.
	Commit = ""
	// Date is the build timestamp.
	Date = ""
)
