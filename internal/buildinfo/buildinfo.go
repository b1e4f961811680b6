// Package buildinfo holds build-time information like the version.
// It is a separate leaf package so anything can import it without
// introducing circular dependencies.
package buildinfo

// Set through linker flags during release builds.
var (
	Version   string = "0.0.0"
	GitCommit string
	BuiltBy   string
)
