// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Kata is the canonical application identifier used for filesystem paths and CLI branding.
	Kata = "kata"

	// Version is the current application semantic version string.
	Version = "0.1.0"
)

// Build metadata, overridable at link time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
