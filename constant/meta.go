// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// App is the canonical application identifier used for filesystem paths and CLI branding.
	App = "statepane"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// UserAgent is the default HTTP User-Agent string used for requests made by content providers.
	UserAgent = App + "/" + Version + " (+https://github.com/statepane/statepane)"
)

// Build metadata, set with -ldflags "-X github.com/statepane/statepane/constant.Revision=...".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
