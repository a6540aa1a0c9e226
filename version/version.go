// Package version exposes build information stamped in at release time via
// -ldflags; it feeds the instrumentation version reported on traces.
package version

//nolint:gochecknoglobals // set at build time
var (
	Version string
	Commit  string
)
