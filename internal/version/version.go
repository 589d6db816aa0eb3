// Package version exposes build metadata, set through -ldflags at release time.
package version

var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
)
