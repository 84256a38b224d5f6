// Package cmd holds build metadata for the tunedeck binary.
package cmd

import "fmt"

// Set via ldflags, e.g.
//
//	-X github.com/thoreinstein/tunedeck/cmd.Version=1.2.3
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// BuildInfo returns a multi-line description of the build.
func BuildInfo() string {
	return fmt.Sprintf("tunedeck version %s\n  commit: %s\n  built:  %s\n", Version, Commit, Date)
}
