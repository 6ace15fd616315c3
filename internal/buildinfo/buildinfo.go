// Package buildinfo exposes build metadata injected at link time.
//
// The variables are meant to be set via -ldflags, e.g.:
//
//	go build -ldflags "-X github.com/dkazarov/libkeeper/internal/buildinfo.BuildVersion=v1.0.0"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	BuildVersion = "N/A"
	BuildDate    = "N/A"
	BuildCommit  = "N/A"
)

// PrintBuildData writes the build version, date, and commit to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", BuildVersion)
	fmt.Fprintf(w, "Build date: %s\n", BuildDate)
	fmt.Fprintf(w, "Build commit: %s\n", BuildCommit)
}
