// Package version reports which repoextract build produced an output file.
// The values are stamped by the release build; a plain `go build` reports
// "dev".
package version

import (
	"fmt"
	"runtime"
)

// Stamped with -ldflags, for example:
//
//	go build -ldflags "-X repoextract/pkg/version.Version=0.4.0 -X repoextract/pkg/version.Commit=$(git rev-parse --short HEAD)"
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// AppName is the binary name used in logs, help and version output.
const AppName = "repoextract"

// Info is the build description logged as appVersion and printed by
// `repoextract version`.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string // GOOS/GOARCH
}

// Get collects the stamped values and the running toolchain.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders the one-line form, e.g.
// "repoextract version 0.4.0 (commit: 1a2b3c4) built at 2026-03-02T10:00:00Z with go1.25.5 on linux/amd64".
func (i Info) String() string {
	return fmt.Sprintf("%s version %s (commit: %s) built at %s with %s on %s",
		AppName, i.Version, i.GitCommit, i.BuildTime, i.GoVersion, i.Platform)
}
