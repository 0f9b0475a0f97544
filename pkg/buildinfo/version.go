// Package buildinfo reports which tilegrid build is running.
//
// Release builds stamp the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/tilegrid/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/tilegrid/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/tilegrid/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Unstamped builds fall back to what the Go toolchain embedded, so
// `go install ...@v1.0.0` still reports v1.0.0 and a VCS revision.
package buildinfo

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// Set via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is the resolved build information.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

var (
	resolveOnce sync.Once
	resolved    Info
)

// Get returns ldflags values, filling unset ones from the embedded module
// and VCS metadata.
func Get() Info {
	resolveOnce.Do(func() {
		resolved = Info{Version: Version, Commit: Commit, Date: Date}
		if bi, ok := debug.ReadBuildInfo(); ok {
			resolved = fill(resolved, bi)
		}
	})
	return resolved
}

func fill(info Info, bi *debug.BuildInfo) Info {
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && info.Commit == "none":
			info.Commit = s.Value
		case s.Key == "vcs.time" && info.Date == "unknown":
			info.Date = s.Value
		}
	}
	return info
}

// Template returns the cobra version template.
func Template() string {
	i := Get()
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", i.Version, i.Commit, i.Date)
}
