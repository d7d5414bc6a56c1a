// Package buildinfo reports what binary is running. Release builds set the
// variables with -ldflags; other builds fall back to the Go build metadata.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is the resolved build metadata.
type Info struct {
	Version   string
	Commit    string
	Date      string
	Modified  bool
	GoVersion string
}

// Read merges the ldflags values with the embedded build info.
func Read() Info {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return Info{Version: Version, Commit: Commit, Date: Date}
	}
	return resolve(bi)
}

func resolve(bi *debug.BuildInfo) Info {
	info := Info{Version: Version, Commit: Commit, Date: Date, GoVersion: bi.GoVersion}

	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "none" {
				info.Commit = shortRevision(s.Value)
			}
		case "vcs.time":
			if info.Date == "unknown" {
				info.Date = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}

func (i Info) String() string {
	commit := i.Commit
	if i.Modified {
		commit += "-dirty"
	}
	s := fmt.Sprintf("shiprate %s (commit=%s, date=%s", i.Version, commit, i.Date)
	if i.GoVersion != "" {
		s += ", " + i.GoVersion
	}
	return s + ")"
}

func String() string {
	return Read().String()
}
