// Package version provides version and build information for the application.
package version

import (
	"fmt"
	"runtime/debug"
)

// Linker-injected variables. Set via:
//
//	go build -ldflags "-X github.com/bttk/obsidian-cli/internal/version.Version=VALUE"
var (
	Version   = "0.1.2"
	gitCommit string
)

// Info represents version and build information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
}

// String formats Info for human-readable display.
func (i Info) String() string {
	return fmt.Sprintf("Version:    %s\nGit Commit: %s", i.Version, i.GitCommit)
}

// Get returns the populated Info struct.
func Get() Info {
	return Info{Version: Version, GitCommit: commit()}
}

// commit prefers the linker flag and falls back to the VCS stamp recorded by
// go build.
func commit() string {
	if gitCommit != "" {
		return gitCommit
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	var revision string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if revision == "" {
		return "unknown"
	}
	if dirty {
		revision += "-dirty"
	}
	return revision
}
