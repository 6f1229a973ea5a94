package version

import (
	"fmt"
	"io"
	"runtime/debug"
	"sync"
)

// Set with -ldflags "-X". Empty or placeholder values fall back to build info.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

const modulePath = "github.com/dendrascience/dendra-fileio"

// Info describes the running build.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	Module    string `json:"module"`
	GoVersion string `json:"go_version"`
}

var buildInfo = sync.OnceValue(func() *debug.BuildInfo {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	return info
})

func setting(key string) string {
	info := buildInfo()
	if info == nil {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}

// GetVersion returns the release version, or "development" for local builds.
func GetVersion() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if info := buildInfo(); info != nil && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "development"
}

// GetCommit returns the VCS revision the binary was built from.
func GetCommit() string {
	if Commit != "unknown" && Commit != "" {
		return Commit
	}
	if rev := setting("vcs.revision"); rev != "" {
		return rev
	}
	return "unknown"
}

// GetBuildDate returns the commit time recorded at build.
func GetBuildDate() string {
	if Date != "unknown" && Date != "" {
		return Date
	}
	if t := setting("vcs.time"); t != "" {
		return t
	}
	return "unknown"
}

// GetInfo returns complete version information.
func GetInfo() Info {
	goVersion := "unknown"
	if info := buildInfo(); info != nil {
		goVersion = info.GoVersion
	}
	return Info{
		Version:   GetVersion(),
		Commit:    GetCommit(),
		Date:      GetBuildDate(),
		Module:    modulePath,
		GoVersion: goVersion,
	}
}

// GetFullVersion returns the version with a short commit and build date.
func GetFullVersion() string {
	info := GetInfo()
	if info.Commit == "unknown" || len(info.Commit) <= 7 {
		return info.Version
	}
	short := info.Commit[:7]
	if info.Date != "unknown" {
		return fmt.Sprintf("%s (%s, built %s)", info.Version, short, info.Date)
	}
	return fmt.Sprintf("%s (%s)", info.Version, short)
}

// PrintVersion writes human-readable version information to w.
func PrintVersion(w io.Writer, appName string) {
	info := GetInfo()
	fmt.Fprintf(w, "%s version %s\n", appName, GetFullVersion())
	fmt.Fprintf(w, "Module: %s\n", info.Module)
	fmt.Fprintf(w, "Commit: %s\n", info.Commit)
	fmt.Fprintf(w, "Build Date: %s\n", info.Date)
	fmt.Fprintf(w, "Go: %s\n", info.GoVersion)
}
