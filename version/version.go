package version

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
)

// Set at link time with -ldflags -X; empty values fall back to the module
// build information.
var (
	Version string
	Commit  string
	Date    string
)

const unknown = "unknown"

// Info describes the running sugarctl build.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
}

// Get resolves build information, preferring linker flags over what the Go
// toolchain stamped into the binary.
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
	}

	if build, ok := debug.ReadBuildInfo(); ok {
		if info.Version == "" && build.Main.Version != "(devel)" {
			info.Version = build.Main.Version
		}
		for _, setting := range build.Settings {
			switch {
			case setting.Key == "vcs.revision" && info.Commit == "":
				info.Commit = setting.Value
			case setting.Key == "vcs.time" && info.Date == "":
				info.Date = setting.Value
			}
		}
	}

	if info.Version == "" {
		info.Version = "development"
	}
	if info.Commit == "" {
		info.Commit = unknown
	}
	if info.Date == "" {
		info.Date = unknown
	}
	return info
}

// ShortCommit returns the first seven characters of a full commit hash, or
// "" when the commit is unknown or already short.
func (i Info) ShortCommit() string {
	if i.Commit == unknown || len(i.Commit) <= 7 {
		return ""
	}
	return i.Commit[:7]
}

// String formats the version with its commit and build date when known.
func (i Info) String() string {
	short := i.ShortCommit()
	switch {
	case short == "":
		return i.Version
	case i.Date == unknown:
		return fmt.Sprintf("%s (%s)", i.Version, short)
	default:
		return fmt.Sprintf("%s (%s, built %s)", i.Version, short, i.Date)
	}
}

// GetVersion returns the version string alone.
func GetVersion() string {
	return Get().Version
}

// GetFullVersion returns the version with commit and build date.
func GetFullVersion() string {
	return Get().String()
}

// FprintVersion writes the version report printed by "sugarctl version".
func FprintVersion(w io.Writer, appName string) {
	info := Get()
	fmt.Fprintf(w, "%s version %s\n", appName, info)
	fmt.Fprintf(w, "Commit: %s\n", info.Commit)
	fmt.Fprintf(w, "Build Date: %s\n", info.Date)
	fmt.Fprintf(w, "Go: %s\n", info.GoVersion)
}
