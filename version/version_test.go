package version

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
)

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"version only", Info{Version: "v1.2.0", Commit: "short", Date: unknown}, "v1.2.0"},
		{"unknown commit", Info{Version: "v1.2.0", Commit: unknown, Date: "2026-10-19"}, "v1.2.0"},
		{"with commit", Info{Version: "v1.2.0", Commit: "0123456789abcdef", Date: unknown}, "v1.2.0 (0123456)"},
		{"with commit and date", Info{Version: "v1.2.0", Commit: "0123456789abcdef", Date: "2026-10-19"}, "v1.2.0 (0123456, built 2026-10-19)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetPrefersLinkerFlags(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldVersion, oldCommit, oldDate })
	Version, Commit, Date = "v0.3.0", "0123456789abcdef", "2026-10-19"

	info := Get()
	if info.Version != "v0.3.0" || info.Commit != "0123456789abcdef" || info.Date != "2026-10-19" {
		t.Errorf("Get() = %+v, want linker values", info)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", info.GoVersion, runtime.Version())
	}
	if got := GetFullVersion(); got != "v0.3.0 (0123456, built 2026-10-19)" {
		t.Errorf("GetFullVersion() = %q", got)
	}
}

func TestGetFillsUnknowns(t *testing.T) {
	info := Get()
	if info.Version == "" || info.Commit == "" || info.Date == "" {
		t.Errorf("Get() left empty fields: %+v", info)
	}
}

func TestFprintVersion(t *testing.T) {
	oldVersion := Version
	t.Cleanup(func() { Version = oldVersion })
	Version = "v0.3.0"

	var buf bytes.Buffer
	FprintVersion(&buf, "sugarctl")

	out := buf.String()
	for _, want := range []string{"sugarctl version v0.3.0", "Commit: ", "Build Date: ", "Go: "} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}
