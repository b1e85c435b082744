// Package version provides version information and build metadata for sugarctl.
//
// Version information comes from, in order of preference:
//   - Compile-time variables (Version, Commit, Date) set via -ldflags
//   - Runtime build info from debug.ReadBuildInfo()
//   - Fallback defaults for development builds
//
// Build Integration:
//
//	-ldflags "-X github.com/dendrascience/sugarctl/version.Version=v1.0.0 -X github.com/dendrascience/sugarctl/version.Commit=abc123 -X github.com/dendrascience/sugarctl/version.Date=2026-01-01T00:00:00Z"
package version
