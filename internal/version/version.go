// Package version reports the tabline release version.
package version

import "runtime/debug"

// Version is stamped at release time via -ldflags. Binaries built without it
// fall back to the module version embedded by `go install`.
var Version = "unknown"

func init() {
	// `go install github.com/kmaicher/tabline@<tag>` records the module
	// version in the build info; plain `go build` records "(devel)".
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		Version = v
	}
}
