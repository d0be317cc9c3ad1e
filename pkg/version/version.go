// Package version derives the build identity stamped on startup log lines
// and the health payload.
package version

import (
	"runtime/debug"
	"sync"
)

const app = "leadline"

// commit is injected with -ldflags "-X .../pkg/version.commit=<sha>" for
// container builds where the .git directory is unavailable. When empty, the
// VCS stamp embedded by the Go toolchain is used instead.
var commit string

var resolve = sync.OnceValue(func() string {
	if commit != "" {
		return short(commit)
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return "dev"
	}
	if dirty {
		return short(rev) + "-dirty"
	}
	return short(rev)
})

// Commit returns the short revision the binary was built from, suffixed with
// "-dirty" for builds from a modified tree. Outside a VCS-stamped build
// (go test, builds from an exported tarball) it returns "dev".
func Commit() string {
	return resolve()
}

// Full returns "leadline/<commit>".
func Full() string {
	return app + "/" + Commit()
}

func short(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}
