// Package buildinfo holds build-time information like the version.
// This is a separate package so that other packages can import it without
// worrying about introducing circular dependencies.
package buildinfo

import (
	"strings"

	"github.com/coreos/go-semver/semver"
)

// Updated by linker flags during build.
var (
	Version   string = "0.0.0"
	GitCommit string
	BuiltBy   string
)

// A Info contains a version.
type Info struct {
	Version string
	Commit  string
	BuiltBy string
}

// Current returns the build information set by the linker.
func Current() Info {
	return Info{
		Version: Version,
		Commit:  GitCommit,
		BuiltBy: BuiltBy,
	}
}

func (vi Info) String() string {
	var versionElems []string
	if vi.Version != "" {
		version, err := semver.NewVersion(strings.TrimPrefix(vi.Version, "v"))
		if err != nil {
			return vi.Version
		}
		versionElems = append(versionElems, "v"+version.String())
	} else {
		versionElems = append(versionElems, "dev")
	}
	if vi.Commit != "" {
		versionElems = append(versionElems, "commit "+vi.Commit)
	}
	if vi.BuiltBy != "" {
		versionElems = append(versionElems, "built by "+vi.BuiltBy)
	}
	return strings.Join(versionElems, ", ")
}
