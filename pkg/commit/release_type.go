package commit

import (
	"fmt"
	"strings"

	"github.com/thediveo/enumflag/v2"
)

// ReleaseType is the semantic versioning bump a commit type triggers.
// The values are totally ordered: None < Patch < Minor < Major.
type ReleaseType enumflag.Flag

const (
	// None means the commit does not trigger a release.
	None ReleaseType = iota
	// Patch triggers a patch release.
	Patch
	// Minor triggers a minor release.
	Minor
	// Major triggers a major release.
	Major
)

// ReleaseTypeIds maps ReleaseType to their string representations.
var ReleaseTypeIds = map[ReleaseType][]string{
	None:  {"none"},
	Patch: {"patch"},
	Minor: {"minor"},
	Major: {"major"},
}

// ParseReleaseType parses a string and returns the corresponding ReleaseType.
// It returns an error if the string doesn't match any known ReleaseType.
func ParseReleaseType(s string) (ReleaseType, error) {
	for rt, ids := range ReleaseTypeIds {
		for _, id := range ids {
			if strings.EqualFold(id, s) {
				return rt, nil
			}
		}
	}
	return None, fmt.Errorf("unknown release type: %s", s)
}

// ID returns the lower-case identifier of the release type.
func (rt ReleaseType) ID() string {
	if val, ok := ReleaseTypeIds[rt]; ok {
		return val[0]
	}
	return fmt.Sprintf("unknown(%d)", rt)
}

// String returns the upper-case name of the release type, e.g. "MINOR".
func (rt ReleaseType) String() string {
	return strings.ToUpper(rt.ID())
}

// Valid reports whether rt is one of the known release types.
func (rt ReleaseType) Valid() bool {
	_, ok := ReleaseTypeIds[rt]
	return ok
}

// MarshalText implements encoding.TextMarshaler.
func (rt ReleaseType) MarshalText() ([]byte, error) {
	if !rt.Valid() {
		return nil, fmt.Errorf("invalid release type: %d", rt)
	}
	return []byte(rt.ID()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (rt *ReleaseType) UnmarshalText(text []byte) error {
	parsed, err := ParseReleaseType(string(text))
	if err != nil {
		return err
	}
	*rt = parsed
	return nil
}
