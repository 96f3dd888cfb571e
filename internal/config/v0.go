package config

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/zbiljic/jskit/pkg/commit"
)

const configVersionV0 = "0"

// configV0 is the first config format. Commit types were a map of label to
// release type, so their order was not preserved.
type configV0 struct {
	Version string            `json:"version"` // required by vconfig-go
	Types   map[string]string `json:"types,omitempty"`
	Branch  string            `json:"branch,omitempty"`
}

// newConfigV0 creates a new v0 configuration
func newConfigV0() *configV0 {
	return &configV0{
		Version: configVersionV0,
	}
}

func (c *configV0) validateV0() error {
	for name, release := range c.Types {
		if _, err := commit.ParseReleaseType(release); err != nil {
			return fmt.Errorf("commit type '%s': %w", name, err)
		}
	}
	return nil
}

// migrate converts to v1. Types are ordered by release type, then by name.
func (c *configV0) migrate() (*configV1, error) {
	if err := c.validateV0(); err != nil {
		return nil, err
	}

	next := newConfigV1()
	next.Release.Branch = c.Branch

	for name, release := range c.Types {
		rt, _ := commit.ParseReleaseType(release)
		next.Types = append(next.Types, commitTypeConfigV1{Name: name, Release: rt})
	}
	slices.SortFunc(next.Types, func(a, b commitTypeConfigV1) int {
		return cmp.Or(cmp.Compare(a.Release, b.Release), cmp.Compare(a.Name, b.Name))
	})

	return next, nil
}
