package config

import (
	"github.com/zbiljic/jskit/pkg/commit"
	"github.com/zbiljic/jskit/pkg/delegate"
)

// Config represents the current version of configuration
type Config = configV1

// Type aliases for external packages
type (
	CommitTypeConfig = commitTypeConfigV1
	ReleaseConfig    = releaseConfigV1
	ToolConfig       = toolConfigV1
	SuggestConfig    = suggestConfigV1
)

// Tool keys of the tools section.
const (
	ToolLint    = "lint"
	ToolFormat  = "format"
	ToolRelease = "release"
	ToolPublish = "publish"
)

// NewDefault creates a new configuration
func NewDefault() *Config {
	return newConfigV1()
}

// Validate validates the configuration
func (c *Config) Validate() error {
	return c.validateV1()
}

// Vocabulary builds the commit type vocabulary. Without configured types the
// default vocabulary is used.
func (c *Config) Vocabulary() (*commit.Vocabulary, error) {
	if len(c.Types) == 0 {
		return commit.DefaultVocabulary(), nil
	}

	entries := make([]commit.TypeEntry, 0, len(c.Types))
	for _, t := range c.Types {
		entries = append(entries, commit.TypeEntry{
			Name: t.Name,
			TypeDescriptor: commit.TypeDescriptor{
				Description: t.Description,
				Release:     t.Release,
			},
		})
	}

	v, err := commit.NewVocabulary(entries...)
	if err != nil {
		return nil, errInvalidTypes(err)
	}
	return v, nil
}

// Tool returns the default tool with the configured overrides applied.
func (c *Config) Tool(key string, def delegate.Tool) delegate.Tool {
	override, ok := c.Tools[key]
	if !ok {
		return def
	}
	return def.Override(override.Name, override.Args)
}

// RequiredEnv returns the environment variables release and publish need.
func (c *Config) RequiredEnv() []string {
	if len(c.Release.RequiredEnv) == 0 {
		return defaultRequiredEnv()
	}
	return c.Release.RequiredEnv
}

func defaultRequiredEnv() []string {
	return []string{"GITHUB_TOKEN", "NPM_TOKEN"}
}
