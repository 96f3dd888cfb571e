package cmd

import (
	"github.com/thediveo/enumflag/v2"
)

// ProviderType represents the supported LLM providers.
type ProviderType enumflag.Flag

const (
	// OpenAIProvider represents the OpenAI provider.
	OpenAIProvider ProviderType = iota
	// ClaudeProvider represents the Claude provider.
	ClaudeProvider
	// GoogleAIProvider represents the GoogleAI provider.
	GoogleAIProvider
)

// ProviderIds maps ProviderType to their string representations.
var ProviderIds = map[ProviderType][]string{
	OpenAIProvider:   {"openai"},
	ClaudeProvider:   {"claude"},
	GoogleAIProvider: {"googleai"},
}

// OutputFormat represents the output formats of the reporting commands.
type OutputFormat enumflag.Flag

const (
	// TextFormat is human-readable output.
	TextFormat OutputFormat = iota
	// JSONFormat is machine-readable output.
	JSONFormat
)

// OutputFormatIds maps OutputFormat to their string representations.
var OutputFormatIds = map[OutputFormat][]string{
	TextFormat: {"text"},
	JSONFormat: {"json"},
}
