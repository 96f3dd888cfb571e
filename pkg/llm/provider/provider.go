// Package provider implements llm.Provider for the supported model services.
package provider

import "errors"

var (
	errNoContent     = errors.New("returned no text content")
	errNotConfigured = errors.New("API key is not set")
)
