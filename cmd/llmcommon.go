package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/zbiljic/jskit/pkg/llm"
	"github.com/zbiljic/jskit/pkg/llm/provider"
)

// parseProviderType returns the provider with the given identifier.
func parseProviderType(s string) (ProviderType, error) {
	for p, ids := range ProviderIds {
		for _, id := range ids {
			if strings.EqualFold(id, s) {
				return p, nil
			}
		}
	}
	return 0, fmt.Errorf("unknown provider: %s", s)
}

func newLLMProvider(ctx context.Context, providerType ProviderType, model string) (llm.Provider, error) {
	switch providerType {
	case OpenAIProvider:
		return provider.NewOpenAI(provider.OpenAIOptions{Model: model}), nil
	case ClaudeProvider:
		p, err := provider.NewClaude(provider.ClaudeOptions{Model: model})
		if err != nil {
			return nil, err
		}
		return p, nil
	case GoogleAIProvider:
		p, err := provider.NewGoogleAI(ctx, provider.GoogleAIOptions{Model: model})
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, fmt.Errorf("unknown provider: %d", providerType)
}

// initializeLLMProvider initializes an LLM provider based on provider type and model.
// The flag wins over the config file; without either the first provider with
// an API key is used.
func initializeLLMProvider(ctx context.Context, cmdChanged bool, providerType ProviderType, model string) (llm.Provider, error) {
	if model == "" {
		model = appConfig.Suggest.Model
	}

	if !cmdChanged && appConfig.Suggest.Provider != "" {
		p, err := parseProviderType(appConfig.Suggest.Provider)
		if err != nil {
			return nil, err
		}
		providerType, cmdChanged = p, true
	}

	if cmdChanged {
		aip, err := newLLMProvider(ctx, providerType, model)
		if err != nil {
			return nil, err
		}
		if !aip.Configured() {
			return nil, fmt.Errorf("%s is not configured - please set its API key", aip)
		}
		return aip, nil
	}

	// Try providers in preferred order; a model only applies to an explicit provider
	for _, p := range []ProviderType{ClaudeProvider, GoogleAIProvider, OpenAIProvider} {
		aip, err := newLLMProvider(ctx, p, "")
		if err != nil {
			continue
		}
		if aip.Configured() {
			return aip, nil
		}
	}

	return nil, errors.New("no available LLM providers found - please configure at least one provider's API key")
}
