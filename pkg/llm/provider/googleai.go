package provider

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"google.golang.org/genai"

	"github.com/zbiljic/jskit/pkg/llm"
)

const (
	googleAIModel     = "gemini-2.5-flash-preview-09-2025"
	googleAIAPIKeyEnv = "GEMINI_API_KEY"
)

var _ llm.Provider = (*GoogleAI)(nil)

type GoogleAIOptions struct {
	APIKey string
	Model  string
}

// GoogleAI uses the Gemini API of Google AI Studio.
type GoogleAI struct {
	options GoogleAIOptions
	client  *genai.Client
}

// NewGoogleAI returns a GoogleAI provider, reading the API key from
// GEMINI_API_KEY when opts has none.
func NewGoogleAI(ctx context.Context, opts GoogleAIOptions) (*GoogleAI, error) {
	if opts.APIKey == "" {
		opts.APIKey = os.Getenv(googleAIAPIKeyEnv)
	}
	if opts.APIKey == "" {
		return nil, fmt.Errorf("google AI: %w", errNotConfigured)
	}
	if opts.Model == "" {
		opts.Model = googleAIModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Google AI client: %w", err)
	}

	return &GoogleAI{options: opts, client: client}, nil
}

func (p *GoogleAI) String() string {
	return fmt.Sprintf("GoogleAI (%s)", p.options.Model)
}

func (p *GoogleAI) Configured() bool {
	return p.options.APIKey != ""
}

func (p *GoogleAI) Complete(ctx context.Context, req llm.Request) ([]string, error) {
	resp, err := p.client.Models.GenerateContent(ctx, p.options.Model, genai.Text(req.User), &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: req.System}}},
		CandidateCount:    int32(req.CandidateCount()),
		MaxOutputTokens:   int32(req.MaxTokens),
		Temperature:       genai.Ptr(float32(req.Temperature)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	if feedback := resp.PromptFeedback; feedback != nil && feedback.BlockReason != genai.BlockedReasonUnspecified {
		return nil, fmt.Errorf("prompt blocked: %s", feedback.BlockReason)
	}

	messages := llm.Distinct(lo.FilterMap(resp.Candidates, func(c *genai.Candidate, _ int) (string, bool) {
		if c.Content == nil {
			return "", false
		}
		var sb strings.Builder
		for _, part := range c.Content.Parts {
			sb.WriteString(part.Text)
		}
		return sb.String(), true
	}))
	if len(messages) == 0 {
		return nil, errNoContent
	}

	return messages, nil
}
