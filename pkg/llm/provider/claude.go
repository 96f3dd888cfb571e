package provider

import (
	"context"
	"fmt"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/zbiljic/jskit/pkg/llm"
)

const (
	claudeModel     = string(anthropic.ModelClaude3_5HaikuLatest)
	claudeAPIKeyEnv = "ANTHROPIC_API_KEY"
)

var _ llm.Provider = (*Claude)(nil)

type ClaudeOptions struct {
	APIKey  string
	BaseURL string
	Model   string
}

type Claude struct {
	options ClaudeOptions
	client  anthropic.Client
}

// NewClaude returns a Claude provider, reading the API key from
// ANTHROPIC_API_KEY when opts has none.
func NewClaude(opts ClaudeOptions) (*Claude, error) {
	if opts.APIKey == "" {
		opts.APIKey = os.Getenv(claudeAPIKeyEnv)
	}
	if opts.APIKey == "" {
		return nil, fmt.Errorf("anthropic: %w", errNotConfigured)
	}
	if opts.Model == "" {
		opts.Model = claudeModel
	}

	clientOpts := []option.RequestOption{option.WithAPIKey(opts.APIKey)}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(opts.BaseURL))
	}

	return &Claude{
		options: opts,
		client:  anthropic.NewClient(clientOpts...),
	}, nil
}

func (c *Claude) String() string {
	return fmt.Sprintf("Claude (%s)", c.options.Model)
}

func (c *Claude) Configured() bool {
	return c.options.APIKey != ""
}

// Complete sends one request per candidate, the messages API has no
// parameter for several completions.
func (c *Claude) Complete(ctx context.Context, req llm.Request) ([]string, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.options.Model),
		System:      []anthropic.TextBlockParam{{Text: req.System}},
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(req.User))},
		MaxTokens:   int64(req.MaxTokens),
		Temperature: anthropic.Float(req.Temperature),
	}

	var texts []string
	for range req.CandidateCount() {
		resp, err := c.client.Messages.New(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("failed to generate content: %w", err)
		}

		for _, block := range resp.Content {
			if text, ok := block.AsAny().(anthropic.TextBlock); ok {
				texts = append(texts, text.Text)
				break
			}
		}
	}

	messages := llm.Distinct(texts)
	if len(messages) == 0 {
		return nil, errNoContent
	}

	return messages, nil
}
