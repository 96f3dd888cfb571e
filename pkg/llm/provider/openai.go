package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/carlmjohnson/requests"
	"github.com/samber/lo"
	"github.com/sashabaranov/go-openai"

	"github.com/zbiljic/jskit/pkg/llm"
)

const (
	openaiBaseURL   = "https://api.openai.com/v1"
	openaiModel     = openai.GPT4oMini
	openaiAPIKeyEnv = "OPENAI_API_KEY"
)

var _ llm.Provider = (*OpenAI)(nil)

type OpenAIOptions struct {
	APIKey string
	// BaseURL is the API root, the chat completions path is appended to it.
	BaseURL string
	Model   string
	Client  *http.Client
}

// OpenAI talks to an OpenAI compatible chat completions endpoint.
type OpenAI struct {
	options OpenAIOptions
}

// NewOpenAI returns an OpenAI provider, reading the API key from
// OPENAI_API_KEY when opts has none.
func NewOpenAI(opts OpenAIOptions) *OpenAI {
	if opts.APIKey == "" {
		opts.APIKey = os.Getenv(openaiAPIKeyEnv)
	}
	if opts.BaseURL == "" {
		opts.BaseURL = openaiBaseURL
	}
	if opts.Model == "" {
		opts.Model = openaiModel
	}

	return &OpenAI{options: opts}
}

func (p *OpenAI) String() string {
	return fmt.Sprintf("OpenAI (%s)", p.options.Model)
}

func (p *OpenAI) Configured() bool {
	return p.options.APIKey != ""
}

// Complete asks for all candidates in a single request.
func (p *OpenAI) Complete(ctx context.Context, req llm.Request) ([]string, error) {
	payload := openai.ChatCompletionRequest{
		Model: p.options.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
		N:           req.CandidateCount(),
	}

	var (
		resp    openai.ChatCompletionResponse
		errResp openai.ErrorResponse
	)

	b := requests.
		URL(strings.TrimSuffix(p.options.BaseURL, "/") + "/chat/completions").
		Bearer(p.options.APIKey).
		BodyJSON(payload).
		ToJSON(&resp).
		ErrorJSON(&errResp)
	if p.options.Client != nil {
		b = b.Client(p.options.Client)
	}

	if err := b.Fetch(ctx); err != nil {
		if errResp.Error != nil && errResp.Error.Message != "" {
			return nil, errors.New(errResp.Error.Message)
		}
		return nil, err
	}

	messages := llm.Distinct(lo.Map(resp.Choices, func(c openai.ChatCompletionChoice, _ int) string {
		return c.Message.Content
	}))
	if len(messages) == 0 {
		return nil, errNoContent
	}

	return messages, nil
}
