package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/sashabaranov/go-openai"

	"github.com/zbiljic/jskit/pkg/llm"
)

func TestOpenAIComplete(t *testing.T) {
	var got openai.ChatCompletionRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" || r.Header.Get("Authorization") != "Bearer sk-test" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("invalid request body: %s", err)
		}
		_, _ = w.Write([]byte(`{"choices":[
			{"index":0,"message":{"role":"assistant","content":"Fix: handle empty scope"}},
			{"index":1,"message":{"role":"assistant","content":" Fix: handle empty scope\n"}},
			{"index":2,"message":{"role":"assistant","content":"New: support scopes"}}
		]}`))
	}))
	t.Cleanup(srv.Close)

	p := NewOpenAI(OpenAIOptions{APIKey: "sk-test", BaseURL: srv.URL + "/v1/", Client: srv.Client()})
	if !p.Configured() {
		t.Fatal("provider with an API key should be configured")
	}

	messages, err := p.Complete(context.Background(), llm.Request{
		System:     "system",
		User:       "user",
		Candidates: 3,
		MaxTokens:  100,
	})
	if err != nil {
		t.Fatalf("Complete returned error: %s", err)
	}

	if !reflect.DeepEqual(messages, []string{"Fix: handle empty scope", "New: support scopes"}) {
		t.Errorf("messages = %v", messages)
	}
	if got.N != 3 || got.MaxTokens != 100 || got.Model != openaiModel || len(got.Messages) != 2 {
		t.Errorf("unexpected request: %+v", got)
	}
	if got.Messages[0].Role != openai.ChatMessageRoleSystem || got.Messages[1].Content != "user" {
		t.Errorf("unexpected messages: %+v", got.Messages)
	}
}

func TestOpenAICompleteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
	}))
	t.Cleanup(srv.Close)

	p := NewOpenAI(OpenAIOptions{APIKey: "wrong", BaseURL: srv.URL, Client: srv.Client()})
	_, err := p.Complete(context.Background(), llm.Request{})
	if err == nil || err.Error() != "invalid api key" {
		t.Errorf("err = %v; want the API error message", err)
	}
}

func TestProvidersWithoutKey(t *testing.T) {
	t.Setenv(openaiAPIKeyEnv, "")
	t.Setenv(claudeAPIKeyEnv, "")
	t.Setenv(googleAIAPIKeyEnv, "")

	if NewOpenAI(OpenAIOptions{}).Configured() {
		t.Error("OpenAI without a key should not be configured")
	}
	if _, err := NewClaude(ClaudeOptions{}); err == nil {
		t.Error("expected an error for Claude without a key")
	}
	if _, err := NewGoogleAI(context.Background(), GoogleAIOptions{}); err == nil {
		t.Error("expected an error for GoogleAI without a key")
	}
}
