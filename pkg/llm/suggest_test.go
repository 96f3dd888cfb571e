package llm

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/zbiljic/jskit/pkg/commit"
)

type fakeProvider struct {
	responses []string
	err       error

	req Request
}

func (f *fakeProvider) String() string   { return "Fake" }
func (f *fakeProvider) Configured() bool { return true }

func (f *fakeProvider) Complete(_ context.Context, req Request) ([]string, error) {
	f.req = req
	return f.responses, f.err
}

func TestSuggestCommitMessages(t *testing.T) {
	provider := &fakeProvider{
		responses: []string{
			"Fix(parser): handle empty scope",
			"fix: handle empty scope",
			"```\nFix(parser): handle empty scope\n```",
			"New: support scopes",
			"Handle empty scope",
		},
	}
	classifier := commit.NewClassifier(commit.DefaultVocabulary())

	messages, err := SuggestCommitMessages(context.Background(), provider, classifier, "fixed the parser", "diff --git a/x b/x", 3)
	if err != nil {
		t.Fatalf("SuggestCommitMessages returned error: %s", err)
	}

	expected := []string{"Fix(parser): handle empty scope", "New: support scopes"}
	if !reflect.DeepEqual(messages, expected) {
		t.Errorf("messages = %v; want %v", messages, expected)
	}

	if provider.req.Candidates != 3 {
		t.Errorf("candidate count = %d; want 3", provider.req.Candidates)
	}
	if !strings.Contains(provider.req.System, "Chore, New, Fix, Breaking") {
		t.Errorf("system prompt does not list the types:\n%s", provider.req.System)
	}
	if !strings.Contains(provider.req.System, commit.Format) {
		t.Errorf("system prompt does not contain the format:\n%s", provider.req.System)
	}
	for _, want := range []string{"fixed the parser", "diff --git a/x b/x", `- "Fix": "A bug fix"`} {
		if !strings.Contains(provider.req.User, want) {
			t.Errorf("user prompt does not contain %q:\n%s", want, provider.req.User)
		}
	}
}

func TestSuggestCommitMessagesNoValid(t *testing.T) {
	provider := &fakeProvider{responses: []string{"feat: lower-case type", "no separator"}}
	classifier := commit.NewClassifier(commit.DefaultVocabulary())

	_, err := SuggestCommitMessages(context.Background(), provider, classifier, "x", "", 2)
	if !errors.Is(err, ErrNoSuggestions) {
		t.Errorf("err = %v; want ErrNoSuggestions", err)
	}
}

func TestSuggestCommitMessagesProviderError(t *testing.T) {
	providerErr := errors.New("quota exceeded")
	provider := &fakeProvider{err: providerErr}
	classifier := commit.NewClassifier(commit.DefaultVocabulary())

	_, err := SuggestCommitMessages(context.Background(), provider, classifier, "x", "", 1)
	if !errors.Is(err, providerErr) {
		t.Errorf("err = %v; want wrapped provider error", err)
	}
	if !strings.HasPrefix(err.Error(), "Fake: ") {
		t.Errorf("err = %q; want provider name prefix", err)
	}
}

func TestGenerateUserPromptOmitsEmptySections(t *testing.T) {
	prompt := GenerateUserPrompt(commit.DefaultVocabulary(), DefaultMaxLength, "", "")

	if strings.Contains(prompt, "Rejected commit message") || strings.Contains(prompt, "Code diff") {
		t.Errorf("empty sections should be omitted:\n%s", prompt)
	}
	if !strings.Contains(prompt, "maximum of 72 characters") {
		t.Errorf("missing length limit:\n%s", prompt)
	}
}

func TestDistinct(t *testing.T) {
	got := Distinct([]string{" Fix: a\n", "", "Fix: a", "  ", "New: b"})
	if !reflect.DeepEqual(got, []string{"Fix: a", "New: b"}) {
		t.Errorf("Distinct = %v", got)
	}

	if n := (Request{}).CandidateCount(); n != 1 {
		t.Errorf("CandidateCount = %d; want 1", n)
	}
}
