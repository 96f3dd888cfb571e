package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/zbiljic/jskit/pkg/commit"
)

// ErrNoSuggestions is returned when no candidate passes classification.
var ErrNoSuggestions = errors.New("no valid commit message was suggested")

func GenerateSystemPrompt(v *commit.Vocabulary) string {
	return fmt.Sprintf(PromptSystemFormat, commit.Format, strings.Join(v.Names(), ", "))
}

func GenerateUserPrompt(v *commit.Vocabulary, maxLength int, rejected, diff string) string {
	var content []string
	content = append(content, PromptIntro)
	content = append(content, "")
	content = append(content, fmt.Sprintf(PromptTypesFormat, vocabularyToString(v)))
	content = append(content, "")
	content = append(content, PromptDetails)
	content = append(content, fmt.Sprintf(PromptMaxLengthFormat, maxLength))
	content = append(content, "")
	if rejected = strings.TrimSpace(rejected); rejected != "" {
		content = append(content, fmt.Sprintf(PromptRejectedFormat, rejected))
	}
	if diff = strings.TrimSpace(diff); diff != "" {
		content = append(content, fmt.Sprintf(PromptCodeDiffFormat, truncateDiff(diff, DefaultMaxDiffLength)))
	}
	return strings.Join(content, "\n")
}

// SuggestCommitMessages asks the provider for rewrites of the rejected
// message and returns the distinct candidates the classifier accepts, in the
// order the provider returned them.
func SuggestCommitMessages(
	ctx context.Context,
	provider Provider,
	classifier *commit.Classifier,
	rejected,
	diff string,
	candidateCount int,
) ([]string, error) {
	v := classifier.Vocabulary()

	responses, err := provider.Complete(ctx, Request{
		System:      GenerateSystemPrompt(v),
		User:        GenerateUserPrompt(v, DefaultMaxLength, rejected, diff),
		Candidates:  candidateCount,
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", provider, err)
	}

	return FilterValid(classifier, responses)
}

// FilterValid extracts a message from each response and keeps the ones the
// classifier accepts, normalized and without duplicates.
func FilterValid(classifier *commit.Classifier, responses []string) ([]string, error) {
	messages := lo.FilterMap(responses, func(r string, _ int) (string, bool) {
		m, err := classifier.Classify(extractMessage(r))
		if err != nil {
			return "", false
		}
		return m.String(), true
	})

	messages = lo.Uniq(messages)
	if len(messages) == 0 {
		return nil, ErrNoSuggestions
	}

	return messages, nil
}
