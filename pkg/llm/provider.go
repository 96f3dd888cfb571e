package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Request asks a provider for commit message candidates.
type Request struct {
	System string
	User   string
	// Candidates is the number of completions wanted. Providers may return
	// fewer, never more.
	Candidates  int
	MaxTokens   int
	Temperature float64
}

// CandidateCount returns Candidates, at least one.
func (r Request) CandidateCount() int {
	return max(r.Candidates, 1)
}

// Provider completes requests against a language model service.
type Provider interface {
	fmt.Stringer

	// Configured reports whether the credentials the provider needs are set.
	Configured() bool

	// Complete returns the completions of req, one per candidate.
	Complete(ctx context.Context, req Request) ([]string, error)
}

// Distinct trims texts, dropping empty ones and duplicates while keeping
// their order.
func Distinct(texts []string) []string {
	return lo.Uniq(lo.FilterMap(texts, func(s string, _ int) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	}))
}
