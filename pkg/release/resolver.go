// Package release decides which semantic version bump a batch of commits
// triggers, and derives the data an external release process consumes.
package release

import (
	"errors"
	"fmt"

	"github.com/zbiljic/jskit/pkg/commit"
)

// ErrUnknownType is matched by errors returned from Resolve when a commit
// type is missing from the vocabulary.
var ErrUnknownType = errors.New("commit type is not part of the vocabulary")

// UnknownTypeError reports a commit type the resolver could not look up.
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownType, e.Type)
}

func (e *UnknownTypeError) Unwrap() error {
	return ErrUnknownType
}

// Resolver maps commit types to a single release type.
type Resolver struct {
	vocabulary *commit.Vocabulary
}

// NewResolver returns a Resolver over the given vocabulary.
func NewResolver(vocabulary *commit.Vocabulary) *Resolver {
	return &Resolver{vocabulary: vocabulary}
}

// Resolve returns the highest release type triggered by types. An empty
// input, or one where every type maps to None, resolves to None. Every type
// is checked, so an unknown one fails even after a Major was seen.
func (r *Resolver) Resolve(types []string) (commit.ReleaseType, error) {
	result := commit.None

	for _, t := range types {
		d, ok := r.vocabulary.Lookup(t)
		if !ok {
			return commit.None, &UnknownTypeError{Type: t}
		}
		result = max(result, d.Release)
	}

	return result, nil
}

// ResolveMessages is Resolve over the types of classified messages.
func (r *Resolver) ResolveMessages(messages []commit.Message) (commit.ReleaseType, error) {
	types := make([]string, 0, len(messages))
	for _, m := range messages {
		types = append(types, m.Type)
	}
	return r.Resolve(types)
}
