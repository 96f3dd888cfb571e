package commit

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrGrammarMismatch is reported when a message does not match
	// "<type>[(<scope>)]: <subject>".
	ErrGrammarMismatch = errors.New("commit message does not match " + Format)

	// ErrUnknownType is reported when the type of a message is not part of
	// the vocabulary.
	ErrUnknownType = errors.New("unknown commit type")
)

// ClassificationError is returned when a commit message fails
// classification. It matches ErrGrammarMismatch or ErrUnknownType with
// errors.Is.
type ClassificationError struct {
	// Kind is ErrGrammarMismatch or ErrUnknownType.
	Kind error
	// Message is the raw commit message.
	Message string
	// Type is the extracted type, empty on a grammar mismatch.
	Type string
	// ValidTypes lists the vocabulary labels in order.
	ValidTypes []string
}

func (e *ClassificationError) Error() string {
	if errors.Is(e.Kind, ErrUnknownType) {
		return fmt.Sprintf("%s %q: must be one of [%s]", e.Kind, e.Type, strings.Join(e.ValidTypes, ", "))
	}
	return fmt.Sprintf("%s: valid types are [%s]", e.Kind, strings.Join(e.ValidTypes, ", "))
}

func (e *ClassificationError) Unwrap() error {
	return e.Kind
}
