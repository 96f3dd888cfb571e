package commit

import "strings"

const separator = ": "

// ParseMessage splits the first line of raw into type, optional scope and
// subject without consulting any vocabulary. It returns ErrGrammarMismatch
// when the line does not follow "<type>[(<scope>)]: <subject>".
func ParseMessage(raw string) (Message, error) {
	line := firstLine(raw)

	head, subject, found := strings.Cut(line, separator)
	if !found || head == "" || subject == "" {
		return Message{}, ErrGrammarMismatch
	}

	typ, scope, err := splitScope(head)
	if err != nil {
		return Message{}, err
	}

	return Message{
		Type:    typ,
		Scope:   scope,
		Subject: subject,
	}, nil
}

// splitScope extracts a trailing "(scope)" group from the header. The type
// needs at least one character, so a header opening with "(" has no scope.
// An empty group is not a scope and stays part of the type; parentheses
// inside the group are rejected.
func splitScope(head string) (string, string, error) {
	if !strings.HasSuffix(head, ")") {
		return head, "", nil
	}

	open := strings.IndexByte(head, '(')
	if open <= 0 {
		return head, "", nil
	}

	scope := head[open+1 : len(head)-1]
	if scope == "" {
		return head, "", nil
	}
	if strings.ContainsAny(scope, "()") {
		return "", "", ErrGrammarMismatch
	}

	return head[:open], scope, nil
}

// Classifier validates commit messages against a Vocabulary.
// It holds no mutable state and may be shared between goroutines.
type Classifier struct {
	vocabulary *Vocabulary
}

// NewClassifier returns a Classifier for the given vocabulary.
func NewClassifier(vocabulary *Vocabulary) *Classifier {
	return &Classifier{vocabulary: vocabulary}
}

// Vocabulary returns the vocabulary the classifier validates against.
func (c *Classifier) Vocabulary() *Vocabulary {
	return c.vocabulary
}

// Classify parses raw and checks its type against the vocabulary.
// Failures are *ClassificationError values.
func (c *Classifier) Classify(raw string) (Message, error) {
	m, err := ParseMessage(raw)
	if err != nil {
		return Message{}, &ClassificationError{
			Kind:       ErrGrammarMismatch,
			Message:    raw,
			ValidTypes: c.vocabulary.Names(),
		}
	}

	if !c.vocabulary.Contains(m.Type) {
		return Message{}, &ClassificationError{
			Kind:       ErrUnknownType,
			Message:    raw,
			Type:       m.Type,
			ValidTypes: c.vocabulary.Names(),
		}
	}

	return m, nil
}
