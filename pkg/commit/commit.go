package commit

import (
	"fmt"
	"strings"
)

// Message is a commit message split into its conventional parts.
// An empty Scope means the message carried no scope.
type Message struct {
	Type    string
	Scope   string
	Subject string
}

// String formats the message as "type(scope): subject", leaving out the
// parenthesized scope when there is none.
func (m Message) String() string {
	var out string
	out += m.Type
	if m.Scope != "" {
		out += fmt.Sprintf("(%s)", m.Scope)
	}
	out += ": "
	out += m.Subject
	return out
}

// HasScope reports whether the message carried a scope.
func (m Message) HasScope() bool {
	return m.Scope != ""
}

// Format is the template a commit message header must follow.
const Format = "<type>(<optional scope>): <subject>"

// firstLine returns the first line of a raw message, without a trailing
// carriage return.
func firstLine(raw string) string {
	if i := strings.IndexByte(raw, '\n'); i >= 0 {
		raw = raw[:i]
	}
	return strings.TrimSuffix(raw, "\r")
}
