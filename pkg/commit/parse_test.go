package commit

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Message
	}{
		{
			input: "Fix: correct off-by-one in paginator",
			expected: Message{
				Type:    "Fix",
				Subject: "correct off-by-one in paginator",
			},
		},
		{
			input: "Breaking(api): remove legacy endpoint",
			expected: Message{
				Type:    "Breaking",
				Scope:   "api",
				Subject: "remove legacy endpoint",
			},
		},
		{
			input: "New(ui/forms): add date picker\n\nLonger body: with a colon",
			expected: Message{
				Type:    "New",
				Scope:   "ui/forms",
				Subject: "add date picker",
			},
		},
		{
			input: "Chore: bump deps\r\n",
			expected: Message{
				Type:    "Chore",
				Subject: "bump deps",
			},
		},
		{
			input: "Fix: handle a: b pairs",
			expected: Message{
				Type:    "Fix",
				Subject: "handle a: b pairs",
			},
		},
		{
			input: "Fix(): empty scope stays in type",
			expected: Message{
				Type:    "Fix()",
				Subject: "empty scope stays in type",
			},
		},
		{
			input: "(api): no type",
			expected: Message{
				Type:    "(api)",
				Subject: "no type",
			},
		},
		{
			input: "Fix(api: unclosed",
			expected: Message{
				Type:    "Fix(api",
				Subject: "unclosed",
			},
		},
	}

	for _, test := range tests {
		result, err := ParseMessage(test.input)
		if err != nil {
			t.Errorf("ParseMessage(%q) returned error: %v", test.input, err)
			continue
		}
		if result != test.expected {
			t.Errorf("ParseMessage(%q) = %+v; want %+v", test.input, result, test.expected)
		}
	}
}

func TestParseGrammarMismatch(t *testing.T) {
	tests := []string{
		"oops no colon here",
		"",
		"Fix:no space",
		"Fix: ",
		": subject without type",
		"Fix(a)(b): nested groups",
		"Fix(a(b)): unbalanced nesting",
		"first line\nFix: only on the second line",
	}

	for _, input := range tests {
		if _, err := ParseMessage(input); !errors.Is(err, ErrGrammarMismatch) {
			t.Errorf("ParseMessage(%q) error = %v; want ErrGrammarMismatch", input, err)
		}
	}
}

func TestClassify(t *testing.T) {
	c := NewClassifier(DefaultVocabulary())

	m, err := c.Classify("Fix: correct off-by-one in paginator")
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	want := Message{Type: "Fix", Subject: "correct off-by-one in paginator"}
	if m != want {
		t.Errorf("Classify = %+v; want %+v", m, want)
	}
	if m.HasScope() {
		t.Errorf("expected no scope, got %q", m.Scope)
	}

	m, err = c.Classify("Breaking(api): remove legacy endpoint")
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	want = Message{Type: "Breaking", Scope: "api", Subject: "remove legacy endpoint"}
	if m != want {
		t.Errorf("Classify = %+v; want %+v", m, want)
	}
}

func TestClassifyFailures(t *testing.T) {
	c := NewClassifier(DefaultVocabulary())

	tests := []struct {
		input string
		kind  error
		typ   string
	}{
		{input: "oops no colon here", kind: ErrGrammarMismatch},
		{input: "Bogus: something", kind: ErrUnknownType, typ: "Bogus"},
		{input: "fix: lower case", kind: ErrUnknownType, typ: "fix"},
		{input: "Fix : space before colon", kind: ErrUnknownType, typ: "Fix "},
		{input: " Fix: leading space", kind: ErrUnknownType, typ: " Fix"},
		{input: "Fix(a)(b): nested", kind: ErrGrammarMismatch},
	}

	for _, test := range tests {
		_, err := c.Classify(test.input)
		if !errors.Is(err, test.kind) {
			t.Errorf("Classify(%q) error = %v; want %v", test.input, err, test.kind)
			continue
		}

		var ce *ClassificationError
		if !errors.As(err, &ce) {
			t.Errorf("Classify(%q) error is %T; want *ClassificationError", test.input, err)
			continue
		}
		if ce.Message != test.input {
			t.Errorf("Classify(%q) payload message = %q", test.input, ce.Message)
		}
		if ce.Type != test.typ {
			t.Errorf("Classify(%q) payload type = %q; want %q", test.input, ce.Type, test.typ)
		}
		want := []string{"Chore", "New", "Fix", "Breaking"}
		if !reflect.DeepEqual(ce.ValidTypes, want) {
			t.Errorf("Classify(%q) valid types = %v; want %v", test.input, ce.ValidTypes, want)
		}
	}
}

func TestClassifyUnknownTypeListsVocabulary(t *testing.T) {
	_, err := NewClassifier(DefaultVocabulary()).Classify("Bogus: something")
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, name := range []string{"Chore", "New", "Fix", "Breaking"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not mention %s", err.Error(), name)
		}
	}
}

func TestClassifyCustomVocabulary(t *testing.T) {
	v, err := NewVocabulary(
		TypeEntry{Name: "feat", TypeDescriptor: TypeDescriptor{Release: Minor}},
		TypeEntry{Name: "docs", TypeDescriptor: TypeDescriptor{Release: None}},
	)
	if err != nil {
		t.Fatal(err)
	}
	c := NewClassifier(v)

	if _, err := c.Classify("feat(cli): add flag"); err != nil {
		t.Errorf("Classify returned error: %v", err)
	}
	if _, err := c.Classify("Fix: not in this vocabulary"); !errors.Is(err, ErrUnknownType) {
		t.Errorf("Classify error = %v; want ErrUnknownType", err)
	}
}

func TestClassifyRoundTrip(t *testing.T) {
	c := NewClassifier(DefaultVocabulary())

	scopes := []string{"", "api", "ui/forms", "core-lib", "v2.1"}
	subjects := []string{
		"x",
		"correct off-by-one in paginator",
		"handle a:b without space",
		"trailing colon:",
		"parens (like this) are fine",
		"  padded subject  ",
	}

	for _, typ := range c.Vocabulary().Names() {
		for _, scope := range scopes {
			for _, subject := range subjects {
				want := Message{Type: typ, Scope: scope, Subject: subject}
				got, err := c.Classify(want.String())
				if err != nil {
					t.Errorf("Classify(%q) returned error: %v", want.String(), err)
					continue
				}
				if got != want {
					t.Errorf("Classify(%q) = %+v; want %+v", want.String(), got, want)
				}
			}
		}
	}
}

func TestMessageString(t *testing.T) {
	tests := []struct {
		input    Message
		expected string
	}{
		{input: Message{Type: "Fix", Subject: "a bug"}, expected: "Fix: a bug"},
		{input: Message{Type: "New", Scope: "cli", Subject: "a flag"}, expected: "New(cli): a flag"},
	}

	for _, test := range tests {
		if result := test.input.String(); result != test.expected {
			t.Errorf("%+v.String() = %q; want %q", test.input, result, test.expected)
		}
	}
}
