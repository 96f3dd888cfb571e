package commit

import (
	"errors"
	"fmt"
)

// Commit types of the default vocabulary.
const (
	TypeChore    = "Chore"
	TypeNew      = "New"
	TypeFix      = "Fix"
	TypeBreaking = "Breaking"
)

// TypeDescriptor describes a commit type and the release it triggers.
type TypeDescriptor struct {
	Description string
	Release     ReleaseType
}

// TypeEntry is a named TypeDescriptor, used to build a Vocabulary.
type TypeEntry struct {
	Name string
	TypeDescriptor
}

// Vocabulary is the ordered set of recognized commit types.
// It is immutable once built and safe for concurrent use.
type Vocabulary struct {
	names []string
	types map[string]TypeDescriptor
}

var errEmptyVocabulary = errors.New("vocabulary must define at least one commit type")

// NewVocabulary builds a Vocabulary from entries, keeping their order.
// Labels are case-sensitive and must be unique and non-empty.
func NewVocabulary(entries ...TypeEntry) (*Vocabulary, error) {
	if len(entries) == 0 {
		return nil, errEmptyVocabulary
	}

	v := &Vocabulary{
		names: make([]string, 0, len(entries)),
		types: make(map[string]TypeDescriptor, len(entries)),
	}

	for _, e := range entries {
		if e.Name == "" {
			return nil, errors.New("commit type name must not be empty")
		}
		if _, exists := v.types[e.Name]; exists {
			return nil, fmt.Errorf("duplicate commit type: %s", e.Name)
		}
		if !e.Release.Valid() {
			return nil, fmt.Errorf("commit type %s has invalid release type %d", e.Name, e.Release)
		}
		v.names = append(v.names, e.Name)
		v.types[e.Name] = e.TypeDescriptor
	}

	return v, nil
}

// DefaultEntries returns the entries of the bundled vocabulary.
func DefaultEntries() []TypeEntry {
	return []TypeEntry{
		{Name: TypeChore, TypeDescriptor: TypeDescriptor{
			Description: "A not-user-facing change (e.g. tests, dev deps, tooling)",
			Release:     None,
		}},
		{Name: TypeNew, TypeDescriptor: TypeDescriptor{
			Description: "A new feature",
			Release:     Minor,
		}},
		{Name: TypeFix, TypeDescriptor: TypeDescriptor{
			Description: "A bug fix",
			Release:     Patch,
		}},
		{Name: TypeBreaking, TypeDescriptor: TypeDescriptor{
			Description: "A backwards-incompatible enhancement/feature",
			Release:     Major,
		}},
	}
}

var defaultVocabulary = func() *Vocabulary {
	v, err := NewVocabulary(DefaultEntries()...)
	if err != nil {
		panic(err)
	}
	return v
}()

// DefaultVocabulary returns the bundled vocabulary:
// Chore (none), New (minor), Fix (patch), Breaking (major).
func DefaultVocabulary() *Vocabulary {
	return defaultVocabulary
}

// Names returns the commit type labels in vocabulary order.
func (v *Vocabulary) Names() []string {
	names := make([]string, len(v.names))
	copy(names, v.names)
	return names
}

// Entries returns the commit types in vocabulary order.
func (v *Vocabulary) Entries() []TypeEntry {
	entries := make([]TypeEntry, 0, len(v.names))
	for _, name := range v.names {
		entries = append(entries, TypeEntry{Name: name, TypeDescriptor: v.types[name]})
	}
	return entries
}

// Lookup returns the descriptor of the named commit type.
func (v *Vocabulary) Lookup(name string) (TypeDescriptor, bool) {
	d, ok := v.types[name]
	return d, ok
}

// Contains reports whether name is a commit type of the vocabulary.
func (v *Vocabulary) Contains(name string) bool {
	_, ok := v.types[name]
	return ok
}

// Len returns the number of commit types.
func (v *Vocabulary) Len() int {
	return len(v.names)
}

// FirstWithRelease returns the first commit type, in vocabulary order, that
// triggers the given release type.
func (v *Vocabulary) FirstWithRelease(rt ReleaseType) (string, bool) {
	for _, name := range v.names {
		if v.types[name].Release == rt {
			return name, true
		}
	}
	return "", false
}

// LowestRelease returns the commit type triggering the lowest release other
// than None, the first in vocabulary order on ties. It reports false when no
// type triggers a release.
func (v *Vocabulary) LowestRelease() (string, bool) {
	var (
		lowest string
		rt     ReleaseType
	)
	for _, name := range v.names {
		r := v.types[name].Release
		if r == None {
			continue
		}
		if lowest == "" || r < rt {
			lowest, rt = name, r
		}
	}
	return lowest, lowest != ""
}
