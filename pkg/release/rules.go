package release

import (
	"github.com/zbiljic/jskit/pkg/commit"
)

// semanticReleaseTypes maps release types to semantic-release's names.
// None has no counterpart: such commits never trigger a release.
var semanticReleaseTypes = map[commit.ReleaseType]string{
	commit.Patch: "patch",
	commit.Minor: "minor",
	commit.Major: "major",
}

// Rule is one entry of semantic-release's commit-analyzer "releaseRules".
type Rule struct {
	Tag     string `yaml:"tag" json:"tag"`
	Release string `yaml:"release" json:"release"`
}

// Rules returns the release rules for the vocabulary, in vocabulary order,
// leaving out types that trigger no release.
func Rules(vocabulary *commit.Vocabulary) []Rule {
	var rules []Rule
	for _, e := range vocabulary.Entries() {
		release, ok := semanticReleaseTypes[e.Release]
		if !ok {
			continue
		}
		rules = append(rules, Rule{Tag: e.Name, Release: release})
	}
	return rules
}

// NotesOrder returns the commit types in the order release notes group them:
// highest release type first, vocabulary order within the same release type.
// Types that trigger no release are left out.
func NotesOrder(vocabulary *commit.Vocabulary) []string {
	var order []string
	for rt := commit.Major; rt > commit.None; rt-- {
		for _, e := range vocabulary.Entries() {
			if e.Release == rt {
				order = append(order, e.Name)
			}
		}
	}
	return order
}
