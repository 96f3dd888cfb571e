package release

import (
	"github.com/coreos/go-semver/semver"
	"github.com/samber/lo"

	"github.com/zbiljic/jskit/pkg/commit"
)

// HistoryCommit is a commit read from version control.
type HistoryCommit struct {
	Hash    string
	Subject string
}

// AnalyzedCommit is a history commit together with its classification.
type AnalyzedCommit struct {
	HistoryCommit
	Message commit.Message
}

// SkippedCommit is a history commit that failed classification.
type SkippedCommit struct {
	HistoryCommit
	Err error
}

// Analysis is the outcome of classifying the commits since the last release.
type Analysis struct {
	Commits []AnalyzedCommit
	Skipped []SkippedCommit
	Release commit.ReleaseType
}

// Analyze classifies every commit of history and resolves the release type
// of the accepted ones. Commits that fail classification do not take part in
// resolution; they are reported in Analysis.Skipped.
func Analyze(classifier *commit.Classifier, resolver *Resolver, history []HistoryCommit) (*Analysis, error) {
	a := &Analysis{}

	for _, hc := range history {
		m, err := classifier.Classify(hc.Subject)
		if err != nil {
			a.Skipped = append(a.Skipped, SkippedCommit{HistoryCommit: hc, Err: err})
			continue
		}
		a.Commits = append(a.Commits, AnalyzedCommit{HistoryCommit: hc, Message: m})
	}

	rt, err := resolver.ResolveMessages(lo.Map(a.Commits, func(c AnalyzedCommit, _ int) commit.Message {
		return c.Message
	}))
	if err != nil {
		return nil, err
	}
	a.Release = rt

	return a, nil
}

// NextVersion returns the version following current for the release type.
// None returns a copy of current. A nil current counts as 0.0.0.
func NextVersion(current *semver.Version, rt commit.ReleaseType) *semver.Version {
	next := semver.Version{}
	if current != nil {
		next = *current
	}

	switch rt {
	case commit.Major:
		next.BumpMajor()
	case commit.Minor:
		next.BumpMinor()
	case commit.Patch:
		next.BumpPatch()
	}

	return &next
}
