package scaffold

import (
	"fmt"

	"github.com/thediveo/enumflag/v2"
)

// Feature is a piece of tooling the bootstrap wizard can set up.
type Feature enumflag.Flag

const (
	// ESLintFeature sets up linting and the "lint" script.
	ESLintFeature Feature = iota
	// PrettierFeature sets up formatting and the "format" script.
	PrettierFeature
	// LintStagedFeature lints staged files before each commit.
	LintStagedFeature
	// HuskyFeature installs git hooks, including commit message validation.
	HuskyFeature
	// SemanticReleaseFeature sets up automated releases, CI and the "release" script.
	SemanticReleaseFeature
	// EditorConfigFeature adds a shared .editorconfig.
	EditorConfigFeature
	// CommitlintFeature adds a commitlint config matching the commit types.
	CommitlintFeature
	// DependabotFeature adds a dependabot config.
	DependabotFeature
)

// FeatureIds maps Feature to their string representations.
var FeatureIds = map[Feature][]string{
	ESLintFeature:          {"eslint"},
	PrettierFeature:        {"prettier"},
	LintStagedFeature:      {"lint-staged"},
	HuskyFeature:           {"husky"},
	SemanticReleaseFeature: {"semantic-release"},
	EditorConfigFeature:    {"editorconfig"},
	CommitlintFeature:      {"commitlint"},
	DependabotFeature:      {"dependabot"},
}

// featureDescriptions are shown next to features in the wizard.
var featureDescriptions = map[Feature]string{
	ESLintFeature:          "Lint JS/TS sources",
	PrettierFeature:        "Format sources",
	LintStagedFeature:      "Check staged files before committing",
	HuskyFeature:           "Git hooks with commit message validation",
	SemanticReleaseFeature: "Automated releases from commit messages",
	EditorConfigFeature:    "Shared editor settings",
	CommitlintFeature:      "commitlint rules for the commit types",
	DependabotFeature:      "Automated dependency updates",
}

// AllFeatures returns every feature in the order they are set up.
func AllFeatures() []Feature {
	return []Feature{
		ESLintFeature,
		PrettierFeature,
		LintStagedFeature,
		HuskyFeature,
		SemanticReleaseFeature,
		EditorConfigFeature,
		CommitlintFeature,
		DependabotFeature,
	}
}

// String returns the identifier of the feature.
func (f Feature) String() string {
	if val, ok := FeatureIds[f]; ok {
		return val[0]
	}
	return fmt.Sprintf("UnknownFeature(%d)", f)
}

// Description returns a short human-readable description.
func (f Feature) Description() string {
	return featureDescriptions[f]
}
