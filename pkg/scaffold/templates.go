package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/zbiljic/jskit/pkg/commit"
	"github.com/zbiljic/jskit/pkg/release"
)

// Defaults used when Options leave a field empty.
const (
	DefaultConfigPackage = "@ejhammond/jskit"
	DefaultESLintScope   = "@ejhammond"
	DefaultReleaseBranch = "master"
	DefaultNodeImage     = "circleci/node:10.15"
)

// VersionCommitType is the type of the semantic-release version commit when
// the vocabulary has no type without release.
const VersionCommitType = "Internal"

// ESLintPresets are the shareable eslint configs a project can extend.
var ESLintPresets = []string{"base", "node", "react"}

// DefaultESLintPresets are extended when no preset is chosen.
var DefaultESLintPresets = []string{"react", "node"}

// Options are the answers of the bootstrap wizard.
type Options struct {
	Features []Feature

	// ConfigPackage is the npm package shipping the shared configs.
	ConfigPackage string
	// ESLintScope is the npm scope of the eslint configs.
	ESLintScope   string
	ESLintPresets []string

	ReleaseBranch string
	NodeImage     string

	// Vocabulary drives the commitlint, release and dependabot configs.
	Vocabulary *commit.Vocabulary
}

// Plan is the set of files and npm scripts a bootstrap produces.
type Plan struct {
	Files   []File
	Scripts []Script
}

func (o *Options) applyDefaults() {
	if o.ConfigPackage == "" {
		o.ConfigPackage = DefaultConfigPackage
	}
	if o.ESLintScope == "" {
		o.ESLintScope = DefaultESLintScope
	}
	if len(o.ESLintPresets) == 0 {
		o.ESLintPresets = DefaultESLintPresets
	}
	if o.ReleaseBranch == "" {
		o.ReleaseBranch = DefaultReleaseBranch
	}
	if o.NodeImage == "" {
		o.NodeImage = DefaultNodeImage
	}
	if o.Vocabulary == nil {
		o.Vocabulary = commit.DefaultVocabulary()
	}
}

// NewPlan renders the files and scripts for the selected features, in the
// order of AllFeatures.
func NewPlan(opts Options) (*Plan, error) {
	opts.applyDefaults()

	if len(opts.Features) == 0 {
		return nil, errors.New("no features selected")
	}
	for _, p := range opts.ESLintPresets {
		if !slices.Contains(ESLintPresets, p) {
			return nil, fmt.Errorf("unknown eslint preset: %s", p)
		}
	}

	plan := &Plan{}
	for _, f := range AllFeatures() {
		if !slices.Contains(opts.Features, f) {
			continue
		}

		files, scripts, err := renderFeature(f, &opts)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", f, err)
		}
		plan.Files = append(plan.Files, files...)
		plan.Scripts = append(plan.Scripts, scripts...)
	}

	return plan, nil
}

func renderFeature(f Feature, opts *Options) ([]File, []Script, error) {
	switch f {
	case ESLintFeature:
		content, err := renderTemplate(eslintTemplate, opts)
		return []File{{Path: ".eslintrc.js", Content: content}},
			[]Script{{Name: "lint", Command: "jskit lint"}}, err

	case PrettierFeature:
		content, err := renderTemplate(prettierTemplate, opts)
		return []File{{Path: ".prettierrc.js", Content: content}},
			[]Script{{Name: "format", Command: "jskit format"}}, err

	case LintStagedFeature:
		content, err := renderTemplate(lintStagedTemplate, opts)
		return []File{{Path: "lint-staged.config.js", Content: content}}, nil, err

	case HuskyFeature:
		content, err := renderTemplate(huskyTemplate, struct {
			LintStaged bool
		}{
			LintStaged: slices.Contains(opts.Features, LintStagedFeature),
		})
		return []File{{Path: ".huskyrc.js", Content: content}}, nil, err

	case SemanticReleaseFeature:
		releaserc, err := renderReleaseConfig(opts)
		if err != nil {
			return nil, nil, err
		}
		circleci, err := renderTemplate(circleCITemplate, opts)
		if err != nil {
			return nil, nil, err
		}
		return []File{
				{Path: ".releaserc.yml", Content: releaserc},
				{Path: ".circleci/config.yml", Content: circleci},
			},
			[]Script{{Name: "release", Command: "jskit release"}}, nil

	case EditorConfigFeature:
		return []File{{Path: ".editorconfig", Content: editorConfig}}, nil, nil

	case CommitlintFeature:
		content, err := renderCommitlint(opts.Vocabulary)
		return []File{{Path: "commitlint.config.js", Content: content}}, nil, err

	case DependabotFeature:
		content, err := renderDependabot(opts.Vocabulary)
		return []File{{Path: ".dependabot/config.yml", Content: content}}, nil, err
	}

	return nil, nil, fmt.Errorf("unknown feature: %d", f)
}

// jsQuote renders s as a single-quoted JavaScript string literal.
func jsQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

var templateFuncs = template.FuncMap{
	"quote": jsQuote,
}

var (
	eslintTemplate = template.Must(template.New("eslint").Funcs(templateFuncs).Parse(
		`module.exports = { extends: [{{range $i, $p := .ESLintPresets}}{{if $i}}, {{end}}{{quote (printf "%s/%s" $.ESLintScope $p)}}{{end}}] };
`))

	prettierTemplate = template.Must(template.New("prettier").Funcs(templateFuncs).Parse(
		`module.exports = require({{quote (printf "%s/configs/prettier" .ConfigPackage)}});
`))

	lintStagedTemplate = template.Must(template.New("lint-staged").Funcs(templateFuncs).Parse(
		`module.exports = require({{quote (printf "%s/configs/lint-staged" .ConfigPackage)}});
`))

	huskyTemplate = template.Must(template.New("husky").Parse(
		`module.exports = {
  hooks: {
    'commit-msg': 'jskit commit-msg --file "$HUSKY_GIT_PARAMS"',
{{- if .LintStaged}}
    'pre-commit': 'lint-staged',
{{- end}}
  },
};
`))

	circleCITemplate = template.Must(template.New("circleci").Parse(
		`version: 2
jobs:
  release:
    docker:
      - image: {{.NodeImage}}
    working_directory: ~/repo

    steps:
      - checkout
      - run: yarn install
      - run: yarn release
workflows:
  version: 2
  release-workflow:
    jobs:
      - release:
          context: semantic-release
          filters:
            branches:
              only: {{.ReleaseBranch}}
`))
)

const editorConfig = `root = true

[*]
charset = utf-8
indent_style = space
indent_size = 2
end_of_line = lf
insert_final_newline = true
trim_trailing_whitespace = true
`

func renderTemplate(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func marshalYAML(v any) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type releaseConfig struct {
	Branch  string `yaml:"branch"`
	Preset  string `yaml:"preset"`
	Plugins []any  `yaml:"plugins"`
}

type commitAnalyzerOptions struct {
	ReleaseRules []release.Rule `yaml:"releaseRules"`
}

type notesGeneratorOptions struct {
	WriterOpts struct {
		CommitGroupsSort []string `yaml:"commitGroupsSort"`
	} `yaml:"writerOpts"`
}

type npmOptions struct {
	NPMPublish bool   `yaml:"npmPublish"`
	PkgRoot    string `yaml:"pkgRoot"`
}

type gitOptions struct {
	Assets  []string `yaml:"assets"`
	Message string   `yaml:"message"`
}

// renderReleaseConfig renders the semantic-release config. Release rules and
// the release notes group order come from the vocabulary. The version commit
// uses a type that triggers no release, or VersionCommitType when the
// vocabulary has none; the commit is tagged, so it is never analyzed again.
func renderReleaseConfig(opts *Options) (string, error) {
	notesOpts := notesGeneratorOptions{}
	notesOpts.WriterOpts.CommitGroupsSort = release.NotesOrder(opts.Vocabulary)

	versionType, ok := opts.Vocabulary.FirstWithRelease(commit.None)
	if !ok {
		versionType = VersionCommitType
	}

	cfg := releaseConfig{
		Branch: opts.ReleaseBranch,
		Preset: "eslint",
		Plugins: []any{
			[]any{"@semantic-release/commit-analyzer", commitAnalyzerOptions{
				ReleaseRules: release.Rules(opts.Vocabulary),
			}},
			[]any{"@semantic-release/release-notes-generator", notesOpts},
			"@semantic-release/github",
			[]any{"@semantic-release/npm", npmOptions{NPMPublish: true, PkgRoot: "."}},
			[]any{"@semantic-release/git", gitOptions{
				Assets:  []string{"package.json"},
				Message: versionType + ": ${nextRelease.version} [skip ci]\n\n${nextRelease.notes}",
			}},
		},
	}

	return marshalYAML(cfg)
}

// renderCommitlint renders commitlint rules accepting exactly the vocabulary.
// The pascal-case rule is only added when every type is capitalized.
func renderCommitlint(v *commit.Vocabulary) (string, error) {
	names := v.Names()

	pascal := true
	for _, name := range names {
		r, _ := utf8.DecodeRuneInString(name)
		if !unicode.IsUpper(r) {
			pascal = false
			break
		}
	}

	quoted := make([]string, 0, v.Len())
	for _, name := range names {
		quoted = append(quoted, jsQuote(name))
	}

	var sb strings.Builder
	sb.WriteString("module.exports = {\n  rules: {\n")
	fmt.Fprintf(&sb, "    'type-enum': [2, 'always', [%s]],\n", strings.Join(quoted, ", "))
	if pascal {
		sb.WriteString("    'type-case': [2, 'always', 'pascal-case'],\n")
	}
	sb.WriteString("    'type-empty': [2, 'never'],\n")
	sb.WriteString("  },\n};\n")

	return sb.String(), nil
}

type dependabotConfig struct {
	Version       int                `yaml:"version"`
	UpdateConfigs []dependabotUpdate `yaml:"update_configs"`
}

type dependabotUpdate struct {
	PackageManager string `yaml:"package_manager"`
	Directory      string `yaml:"directory"`
	UpdateSchedule string `yaml:"update_schedule"`
	CommitMessage  struct {
		Prefix string `yaml:"prefix"`
	} `yaml:"commit_message"`
}

// renderDependabot renders the dependabot config. Dependency updates are
// committed with the type triggering the lowest release so they ship as soon
// as possible without a bigger bump.
func renderDependabot(v *commit.Vocabulary) (string, error) {
	prefix, ok := v.LowestRelease()
	if !ok {
		prefix = commit.TypeFix
	}

	update := dependabotUpdate{
		PackageManager: "javascript",
		Directory:      "/",
		UpdateSchedule: "daily",
	}
	update.CommitMessage.Prefix = prefix

	return marshalYAML(dependabotConfig{
		Version:       1,
		UpdateConfigs: []dependabotUpdate{update},
	})
}
