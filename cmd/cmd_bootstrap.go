package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/duke-git/lancet/v2/strutil"
	"github.com/orochaa/go-clack/prompts"
	"github.com/orochaa/go-clack/third_party/picocolors"
	"github.com/spf13/cobra"
	"github.com/thediveo/enumflag/v2"

	"github.com/zbiljic/jskit/internal/config"
	"github.com/zbiljic/jskit/pkg/promptsx"
	"github.com/zbiljic/jskit/pkg/scaffold"
)

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Set up shared tooling in a project",
	Long: `Writes the configuration of the selected tools into the project and adds the
matching npm scripts to package.json.

Existing files are never overwritten: the new content is written next to them
with a .jskit suffix. Existing npm scripts are kept.

With --save-config the active configuration is written to .jskit.json, so the
commit types and release settings travel with the project.

Without --yes the command asks which tools to set up; this needs a terminal.`,
	Annotations: map[string]string{"group": "main"},
	Args:        cobra.NoArgs,
	RunE:        runBootstrapE,
}

var bootstrapFlags = bootstrapOptions{
	Yes: false,
}

func bootstrapAddFlags(cmd *cobra.Command) {
	cmd.Flags().VarP(enumflag.NewSlice(&bootstrapFlags.Features, "feature", scaffold.FeatureIds, enumflag.EnumCaseInsensitive), "feature", "F",
		"Tools to set up: "+strings.Join(slice.Map(scaffold.AllFeatures(), func(_ int, f scaffold.Feature) string { return f.String() }), ", "))
	cmd.Flags().StringVarP(&bootstrapFlags.Dir, "dir", "C", "", "Project directory (defaults to the current directory)")
	cmd.Flags().BoolVarP(&bootstrapFlags.Yes, "yes", "y", false, "Run in non-interactive mode, using the defaults for every question")
	cmd.Flags().BoolVar(&bootstrapFlags.SaveConfig, "save-config", false, "Write the active configuration to "+config.FileNames[0])
}

func init() {
	bootstrapAddFlags(bootstrapCmd)

	rootCmd.AddCommand(bootstrapCmd)
}

type bootstrapOptions struct {
	Features   []scaffold.Feature
	Dir        string
	Yes        bool
	SaveConfig bool
}

// bootstrapDefaults returns the answers used without prompting.
func bootstrapDefaults(features []scaffold.Feature) scaffold.Options {
	if len(features) == 0 {
		features = scaffold.AllFeatures()
	}

	opts := scaffold.Options{
		Features:      features,
		ConfigPackage: scaffold.DefaultConfigPackage,
		ESLintScope:   scaffold.DefaultESLintScope,
		ESLintPresets: scaffold.DefaultESLintPresets,
		ReleaseBranch: scaffold.DefaultReleaseBranch,
		NodeImage:     scaffold.DefaultNodeImage,
	}
	if appConfig.Release.Branch != "" {
		opts.ReleaseBranch = appConfig.Release.Branch
	}
	return opts
}

// parsePresets parses a comma separated list of eslint presets.
func parsePresets(value string) ([]string, error) {
	presets := slice.Filter(
		slice.Map(strings.Split(value, ","), func(_ int, s string) string { return strings.TrimSpace(s) }),
		func(_ int, s string) bool { return strutil.IsNotBlank(s) },
	)
	if len(presets) == 0 {
		return nil, errors.New("please enter at least one preset")
	}
	for _, p := range presets {
		if !slices.Contains(scaffold.ESLintPresets, p) {
			return nil, fmt.Errorf("unknown preset %q, available: %s", p, strings.Join(scaffold.ESLintPresets, ", "))
		}
	}
	return presets, nil
}

func bootstrapAsk(opts *scaffold.Options, askFeatures bool) error {
	if askFeatures {
		opts.Features = nil
		for _, f := range scaffold.AllFeatures() {
			ok, err := prompts.Confirm(prompts.ConfirmParams{
				Message:      fmt.Sprintf("Set up %s? %s", picocolors.Cyan(f.String()), picocolors.Gray("("+f.Description()+")")),
				InitialValue: true,
			})
			if err != nil {
				return err
			}
			if ok {
				opts.Features = append(opts.Features, f)
			}
		}
		if len(opts.Features) == 0 {
			return errors.New("no tools selected")
		}
	}

	err := prompts.Workflow(opts).
		ConditionalStep("ConfigPackage",
			func() bool {
				return slices.Contains(opts.Features, scaffold.PrettierFeature) ||
					slices.Contains(opts.Features, scaffold.LintStagedFeature)
			},
			func() (any, error) {
				return prompts.Text(prompts.TextParams{
					Message:      "Package with the shared configs",
					Placeholder:  scaffold.DefaultConfigPackage,
					InitialValue: opts.ConfigPackage,
					Validate: func(value string) error {
						if strutil.IsBlank(value) {
							return errors.New("please enter a package name")
						}
						return nil
					},
				})
			}).
		ConditionalStep("ESLintPresets",
			func() bool {
				return slices.Contains(opts.Features, scaffold.ESLintFeature)
			},
			func() (any, error) {
				value, err := prompts.Text(prompts.TextParams{
					Message:      fmt.Sprintf("ESLint presets %s", picocolors.Gray("("+strings.Join(scaffold.ESLintPresets, ", ")+")")),
					InitialValue: strings.Join(opts.ESLintPresets, ", "),
					Validate: func(value string) error {
						_, err := parsePresets(value)
						return err
					},
				})
				if err != nil {
					return nil, err
				}
				return parsePresets(value)
			}).
		ConditionalStep("ReleaseBranch",
			func() bool {
				return slices.Contains(opts.Features, scaffold.SemanticReleaseFeature)
			},
			func() (any, error) {
				return prompts.Text(prompts.TextParams{
					Message:      "Release branch",
					InitialValue: opts.ReleaseBranch,
					Validate: func(value string) error {
						if strutil.IsBlank(value) {
							return errors.New("please enter a branch")
						}
						return nil
					},
				})
			}).
		ConditionalStep("NodeImage",
			func() bool {
				return slices.Contains(opts.Features, scaffold.SemanticReleaseFeature)
			},
			func() (any, error) {
				return prompts.Text(prompts.TextParams{
					Message:      "CI Node.js image",
					InitialValue: opts.NodeImage,
				})
			}).
		Run()

	return err
}

func runBootstrapE(cmd *cobra.Command, args []string) error {
	dir := bootstrapFlags.Dir
	if dir == "" {
		dir = getWd()
	}

	opts := bootstrapDefaults(bootstrapFlags.Features)

	v, err := appConfig.Vocabulary()
	if err != nil {
		return err
	}
	opts.Vocabulary = v

	if !bootstrapFlags.Yes {
		if err := ensureInteractive(); err != nil {
			return fmt.Errorf("%w: use --yes to run without prompts", err)
		}

		prompts.Intro(picocolors.BgCyan(picocolors.Black(fmt.Sprintf(" %s ", AppName))))
		// in order to show custom error
		injectIntoCommandContextWithKey(cmd, ctxKeyClackPromptStarted{}, true)

		if err := bootstrapAsk(&opts, len(bootstrapFlags.Features) == 0); err != nil {
			if prompts.IsCancel(err) {
				prompts.Outro("Bootstrap cancelled")
				return nil
			}
			return err
		}
	}

	plan, err := scaffold.NewPlan(opts)
	if err != nil {
		return err
	}

	var spinner *prompts.SpinnerController
	if !bootstrapFlags.Yes {
		spinner = prompts.Spinner(prompts.SpinnerOptions{})
		spinner.Start("Writing configuration")
	}

	results, err := scaffold.NewWriter(dir).WriteAll(cmd.Context(), plan.Files)
	if err != nil {
		if spinner != nil {
			spinner.Stop("Error writing configuration", 1)
		}
		return err
	}

	added, err := scaffold.UpdatePackageJSON(filepath.Join(dir, scaffold.PackageJSON), plan.Scripts)
	missingPackageJSON := errors.Is(err, fs.ErrNotExist)
	if err != nil && !missingPackageJSON {
		if spinner != nil {
			spinner.Stop("Error updating package.json", 1)
		}
		return err
	}

	report := bootstrapReport(dir, results, added, missingPackageJSON)

	if bootstrapFlags.SaveConfig {
		path, written, err := bootstrapSaveConfig(dir, appConfig)
		if err != nil {
			if spinner != nil {
				spinner.Stop("Error saving configuration", 1)
			}
			return err
		}
		report += bootstrapConfigReport(dir, path, written)
	}

	if spinner != nil {
		spinner.Stop(fmt.Sprintf("Wrote %d file(s)", len(results)), 0)
		promptsx.Note(report)
		prompts.Outro(fmt.Sprintf("%s Project bootstrapped", picocolors.Green("✔")))
	} else {
		fmt.Fprint(cmd.OutOrStdout(), report)
	}

	return nil
}

func bootstrapReport(dir string, results []scaffold.Result, added []string, missingPackageJSON bool) string {
	var sb strings.Builder

	for _, r := range results {
		rel, err := filepath.Rel(dir, r.Path)
		if err != nil {
			rel = r.Path
		}
		if r.Renamed {
			fmt.Fprintf(&sb, "%s %s (file existed, review and merge)\n", picocolors.Yellow("!"), rel)
		} else {
			fmt.Fprintf(&sb, "%s %s\n", picocolors.Green("+"), rel)
		}
	}

	switch {
	case missingPackageJSON:
		fmt.Fprintf(&sb, "%s no %s found, npm scripts were not added\n", picocolors.Yellow("!"), scaffold.PackageJSON)
	case len(added) > 0:
		fmt.Fprintf(&sb, "%s scripts: %s\n", picocolors.Green("+"), strings.Join(added, ", "))
	}

	return sb.String()
}

// bootstrapSaveConfig writes cfg into dir, unless dir already has a config
// file. It returns the config file and whether it was written.
func bootstrapSaveConfig(dir string, cfg *config.Config) (string, bool, error) {
	for _, name := range config.FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, false, nil
		}
	}

	path := filepath.Join(dir, config.FileNames[0])
	if err := config.Save(cfg, path); err != nil {
		return path, false, err
	}

	return path, true, nil
}

func bootstrapConfigReport(dir, path string, written bool) string {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		rel = path
	}
	if !written {
		return fmt.Sprintf("%s %s (file existed, kept)\n", picocolors.Yellow("!"), rel)
	}
	return fmt.Sprintf("%s %s\n", picocolors.Green("+"), rel)
}
