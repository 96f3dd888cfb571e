package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/coreos/go-semver/semver"
	"github.com/orochaa/go-clack/third_party/picocolors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zbiljic/jskit/internal/logging"
	"github.com/zbiljic/jskit/pkg/commit"
	"github.com/zbiljic/jskit/pkg/release"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Determine the next release from the commit history",
	Long: `Classifies every commit since the last version tag and resolves the release
type they trigger, together with the next version.

Commits whose subject does not follow the commit format are skipped and
reported; with --strict they make the command fail.`,
	Annotations: map[string]string{"group": "release"},
	Args:        cobra.NoArgs,
	RunE:        runAnalyzeE,
}

var analyzeFlags = analyzeOptions{
	Format: TextFormat,
	Strict: false,
}

func analyzeAddFlags(cmd *cobra.Command) {
	addFormatFlag(cmd, &analyzeFlags.Format)
	cmd.Flags().BoolVar(&analyzeFlags.Strict, "strict", false, "Fail when a commit does not follow the commit format")
}

func init() {
	analyzeAddFlags(analyzeCmd)

	rootCmd.AddCommand(analyzeCmd)
}

type analyzeOptions struct {
	Format OutputFormat
	Strict bool
}

// historyAnalysis is the analysis of the history since the last release tag.
type historyAnalysis struct {
	*release.Analysis
	Vocabulary *commit.Vocabulary
	LastTag    string
	Current    *semver.Version
	Next       *semver.Version
}

type analysisReport struct {
	LastTag        string             `json:"lastTag,omitempty"`
	CurrentVersion string             `json:"currentVersion,omitempty"`
	NextVersion    string             `json:"nextVersion,omitempty"`
	ReleaseType    commit.ReleaseType `json:"releaseType"`
	Commits        []analysisCommit   `json:"commits"`
	Skipped        []analysisSkipped  `json:"skipped"`
}

type analysisCommit struct {
	Hash    string `json:"hash"`
	Type    string `json:"type"`
	Scope   string `json:"scope,omitempty"`
	Subject string `json:"subject"`
}

type analysisSkipped struct {
	Hash    string `json:"hash"`
	Subject string `json:"subject"`
	Error   string `json:"error"`
}

func newAnalysisReport(a *historyAnalysis) analysisReport {
	r := analysisReport{
		LastTag:     a.LastTag,
		ReleaseType: a.Release,
		Commits: lo.Map(a.Commits, func(c release.AnalyzedCommit, _ int) analysisCommit {
			return analysisCommit{
				Hash:    c.Hash,
				Type:    c.Message.Type,
				Scope:   c.Message.Scope,
				Subject: c.Message.Subject,
			}
		}),
		Skipped: lo.Map(a.Skipped, func(s release.SkippedCommit, _ int) analysisSkipped {
			return analysisSkipped{
				Hash:    s.Hash,
				Subject: s.Subject,
				Error:   s.Err.Error(),
			}
		}),
	}
	if a.Current != nil {
		r.CurrentVersion = a.Current.String()
	}
	if a.Release != commit.None {
		r.NextVersion = a.Next.String()
	}
	return r
}

func writeAnalysisText(w io.Writer, a *historyAnalysis) {
	if a.LastTag != "" {
		fmt.Fprintf(w, "Last release: %s\n", picocolors.Cyan(a.LastTag))
	} else {
		fmt.Fprintln(w, "Last release: none")
	}

	fmt.Fprintf(w, "Commits analyzed: %d\n", len(a.Commits)+len(a.Skipped))
	for _, c := range a.Commits {
		d, _ := a.Vocabulary.Lookup(c.Message.Type)
		fmt.Fprintf(w, "  %s %-8s %s\n", release.ShortHash(c.Hash), d.Release.ID(), c.Message)
	}

	if len(a.Skipped) > 0 {
		fmt.Fprintf(w, "Commits skipped: %d\n", len(a.Skipped))
		for _, s := range a.Skipped {
			fmt.Fprintf(w, "  %s %s\n", release.ShortHash(s.Hash), picocolors.Yellow(s.Subject))
		}
	}

	if a.Release == commit.None {
		fmt.Fprintf(w, "Release type: %s (no release)\n", picocolors.Cyan(a.Release.String()))
		return
	}

	fmt.Fprintf(w, "Release type: %s\n", picocolors.Cyan(a.Release.String()))
	fmt.Fprintf(w, "Next version: %s\n", picocolors.Green(a.Next.String()))
}

func runAnalyzeE(cmd *cobra.Command, args []string) error {
	workDir, err := setupGitWorkDir()
	if err != nil {
		return err
	}

	a, err := analyzeHistory(workDir)
	if err != nil {
		return err
	}

	logging.L().Debug("analyzed history",
		zap.String("last_tag", a.LastTag),
		zap.Int("commits", len(a.Commits)),
		zap.Int("skipped", len(a.Skipped)),
		zap.Stringer("release", a.Release),
	)

	switch analyzeFlags.Format {
	case JSONFormat:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(newAnalysisReport(a)); err != nil {
			return err
		}
	default:
		writeAnalysisText(cmd.OutOrStdout(), a)
	}

	if analyzeFlags.Strict && len(a.Skipped) > 0 {
		return fmt.Errorf("%d commit(s) do not follow the commit format", len(a.Skipped))
	}

	return nil
}
