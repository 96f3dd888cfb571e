package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zbiljic/jskit/pkg/commit"
	"github.com/zbiljic/jskit/pkg/release"
)

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Render release notes for the unreleased commits",
	Long: `Renders markdown release notes for the commits since the last version tag,
grouped by commit type. Types that do not trigger a release are left out.`,
	Annotations: map[string]string{"group": "release"},
	Args:        cobra.NoArgs,
	RunE:        runChangelogE,
}

var changelogFlags = changelogOptions{}

func changelogAddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&changelogFlags.Title, "title", "t", "", "Title of the notes (defaults to the next version)")
	cmd.Flags().StringVar(&changelogFlags.Output, "output", "", "Write the notes to this file instead of stdout")
}

func init() {
	changelogAddFlags(changelogCmd)

	rootCmd.AddCommand(changelogCmd)
}

type changelogOptions struct {
	Title  string
	Output string
}

func changelogTitle(a *historyAnalysis, title string) string {
	switch {
	case title != "":
		return title
	case a.Release == commit.None:
		return "Unreleased"
	default:
		return "v" + a.Next.String()
	}
}

func runChangelogE(cmd *cobra.Command, args []string) error {
	workDir, err := setupGitWorkDir()
	if err != nil {
		return err
	}

	a, err := analyzeHistory(workDir)
	if err != nil {
		return err
	}

	notes := release.Notes(a.Vocabulary, a.Analysis, changelogTitle(a, changelogFlags.Title))

	if changelogFlags.Output == "" {
		fmt.Fprint(cmd.OutOrStdout(), notes)
		return nil
	}

	if err := os.WriteFile(changelogFlags.Output, []byte(notes), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", changelogFlags.Output, err)
	}

	return nil
}
