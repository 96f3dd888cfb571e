package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zbiljic/jskit/internal/config"
	"github.com/zbiljic/jskit/pkg/delegate"
	"github.com/zbiljic/jskit/pkg/envfile"
)

// npmrcContent references the NPM_TOKEN variable; npm expands it when
// publishing, so the token itself is never written.
const npmrcContent = "//registry.npmjs.org/:_authToken=${NPM_TOKEN}"

var publishCmd = &cobra.Command{
	Use:   "publish [lerna args...]",
	Short: "Publish the packages of a monorepo with lerna",
	Long: `Publishes the packages of a monorepo:

  lerna publish --yes --conventional-commits --changelog-preset eslint [lerna args...]

GITHUB_TOKEN and NPM_TOKEN must be defined, in the environment or in a .env
file at the project root. When CI=true an .npmrc referencing NPM_TOKEN is
written first. Every argument is forwarded to lerna.`,
	Annotations:        map[string]string{"group": "tools"},
	DisableFlagParsing: true,
	RunE:               runPublishE,
}

func init() {
	rootCmd.AddCommand(publishCmd)
}

// writeNpmrc writes the .npmrc used by CI runners into dir.
func writeNpmrc(dir string) (string, error) {
	path := filepath.Join(dir, ".npmrc")
	if err := os.WriteFile(path, []byte(npmrcContent), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

func isCI(env envfile.Env) bool {
	return env["CI"] == "true"
}

func runPublishE(cmd *cobra.Command, args []string) error {
	env, err := releaseEnv(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if isCI(env) {
		fmt.Fprintln(cmd.OutOrStdout(), "CI Environment detected")

		if _, err := writeNpmrc(getWd()); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Created .npmrc")
	}

	return runTool(cmd, config.ToolPublish, delegate.Lerna, args, env.Environ())
}
