package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zbiljic/jskit/internal/config"
	"github.com/zbiljic/jskit/pkg/delegate"
)

var lintCmd = &cobra.Command{
	Use:   "lint [eslint args...]",
	Short: "Lint the project with eslint",
	Long: `Runs eslint over the project with the shared defaults:

  eslint --ext .js,.jsx,.ts,.tsx --ignore-path .gitignore . [eslint args...]

Every argument is forwarded to eslint and its exit status is returned.`,
	Annotations:        map[string]string{"group": "tools"},
	DisableFlagParsing: true,
	RunE:               runLintE,
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

// runTool runs the configured tool in the working directory.
func runTool(cmd *cobra.Command, key string, def delegate.Tool, args []string, env []string) error {
	opts := appConfig.Tool(key, def).Options(args...)
	opts.CmdDir = getWd()
	opts.Env = env
	opts.Stdout = cmd.OutOrStdout()
	opts.Stderr = cmd.ErrOrStderr()

	logToolRun(opts)

	return delegate.Run(cmd.Context(), opts)
}

func runLintE(cmd *cobra.Command, args []string) error {
	return runTool(cmd, config.ToolLint, delegate.ESLint, args, nil)
}
