package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zbiljic/jskit/internal/config"
	"github.com/zbiljic/jskit/pkg/delegate"
)

var formatCmd = &cobra.Command{
	Use:   "format [prettier args...]",
	Short: "Format the project with prettier",
	Long: `Runs prettier over the project with the shared defaults:

  prettier "**/*.+(js|json|less|css|ts|tsx|md)" --write --ignore-path .gitignore [prettier args...]

Every argument is forwarded to prettier and its exit status is returned.`,
	Annotations:        map[string]string{"group": "tools"},
	DisableFlagParsing: true,
	RunE:               runFormatE,
}

func init() {
	rootCmd.AddCommand(formatCmd)
}

func runFormatE(cmd *cobra.Command, args []string) error {
	return runTool(cmd, config.ToolFormat, delegate.Prettier, args, nil)
}
