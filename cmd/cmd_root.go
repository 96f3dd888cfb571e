package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"

	"github.com/orochaa/go-clack/prompts"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zbiljic/jskit/internal/buildinfo"
	"github.com/zbiljic/jskit/internal/config"
	"github.com/zbiljic/jskit/internal/logging"
	"github.com/zbiljic/jskit/pkg/delegate"
)

// AppName - the name of the application.
const AppName = "jskit"

var rootCmd = &cobra.Command{
	Use:   AppName,
	Short: "Shared JavaScript project tooling",
	Long: `Shared JavaScript project tooling.

Validates commit messages against the commit type vocabulary, derives the next
release from git history, scaffolds tooling configuration and wraps the linter,
formatter and release tools with shared defaults.`,
	Version:           buildinfo.Current().String(),
	PersistentPreRunE: runRootPersistentPreRunE,
	RunE:              runRootE,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

var rootFlags = rootOptions{}

type rootOptions struct {
	Verbose bool
}

func rootAddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVar(&rootFlags.Verbose, "verbose", false, "Write diagnostic logs to stderr")
}

func init() {
	rootAddFlags(rootCmd)
}

// appConfig is loaded before any command runs.
var appConfig = config.NewDefault()

func runRootPersistentPreRunE(cmd *cobra.Command, args []string) error {
	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt)
	cmd.SetContext(ctx)

	log := logging.Init(rootFlags.Verbose)

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	appConfig = cfg

	if path, ok := config.Path(); ok {
		log.Debug("loaded config", zap.String("path", path))
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called my main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer logging.Sync()

	if cmd, err := rootCmd.ExecuteC(); err != nil {
		if strings.Contains(err.Error(), "arg(s)") || strings.Contains(err.Error(), "usage") {
			cmd.Usage() //nolint:errcheck
		}

		// delegated tools already reported their failure
		var toolErr *delegate.ExitError
		if errors.As(err, &toolErr) {
			logging.L().Debug("tool failed", zap.String("tool", toolErr.Name), zap.Int("code", toolErr.Code))
			logging.Sync()
			os.Exit(toolErr.Code)
		}

		var exitErr *exitError
		if errors.As(err, &exitErr) {
			logging.Sync()
			os.Exit(exitErr.code)
		}

		val, ok := cmd.Context().Value(ctxKeyClackPromptStarted{}).(bool)
		if ok && val {
			prompts.ExitOnError(err)
		} else {
			cobra.CheckErr(err)
		}
	}
}

func runRootE(cmd *cobra.Command, args []string) error {
	cmd.Usage() //nolint:errcheck
	return nil
}
