package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/orochaa/go-clack/third_party/picocolors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zbiljic/jskit/internal/config"
	"github.com/zbiljic/jskit/internal/logging"
	"github.com/zbiljic/jskit/pkg/delegate"
	"github.com/zbiljic/jskit/pkg/envfile"
	"github.com/zbiljic/jskit/pkg/verify"
)

const verifyArg = "--verify"

var releaseCmd = &cobra.Command{
	Use:   "release [--verify] [semantic-release args...]",
	Short: "Release the project with semantic-release",
	Long: `Runs semantic-release so that a release can also be cut locally:

  semantic-release --allow-same-version --ci false [semantic-release args...]

GITHUB_TOKEN and NPM_TOKEN must be defined, in the environment or in a .env
file at the project root. GH_TOKEN is set to GITHUB_TOKEN.

With --verify both tokens are checked against GitHub and the npm registry
before releasing. Every other argument is forwarded to semantic-release.`,
	Annotations:        map[string]string{"group": "tools"},
	DisableFlagParsing: true,
	RunE:               runReleaseE,
}

func init() {
	rootCmd.AddCommand(releaseCmd)
}

// releaseEnv reads the .env file of the project, validates the required
// variables and returns the environment for the release tools.
func releaseEnv(w io.Writer) (envfile.Env, error) {
	env, err := envfile.Read(filepath.Join(getWd(), envfile.DefaultPath))
	if err != nil {
		return nil, err
	}

	if err := envfile.Validate(env, appConfig.RequiredEnv()...); err != nil {
		var missing *envfile.MissingVarsError
		if errors.As(err, &missing) {
			fmt.Fprintf(w, "\n%s\n\n%s\n\n", picocolors.Red(missing.Error()), missing.Help())
			return nil, &exitError{code: 1}
		}
		return nil, err
	}

	// some tools use GH_TOKEN rather than GITHUB_TOKEN
	if token, ok := env["GITHUB_TOKEN"]; ok {
		env["GH_TOKEN"] = token
	}

	return env, nil
}

// splitReleaseArgs removes the arguments jskit handles itself.
func splitReleaseArgs(args []string) (bool, []string) {
	return slices.Contains(args, verifyArg), lo.Without(args, verifyArg)
}

// verifyTokens checks the release tokens concurrently.
func verifyTokens(ctx context.Context, w io.Writer, v *verify.Verifier, env envfile.Env) error {
	var githubUser, npmUser string

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		githubUser, err = v.GitHubUser(ctx, env["GITHUB_TOKEN"])
		return err
	})
	g.Go(func() error {
		var err error
		npmUser, err = v.NpmUser(ctx, env["NPM_TOKEN"])
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("token verification failed: %w", err)
	}

	fmt.Fprintf(w, "GITHUB_TOKEN belongs to %s\n", picocolors.Cyan(githubUser))
	fmt.Fprintf(w, "NPM_TOKEN belongs to %s\n", picocolors.Cyan(npmUser))

	return nil
}

func logToolRun(opts *delegate.Options) {
	logging.L().Debug("running tool",
		zap.String("name", opts.Name),
		zap.String("args", strings.Join(append(slices.Clone(opts.Args), opts.ExtraArgs...), " ")),
		zap.String("dir", opts.CmdDir),
	)
}

func runReleaseE(cmd *cobra.Command, args []string) error {
	env, err := releaseEnv(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	verifyFirst, args := splitReleaseArgs(args)
	if verifyFirst {
		if err := verifyTokens(cmd.Context(), cmd.OutOrStdout(), verify.New(), env); err != nil {
			return err
		}
	}

	return runTool(cmd, config.ToolRelease, delegate.SemanticRelease, args, env.Environ())
}
