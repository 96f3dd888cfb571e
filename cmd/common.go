package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zbiljic/jskit/pkg/commit"
	"github.com/zbiljic/jskit/pkg/release"
)

type (
	ctxKeyClackPromptStarted struct{}
)

func injectIntoCommandContextWithKey[K, V comparable](cmd *cobra.Command, key K, value V) {
	ctx := cmd.Context()
	ctx = context.WithValue(ctx, key, value)
	cmd.SetContext(ctx)
}

// exitError ends the process with code after the command has reported the
// failure itself.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// setupGitWorkDir validates and returns the git working directory
func setupGitWorkDir() (string, error) {
	workDir, err := gitWorkingTreeDir(getWd())
	if err != nil {
		return "", errors.New("The current directory must be a Git repository") //nolint:staticcheck
	}
	return workDir, nil
}

// newClassifier returns a classifier over the configured vocabulary.
func newClassifier() (*commit.Classifier, error) {
	v, err := appConfig.Vocabulary()
	if err != nil {
		return nil, err
	}
	return commit.NewClassifier(v), nil
}

// analyzeHistory classifies the commits since the last release tag.
func analyzeHistory(workDir string) (*historyAnalysis, error) {
	classifier, err := newClassifier()
	if err != nil {
		return nil, err
	}

	history, err := gitHistorySinceLastTag(workDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	analysis, err := release.Analyze(classifier, release.NewResolver(classifier.Vocabulary()), history.Commits)
	if err != nil {
		return nil, err
	}

	return &historyAnalysis{
		Analysis:   analysis,
		Vocabulary: classifier.Vocabulary(),
		LastTag:    history.Tag,
		Current:    history.Version,
		Next:       release.NextVersion(history.Version, analysis.Release),
	}, nil
}
