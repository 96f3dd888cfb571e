package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/orochaa/go-clack/prompts"
	"github.com/orochaa/go-clack/third_party/picocolors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zbiljic/jskit/internal/logging"
	"github.com/zbiljic/jskit/pkg/commit"
	"github.com/zbiljic/jskit/pkg/llm"
	"github.com/zbiljic/jskit/pkg/promptsx"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [message]",
	Short: "Suggest a valid commit message",
	Long: `Asks an LLM to rewrite a rejected commit message so that it follows the commit
format, using the staged changes as context. Only suggestions that pass
validation are offered.

The message is read like commit-msg does. With --write the chosen message
replaces the first line of the message file.`,
	Annotations: map[string]string{"group": "main"},
	Args:        cobra.MaximumNArgs(1),
	RunE:        runSuggestE,
}

var suggestFlags = suggestOptions{
	Provider:       OpenAIProvider,
	CandidateCount: llm.DefaultCandidateCount,
	Yes:            false,
}

func suggestAddFlags(cmd *cobra.Command) {
	addCommonLLMFlags(cmd, &suggestFlags.Provider, &suggestFlags.Model)
	addMessageFileFlag(cmd, &suggestFlags.File)
	cmd.Flags().IntVarP(&suggestFlags.CandidateCount, "count", "n", llm.DefaultCandidateCount, "Number of suggestions to request")
	cmd.Flags().BoolVarP(&suggestFlags.Write, "write", "w", false, "Write the chosen message back to the message file")
	cmd.Flags().BoolVarP(&suggestFlags.Yes, "yes", "y", false, "Run in non-interactive mode, automatically using the first suggestion")
}

func init() {
	suggestAddFlags(suggestCmd)

	rootCmd.AddCommand(suggestCmd)
}

type suggestOptions struct {
	Provider       ProviderType
	Model          string
	File           string
	CandidateCount int
	Write          bool
	Yes            bool
}

// stagedDiff returns the staged diff, empty outside of a repository.
func stagedDiff() string {
	workDir, err := gitWorkingTreeDir(getWd())
	if err != nil || workDir == "" {
		return ""
	}

	_, diff, err := gitDiffStaged(workDir)
	if err != nil {
		logging.L().Debug("failed to read staged diff", zap.Error(err))
		return ""
	}

	return diff
}

func suggestMessages(ctx context.Context, cmd *cobra.Command, classifier *commit.Classifier, rejected string) ([]string, error) {
	aip, err := initializeLLMProvider(ctx, cmd.Flags().Changed("provider"), suggestFlags.Provider, suggestFlags.Model)
	if err != nil {
		return nil, err
	}

	var spinner *prompts.SpinnerController
	if !suggestFlags.Yes {
		spinner = prompts.Spinner(prompts.SpinnerOptions{})
		spinner.Start(fmt.Sprintf("Generating suggestions with %s", aip.String()))
	}

	messages, err := llm.SuggestCommitMessages(ctx, aip, classifier, rejected, stagedDiff(), suggestFlags.CandidateCount)
	if err != nil {
		if spinner != nil {
			spinner.Stop("Error generating suggestions", 1)
		}
		return nil, err
	}

	if spinner != nil {
		spinner.Stop(fmt.Sprintf("%d valid suggestion(s)", len(messages)), 0)
	}

	return messages, nil
}

func suggestHandleSelection(classifier *commit.Classifier, messages []string) (string, error) {
	choice, err := promptsx.SelectCandidate(
		fmt.Sprintf("Pick a commit message to use: %s", picocolors.Gray("(Ctrl+c to exit)")),
		messages,
	)
	if err != nil {
		return "", err
	}

	if !choice.Edit {
		return choice.Message, nil
	}

	return prompts.Text(prompts.TextParams{
		Message:      "Edit the commit message",
		InitialValue: choice.Message,
		Validate: func(value string) error {
			_, err := classifier.Classify(value)
			return err
		},
	})
}

// replaceFirstLine replaces the header of a commit message, keeping its body.
func replaceFirstLine(raw, header string) string {
	if i := strings.IndexByte(raw, '\n'); i >= 0 {
		return header + raw[i:]
	}
	return header + "\n"
}

func runSuggestE(cmd *cobra.Command, args []string) error {
	classifier, err := newClassifier()
	if err != nil {
		return err
	}

	raw, file, err := readCommitMessage(args, suggestFlags.File)
	if err != nil {
		return err
	}

	if m, err := classifier.Classify(raw); err == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Commit message is already valid: %s\n", m)
		return nil
	}

	if !suggestFlags.Yes {
		if err := ensureInteractive(); err != nil {
			return fmt.Errorf("%w: use --yes to run without prompts", err)
		}

		prompts.Intro(picocolors.BgCyan(picocolors.Black(fmt.Sprintf(" %s ", AppName))))
		// in order to show custom error
		injectIntoCommandContextWithKey(cmd, ctxKeyClackPromptStarted{}, true)

		promptsx.Detail("Rejected commit message", raw)
	}

	messages, err := suggestMessages(cmd.Context(), cmd, classifier, raw)
	if err != nil {
		return err
	}

	var message string
	if suggestFlags.Yes {
		message = messages[0]
	} else {
		message, err = suggestHandleSelection(classifier, messages)
		if err != nil {
			if prompts.IsCancel(err) {
				prompts.Outro("Suggestion cancelled")
				return nil
			}
			return err
		}
	}

	if suggestFlags.Write {
		if file == "" {
			return errors.New("--write needs the message to come from a file")
		}
		if err := os.WriteFile(file, []byte(replaceFirstLine(raw, message)), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", file, err)
		}
	}

	if suggestFlags.Yes {
		fmt.Fprintln(cmd.OutOrStdout(), message)
	} else {
		prompts.Outro(fmt.Sprintf("%s %s", picocolors.Green("✔"), message))
	}

	return nil
}
