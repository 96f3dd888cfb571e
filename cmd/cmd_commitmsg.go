package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/orochaa/go-clack/third_party/picocolors"
	"github.com/spf13/cobra"

	"github.com/zbiljic/jskit/pkg/commit"
)

var commitMsgCmd = &cobra.Command{
	Use: "commit-msg [message]",
	Aliases: []string{
		"validate-commit-message",
	},
	Short: "Validate a commit message",
	Long: `Validates a commit message against the commit type vocabulary.

The message is taken from the argument, from --file (as passed by the
commit-msg git hook) or from COMMIT_EDITMSG of the current repository.
Only the first line is validated; it must look like:

  <type>(<optional scope>): <subject>

The command exits with status 1 when the message is rejected.`,
	Annotations: map[string]string{"group": "main"},
	Args:        cobra.MaximumNArgs(1),
	RunE:        runCommitMsgE,
}

var commitMsgFlags = commitMsgOptions{}

func commitMsgAddFlags(cmd *cobra.Command) {
	addMessageFileFlag(cmd, &commitMsgFlags.File)
}

func init() {
	commitMsgAddFlags(commitMsgCmd)

	rootCmd.AddCommand(commitMsgCmd)
}

type commitMsgOptions struct {
	File string
}

// readCommitMessage returns the message argument, or the content of file, or
// of the in-progress commit message of the repository.
func readCommitMessage(args []string, file string) (string, string, error) {
	if len(args) > 0 {
		return args[0], "", nil
	}

	if file == "" {
		workDir, err := gitWorkingTreeDir(getWd())
		if err != nil || workDir == "" {
			workDir = getWd()
		}
		file = gitCommitMessageFile(workDir)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", file, fmt.Errorf("Unable to locate %s", file) //nolint:staticcheck
		}
		return "", file, err
	}

	return string(data), file, nil
}

func writeCommitMsgSuccess(w io.Writer, m commit.Message) {
	fmt.Fprintf(w, "\n%s\n\n", picocolors.Green("Success!"))
	fmt.Fprintf(w, "type: %s\n", picocolors.Cyan(m.Type))
	if m.HasScope() {
		fmt.Fprintf(w, "scope: %s\n", picocolors.Cyan(m.Scope))
	}
	fmt.Fprintf(w, "subject: %s\n\n", picocolors.Cyan(m.Subject))
}

func writeCommitMsgFailure(w io.Writer, raw string, v *commit.Vocabulary, err error) {
	fmt.Fprintf(w, "\n%s\n\n", picocolors.Red("Commit message failed validation"))
	fmt.Fprintf(w, "%s\n\n", strings.TrimRight(raw, "\r\n"))

	var classErr *commit.ClassificationError
	if errors.As(err, &classErr) && errors.Is(classErr, commit.ErrUnknownType) {
		fmt.Fprintf(w, "✖ %s\n\n", picocolors.Yellow(fmt.Sprintf("Unknown type %q", classErr.Type)))
	}

	fmt.Fprintf(w, "✖ %s\n\n", picocolors.Yellow(`Commit message must start with one of the following "types"`))
	fmt.Fprintf(w, "[%s]\n\n", picocolors.Yellow(strings.Join(v.Names(), ", ")))

	fmt.Fprintln(w, "e.g.")
	for _, example := range commitMsgExamples(v) {
		fmt.Fprintln(w, picocolors.Cyan(example))
	}

	fmt.Fprintln(w, "\nThis convention is what allows us to automatically determine when to release a new major/minor/patch version")
}

// commitMsgExamples returns example messages using the vocabulary's feature
// and fix types.
func commitMsgExamples(v *commit.Vocabulary) []string {
	var examples []string
	if t, ok := v.FirstWithRelease(commit.Minor); ok {
		examples = append(examples, t+": Add an awesome new feature")
	}
	if t, ok := v.FirstWithRelease(commit.Patch); ok {
		examples = append(examples, t+"(slides): Fix bug with slides")
	}
	if len(examples) == 0 {
		examples = append(examples, v.Names()[0]+": Describe the change")
	}
	return examples
}

func runCommitMsgE(cmd *cobra.Command, args []string) error {
	classifier, err := newClassifier()
	if err != nil {
		return err
	}

	raw, _, err := readCommitMessage(args, commitMsgFlags.File)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), picocolors.Red(err.Error()))
		return &exitError{code: 1}
	}

	m, err := classifier.Classify(raw)
	if err != nil {
		writeCommitMsgFailure(cmd.ErrOrStderr(), raw, classifier.Vocabulary(), err)
		return &exitError{code: 1}
	}

	writeCommitMsgSuccess(cmd.OutOrStdout(), m)

	return nil
}
