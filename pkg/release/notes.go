package release

import (
	"fmt"
	"strings"

	"github.com/duke-git/lancet/v2/slice"

	"github.com/zbiljic/jskit/pkg/commit"
)

const shortHashLength = 7

// Notes renders markdown release notes for the analyzed commits, one section
// per commit type in NotesOrder. Commits whose type triggers no release are
// not user-facing and are left out.
func Notes(vocabulary *commit.Vocabulary, a *Analysis, title string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "## %s\n", title)

	for _, typ := range NotesOrder(vocabulary) {
		commits := slice.Filter(a.Commits, func(_ int, c AnalyzedCommit) bool {
			return c.Message.Type == typ
		})
		if len(commits) == 0 {
			continue
		}

		fmt.Fprintf(&sb, "\n### %s\n\n", typ)
		for _, c := range commits {
			sb.WriteString("* ")
			if c.Message.HasScope() {
				fmt.Fprintf(&sb, "**%s:** ", c.Message.Scope)
			}
			sb.WriteString(c.Message.Subject)
			if c.Hash != "" {
				fmt.Fprintf(&sb, " (%s)", ShortHash(c.Hash))
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// ShortHash abbreviates a commit hash the way release notes display it.
func ShortHash(hash string) string {
	if len(hash) > shortHashLength {
		return hash[:shortHashLength]
	}
	return hash
}
