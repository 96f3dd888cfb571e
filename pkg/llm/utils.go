package llm

import (
	"fmt"
	"strings"

	"github.com/duke-git/lancet/v2/strutil"

	"github.com/zbiljic/jskit/pkg/commit"
)

// vocabularyToString lists the commit types in vocabulary order.
func vocabularyToString(v *commit.Vocabulary) string {
	var entries []string
	for _, e := range v.Entries() {
		entries = append(entries, fmt.Sprintf(`- "%s": "%s"`, e.Name, e.Description))
	}
	return strings.Join(entries, "\n")
}

// extractMessage returns the first meaningful line of a response that may be
// wrapped in a markdown code block or in quotes.
func extractMessage(response string) string {
	for _, line := range strings.Split(strings.TrimSpace(response), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "```") {
			continue
		}
		line = strutil.Trim(line, "`\"'")
		if line != "" {
			return line
		}
	}
	return ""
}

// truncateDiff cuts diff to at most maxLength bytes on a line boundary.
func truncateDiff(diff string, maxLength int) string {
	if maxLength <= 0 || len(diff) <= maxLength {
		return diff
	}
	cut := diff[:maxLength]
	if i := strings.LastIndexByte(cut, '\n'); i > 0 {
		cut = cut[:i]
	}
	return cut + "\n... (truncated)"
}
