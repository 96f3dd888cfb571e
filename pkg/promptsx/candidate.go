package promptsx

import (
	"fmt"

	"github.com/orochaa/go-clack/core"
	"github.com/orochaa/go-clack/prompts/symbols"
	"github.com/orochaa/go-clack/prompts/theme"
	"github.com/orochaa/go-clack/third_party/picocolors"
)

// SelectCandidate lets the user pick one of the candidate messages, or mark
// it for editing.
func SelectCandidate(message string, candidates []string) (Choice, error) {
	p := NewCandidatePrompt(CandidatePromptParams{
		Candidates: candidates,
		Render: func(p *CandidatePrompt) string {
			var value string

			switch p.State {
			case core.SubmitState, core.CancelState:
				value = p.Candidates[p.CursorIndex]
			default:
				lines := make([]string, len(p.Candidates))
				for i, c := range p.Candidates {
					lines[i] = renderCandidate(i, c, i == p.CursorIndex)
				}
				value = p.LimitLines(lines, 3)
			}

			return theme.ApplyTheme(theme.ThemeParams[Choice]{
				Ctx:             p.Prompt,
				Message:         message,
				Value:           p.Candidates[p.CursorIndex],
				ValueWithCursor: value,
			})
		},
	})

	return p.Run()
}

func renderCandidate(i int, candidate string, active bool) string {
	key := candidateKey(i)
	if key != "" {
		key = "[" + key + "] "
	}

	if !active {
		return fmt.Sprintf("%s %s%s",
			picocolors.Dim(symbols.RADIO_INACTIVE),
			picocolors.Dim(picocolors.Cyan(key)),
			picocolors.Dim(candidate),
		)
	}

	return fmt.Sprintf("%s %s%s %s",
		picocolors.Green(symbols.RADIO_ACTIVE),
		picocolors.Cyan(key),
		candidate,
		picocolors.Gray("("+string(EditKey)+" to edit)"),
	)
}
