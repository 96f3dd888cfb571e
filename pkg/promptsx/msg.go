package promptsx

import (
	"strings"

	"github.com/orochaa/go-clack/prompts"
	"github.com/orochaa/go-clack/prompts/symbols"
	"github.com/orochaa/go-clack/third_party/picocolors"
)

// Note displays lines in a note box.
func Note(lines ...string) {
	prompts.Note(strings.Join(lines, "\n"), prompts.NoteOptions{})
}

// Detail displays a labelled block, such as a rejected commit message, with a
// blue info symbol on the first line and a gray bar on the following ones.
func Detail(label, body string) {
	msg := picocolors.Gray(label)
	if body = strings.TrimRight(body, "\r\n"); body != "" {
		msg += "\n" + body
	}

	prompts.Message(msg, prompts.MessageOptions{
		FirstLine: prompts.MessageLineOptions{
			Start: picocolors.Blue(symbols.INFO),
		},
		NewLine: prompts.MessageLineOptions{
			Start: picocolors.Gray(symbols.BAR),
		},
		LastLine: prompts.MessageLineOptions{
			Start: picocolors.Gray(symbols.BAR),
		},
	})
}
