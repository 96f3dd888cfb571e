package promptsx

import (
	"os"
	"strconv"

	"github.com/orochaa/go-clack/core"
	"github.com/orochaa/go-clack/core/utils"
	"github.com/orochaa/go-clack/core/validator"
)

// EditKey marks the highlighted candidate for editing.
const EditKey core.KeyName = "e"

// Choice is the outcome of a CandidatePrompt.
type Choice struct {
	Message string
	// Edit is true when the user asked to edit Message before using it.
	Edit bool
}

// CandidatePrompt picks one of several commit message candidates. Digits
// choose a candidate directly, arrows move the cursor and EditKey asks for
// the highlighted one to be edited.
type CandidatePrompt struct {
	core.Prompt[Choice]
	Candidates []string
}

type CandidatePromptParams struct {
	Input      *os.File
	Output     *os.File
	Candidates []string
	Render     func(p *CandidatePrompt) string
}

func NewCandidatePrompt(params CandidatePromptParams) *CandidatePrompt {
	v := validator.NewValidator("CandidatePrompt")
	v.ValidateRender(params.Render)
	v.ValidateOptions(len(params.Candidates))

	var p CandidatePrompt
	p = CandidatePrompt{
		Prompt: *core.NewPrompt(core.PromptParams[Choice]{
			Input:        params.Input,
			Output:       params.Output,
			InitialValue: Choice{Message: params.Candidates[0]},
			CursorIndex:  0,
			Render:       core.WrapRender[Choice](&p, params.Render),
		}),
		Candidates: params.Candidates,
	}

	p.On(core.KeyEvent, func(args ...any) {
		p.handleKeyPress(args[0].(*core.Key))
	})

	return &p
}

// candidateKey returns the key choosing the i-th candidate, empty past nine.
func candidateKey(i int) string {
	if i >= 9 {
		return ""
	}
	return strconv.Itoa(i + 1)
}

func (p *CandidatePrompt) handleKeyPress(key *core.Key) {
	for i, c := range p.Candidates {
		if k := candidateKey(i); k != "" && key.Name == core.KeyName(k) {
			p.State = core.SubmitState
			p.Value = Choice{Message: c}
			p.CursorIndex = i
			return
		}
	}

	switch key.Name {
	case EditKey:
		p.State = core.SubmitState
		p.Value = Choice{Message: p.Candidates[p.CursorIndex], Edit: true}
		return
	case core.UpKey, core.LeftKey:
		p.CursorIndex = utils.MinMaxIndex(p.CursorIndex-1, len(p.Candidates))
	case core.DownKey, core.RightKey:
		p.CursorIndex = utils.MinMaxIndex(p.CursorIndex+1, len(p.Candidates))
	case core.HomeKey:
		p.CursorIndex = 0
	case core.EndKey:
		p.CursorIndex = len(p.Candidates) - 1
	}

	if p.CursorIndex >= 0 && p.CursorIndex < len(p.Candidates) {
		p.Value = Choice{Message: p.Candidates[p.CursorIndex]}
	}
}
