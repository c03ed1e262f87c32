package components

import (
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/skmehra/nudgelab/internal/behavior"
	"github.com/skmehra/nudgelab/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput and instruments it with behavioral
// capture: total keystrokes, deletions, and time-to-first-keystroke,
// measured from the moment the prompt appeared.
type AnswerInput struct {
	Model textinput.Model

	promptShown time.Time
	firstKeyAt  time.Time
	keystrokes  int
	revisions   int

	submitted bool
	valid     bool

	now func() time.Time
}

// NewAnswerInput creates a focused answer input and starts its capture
// clock at the current time.
func NewAnswerInput(placeholder string, charLimit int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	a := AnswerInput{
		Model: ti,
		now:   time.Now,
	}
	a.promptShown = a.now()
	return a
}

// Init returns the initial command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update handles messages and records keystroke telemetry.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if key != "enter" {
			if a.firstKeyAt.IsZero() {
				a.firstKeyAt = a.now()
			}
			a.keystrokes++
			if key == "backspace" || key == "delete" || key == "ctrl+w" || key == "ctrl+u" {
				a.revisions++
			}
		}
	}

	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the input, with a result mark once submitted.
func (a AnswerInput) View() string {
	view := a.Model.View()
	if a.submitted {
		if a.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// Submit marks the input as submitted with a correctness result.
func (a *AnswerInput) Submit(valid bool) {
	a.submitted = true
	a.valid = valid
}

// Sample closes out the capture window and builds a behavioral sample
// from everything observed since the prompt appeared.
func (a AnswerInput) Sample() behavior.Sample {
	end := a.now()
	elapsed := end.Sub(a.promptShown).Seconds()

	firstLatency := elapsed
	if !a.firstKeyAt.IsZero() {
		firstLatency = a.firstKeyAt.Sub(a.promptShown).Seconds()
	}

	return behavior.NewSample(a.Model.Value(), elapsed, firstLatency, a.keystrokes, a.revisions)
}

// Reset clears the value and restarts the capture clock for a new prompt.
func (a *AnswerInput) Reset() {
	a.Model.SetValue("")
	a.promptShown = a.now()
	a.firstKeyAt = time.Time{}
	a.keystrokes = 0
	a.revisions = 0
	a.submitted = false
	a.valid = false
}
