package assess

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/skmehra/nudgelab/internal/ui/components"
	"github.com/skmehra/nudgelab/internal/ui/layout"
	"github.com/skmehra/nudgelab/internal/ui/theme"
)

func (s *AssessScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.state == nil {
		return ""
	}

	switch s.mode {
	case modeQuitConfirm:
		return renderQuitConfirm(width)
	case modePause:
		return s.renderPause(width, height)
	case modeReanswer:
		return s.renderReanswer(width, height)
	case modeFeedback:
		return s.renderFeedback(width)
	case modeInterlude:
		return s.renderInterlude(width, height)
	default:
		return s.renderQuestion(width)
	}
}

// renderQuestion shows the active prompt and the answer input.
func (s *AssessScreen) renderQuestion(width int) string {
	item := s.state.CurrentItem()
	if item == nil {
		return ""
	}

	var b strings.Builder

	bar := components.ItemProgress(s.state.Index, len(s.state.Items), min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	promptStyle := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, promptStyle.Render(item.Prompt)))
	b.WriteString("\n\n")

	if len(item.Choices) > 0 {
		choices := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(strings.Join(item.Choices, "   "))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, choices))
		b.WriteString("\n\n")
	}

	answerLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + s.input.View())
	b.WriteString(answerLine)

	return b.String()
}

// renderPause shows the non-skippable intervention countdown.
func (s *AssessScreen) renderPause(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Warning).
		Bold(true).
		Align(lipgloss.Center).
		Render("Hold on."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Align(lipgloss.Center).
		Render("That answer came faster than your usual pace\nfor a question like this."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("Take another look. You can re-answer in %d...", s.countdown)))

	card := theme.NudgeCard.Render(b.String())
	return layout.Center(card, width, height)
}

// renderReanswer shows the prompt again with a fresh input.
func (s *AssessScreen) renderReanswer(width, height int) string {
	item := s.state.CurrentItem()
	if item == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Warning).
		Bold(true).
		Align(lipgloss.Center).
		Render("Second look"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(min(width-12, 64)).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(item.Prompt))
	b.WriteString("\n\n")
	b.WriteString("Answer: " + s.input.View())

	card := theme.NudgeCard.Render(b.String())
	return layout.Center(card, width, height)
}

// renderFeedback shows correctness for the resolved item.
func (s *AssessScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	if s.lastResult.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
		if s.lastResult.Corrected {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Accent).
				Render("The second look paid off."))
		}
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		if s.lastItem != nil {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("Correct answer: %s", s.lastItem.Answer)))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// renderInterlude marks the hand-off between arms of a full run.
func (s *AssessScreen) renderInterlude(width, height int) string {
	next := s.arms[s.armIdx+1]

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Align(lipgloss.Center).
		Render("Phase complete"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("Your typing baseline is set.\nNext up: the %s phase.", next)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Align(lipgloss.Center).
		Render("Press any key when ready."))

	card := theme.Card.Render(b.String())
	return layout.Center(card, width, height)
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Abandon this run?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Unfinished items will not be counted."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, abandon"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
