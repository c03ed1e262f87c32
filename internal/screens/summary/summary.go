package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/skmehra/nudgelab/internal/report"
	"github.com/skmehra/nudgelab/internal/router"
	"github.com/skmehra/nudgelab/internal/screen"
	"github.com/skmehra/nudgelab/internal/session"
	"github.com/skmehra/nudgelab/internal/ui/layout"
	"github.com/skmehra/nudgelab/internal/ui/theme"
)

// SummaryScreen displays the calibration report for a finished run.
type SummaryScreen struct {
	summary   report.Summary
	ledgerErr error
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New builds the report from the run's recorder and counters.
func New(recorder *session.Recorder, nudges, corrections int, ledgerErr error) *SummaryScreen {
	return &SummaryScreen{
		summary:   report.Build(recorder, nudges, corrections),
		ledgerErr: ledgerErr,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

// Summary exposes the built report so it can be echoed to stdout after the
// program leaves the alt screen.
func (s *SummaryScreen) Summary() report.Summary {
	return s.summary
}

func (s *SummaryScreen) Title() string {
	return "Calibration Report"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Run complete"))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 56)))

	b.WriteString(s.renderArm("Control", sum.Control, width, divider))
	b.WriteString(s.renderArm("Experimental", sum.Experimental, width, divider))

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Intervention")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n")

	lines := []string{
		fmt.Sprintf("  Nudges triggered     %d", sum.Nudges),
		fmt.Sprintf("  Answers corrected    %d", sum.Corrections),
		fmt.Sprintf("  Nudge efficiency     %.1f%%", sum.NudgeEfficiency*100),
		fmt.Sprintf("  Error reduction      %.1f%%", sum.ErrorReduction),
	}
	for _, line := range lines {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	if s.ledgerErr != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Warning).Render(
				fmt.Sprintf("  difficulty ledger unavailable: %v", s.ledgerErr))))
		b.WriteString("\n")
	}

	return b.String()
}

// renderArm renders one arm's metrics block, skipping arms that ran no items.
func (s *SummaryScreen) renderArm(name string, m report.ArmMetrics, width int, divider string) string {
	if m.Records == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(name)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n")

	lines := []string{
		fmt.Sprintf("  Items answered       %d  (%d correct)", m.Records, m.Correct),
		fmt.Sprintf("  Brier score          %.4f", m.Brier),
	}
	if m.TrapCount > 0 {
		lines = append(lines, fmt.Sprintf("  Trap accuracy        %.1f%%  (%d traps)", m.TrapAccuracy*100, m.TrapCount))
	}
	for _, line := range lines {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
