package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/skmehra/nudgelab/internal/config"
	"github.com/skmehra/nudgelab/internal/itembank"
	"github.com/skmehra/nudgelab/internal/ledger"
	"github.com/skmehra/nudgelab/internal/report"
	"github.com/skmehra/nudgelab/internal/router"
	"github.com/skmehra/nudgelab/internal/screen"
	"github.com/skmehra/nudgelab/internal/screens/assess"
	"github.com/skmehra/nudgelab/internal/screens/home"
	"github.com/skmehra/nudgelab/internal/screens/summary"
	"github.com/skmehra/nudgelab/internal/ui/layout"
)

// Options carries everything a run needs, resolved by the command layer.
type Options struct {
	Config        config.Config
	Bank          *itembank.Bank
	Ledger        ledger.Ledger
	ParticipantID string
	ItemLimit     int

	// Arms, when non-empty, skips the home menu and starts the assessment
	// directly (the --arm flag).
	Arms []itembank.Arm
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	width  int
	height int

	// lastReport remembers the most recent summary screen so the report
	// can be echoed after quitting from anywhere.
	lastReport *summary.SummaryScreen
}

func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Config, opts.Bank, opts.Ledger, opts.ParticipantID, opts.ItemLimit)
	return AppModel{
		router: router.New(homeScreen),
		opts:   opts,
	}
}

func (m AppModel) Init() tea.Cmd {
	if len(m.opts.Arms) > 0 {
		opts := m.opts
		return func() tea.Msg {
			return router.PushMsg{
				Screen: assess.New(opts.Config, opts.Bank, opts.Ledger, opts.ParticipantID, opts.Arms, opts.ItemLimit),
			}
		}
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Modal screens handle escape themselves.
			if mod, ok := m.router.Active().(screen.Modal); ok && mod.Modal() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	if sum, ok := m.router.Active().(*summary.SummaryScreen); ok {
		m.lastReport = sum
	}
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	status := ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if active != nil {
		if hp, ok := active.(screen.KeyHintProvider); ok {
			if hints := hp.KeyHints(); hints != nil {
				footerHints = hints
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program. If the program ends on the report
// screen, the report is echoed to stdout since the alt screen wipes it.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	final, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	if m, ok := final.(AppModel); ok && m.lastReport != nil {
		report.Write(os.Stdout, m.lastReport.Summary())
	}
	return nil
}
