package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/skmehra/nudgelab/internal/config"
	"github.com/skmehra/nudgelab/internal/itembank"
	"github.com/skmehra/nudgelab/internal/ledger"
	"github.com/skmehra/nudgelab/internal/router"
	"github.com/skmehra/nudgelab/internal/screen"
	"github.com/skmehra/nudgelab/internal/screens/assess"
	"github.com/skmehra/nudgelab/internal/ui/components"
	"github.com/skmehra/nudgelab/internal/ui/theme"
)

// HomeScreen is the entry screen: pick an arm and start a run.
type HomeScreen struct {
	menu     components.Menu
	bankName string
	strategy string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. The config, bank, and ledger are threaded
// into whichever assessment the participant starts.
func New(cfg config.Config, bank *itembank.Bank, ldg ledger.Ledger, participantID string, itemLimit int) *HomeScreen {
	start := func(arms []itembank.Arm) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushMsg{
					Screen: assess.New(cfg, bank, ldg, participantID, arms, itemLimit),
				}
			}
		}
	}

	items := []components.MenuItem{
		{
			Label:  "Full study",
			Desc:   "control items first, then the nudged experimental set",
			Action: start([]itembank.Arm{itembank.ArmControl, itembank.ArmExperimental}),
		},
		{
			Label:  "Control arm only",
			Desc:   "answer without interventions, grow your baseline",
			Action: start([]itembank.Arm{itembank.ArmControl}),
		},
		{
			Label:  "Experimental arm only",
			Desc:   "trap items with overconfidence nudges enabled",
			Action: start([]itembank.Arm{itembank.ArmExperimental}),
		},
		{
			Label:  "Quit",
			Action: func() tea.Cmd { return tea.Quit },
		},
	}

	return &HomeScreen{
		menu:     components.NewMenu(items),
		bankName: bank.Name,
		strategy: string(cfg.Strategy),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("nudgelab"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("behavioral confidence and calibration"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))
	b.WriteString("\n")

	info := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("bank: " + h.bankName + "   strategy: " + h.strategy)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, info))

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
