package assess

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/skmehra/nudgelab/internal/behavior"
	"github.com/skmehra/nudgelab/internal/confidence"
	"github.com/skmehra/nudgelab/internal/config"
	"github.com/skmehra/nudgelab/internal/guardian"
	"github.com/skmehra/nudgelab/internal/itembank"
	"github.com/skmehra/nudgelab/internal/ledger"
	"github.com/skmehra/nudgelab/internal/router"
	"github.com/skmehra/nudgelab/internal/screen"
	"github.com/skmehra/nudgelab/internal/screens/summary"
	"github.com/skmehra/nudgelab/internal/session"
	"github.com/skmehra/nudgelab/internal/ui/components"
	"github.com/skmehra/nudgelab/internal/ui/layout"
)

// mode is the screen-local display state layered over the session phase.
type mode int

const (
	modeAnswering mode = iota
	modePause          // intervention countdown, no input accepted
	modeReanswer       // fresh capture window after the pause
	modeFeedback       // correctness overlay
	modeInterlude      // between arms of a full run
	modeQuitConfirm
)

// AssessScreen runs one or more assessment arms back to back, sharing the
// participant's baseline, ledger, and outcome recorder across them.
type AssessScreen struct {
	cfg           config.Config
	bank          *itembank.Bank
	ldg           ledger.Ledger
	participantID string
	itemLimit     int

	arms   []itembank.Arm
	armIdx int

	baseline *behavior.Baseline
	model    confidence.Model
	detector *guardian.Detector
	recorder *session.Recorder

	state *session.State
	input components.AnswerInput

	mode       mode
	prevMode   mode // restored when quit confirm is dismissed
	countdown  int
	lastResult session.AnswerResult
	lastItem   *itembank.Item

	// nudges and corrections accumulate across arms of the run.
	nudges      int
	corrections int
	ledgerErr   error

	errMsg string
}

var _ screen.Screen = (*AssessScreen)(nil)
var _ screen.KeyHintProvider = (*AssessScreen)(nil)
var _ screen.StatusProvider = (*AssessScreen)(nil)
var _ screen.Modal = (*AssessScreen)(nil)

// countdownTickMsg drives the intervention pause timer.
type countdownTickMsg time.Time

// New creates an assessment over the given arm sequence. An itemLimit of 0
// serves every item in each arm.
func New(cfg config.Config, bank *itembank.Bank, ldg ledger.Ledger, participantID string, arms []itembank.Arm, itemLimit int) *AssessScreen {
	s := &AssessScreen{
		cfg:           cfg,
		bank:          bank,
		ldg:           ldg,
		participantID: participantID,
		itemLimit:     itemLimit,
		arms:          arms,
		baseline:      behavior.NewBaseline(cfg.MinHistory, cfg.Epsilon),
		detector:      guardian.New(cfg.DetectorConfig()),
		recorder:      session.NewRecorder(),
	}

	model, err := confidence.New(cfg.Strategy, cfg.ModelConfig())
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.model = model

	if len(arms) == 0 {
		s.errMsg = "no arms to run"
		return s
	}
	s.startArm()
	return s
}

// startArm builds the session state for the current arm.
func (s *AssessScreen) startArm() {
	arm := s.arms[s.armIdx]
	items := s.bank.ByArm(arm)
	if s.itemLimit > 0 && len(items) > s.itemLimit {
		items = items[:s.itemLimit]
	}
	if len(items) == 0 {
		s.errMsg = fmt.Sprintf("item bank %q has no %s items", s.bank.Name, arm)
		return
	}

	s.state = session.New(session.Options{
		ParticipantID:    s.participantID,
		Arm:              arm,
		Items:            items,
		Baseline:         s.baseline,
		Model:            s.model,
		Detector:         s.detector,
		Ledger:           s.ldg,
		DifficultySource: s.cfg.DifficultySource,
		FeedAllArms:      s.cfg.FeedAllArms,
	}, s.recorder)

	s.mode = modeAnswering
	s.input = components.NewAnswerInput("type your answer", 64)
}

func (s *AssessScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *AssessScreen) Title() string {
	return "Assessment"
}

// Modal keeps escape handling inside this screen while a run is active.
func (s *AssessScreen) Modal() bool {
	return true
}

func (s *AssessScreen) Status() string {
	if s.state == nil {
		return ""
	}
	return fmt.Sprintf("%s · item %d/%d", s.state.Arm, min(s.state.Index+1, len(s.state.Items)), len(s.state.Items))
}

func (s *AssessScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon run"},
			{Key: "N", Description: "Keep going"},
		}
	case modePause:
		return nil
	case modeFeedback, modeInterlude:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Abandon"},
		}
	}
}

func (s *AssessScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case countdownTickMsg:
		return s.handleCountdownTick()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.mode == modeAnswering || s.mode == modeReanswer {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *AssessScreen) handleCountdownTick() (screen.Screen, tea.Cmd) {
	if s.mode != modePause {
		return s, nil
	}
	s.countdown--
	if s.countdown > 0 {
		return s, tickCmd()
	}
	// Pause over: open a fresh capture window for the re-answer.
	s.mode = modeReanswer
	s.input.Reset()
	return s, s.input.Init()
}

func (s *AssessScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopMsg{} }
	}

	switch s.mode {
	case modeQuitConfirm:
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopMsg{} }
		case "n", "N", "esc":
			s.mode = s.prevMode
		}
		return s, nil

	case modePause:
		// The intervention pause cannot be skipped.
		return s, nil

	case modeFeedback:
		return s.advance()

	case modeInterlude:
		s.armIdx++
		s.startArm()
		return s, s.input.Init()

	case modeAnswering, modeReanswer:
		switch key {
		case "esc":
			s.prevMode = s.mode
			s.mode = modeQuitConfirm
			return s, nil
		case "enter":
			return s.submit()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// submit closes the capture window and hands the sample to the session.
func (s *AssessScreen) submit() (screen.Screen, tea.Cmd) {
	if s.input.Value() == "" {
		return s, nil
	}

	sample := s.input.Sample()
	s.lastItem = s.state.CurrentItem()
	ctx := context.Background()

	var result session.AnswerResult
	if s.mode == modeReanswer {
		result = session.HandleReanswer(ctx, s.state, sample)
	} else {
		result = session.HandleAnswer(ctx, s.state, sample)
	}
	s.lastResult = result

	if result.NudgeRequested {
		s.mode = modePause
		s.countdown = int(s.detector.Pause().Round(time.Second).Seconds())
		if s.countdown <= 0 {
			s.mode = modeReanswer
			s.input.Reset()
			return s, s.input.Init()
		}
		return s, tickCmd()
	}

	s.mode = modeFeedback
	return s, nil
}

// advance moves past the feedback overlay to the next item, the next arm,
// or the summary.
func (s *AssessScreen) advance() (screen.Screen, tea.Cmd) {
	if !s.state.Done() {
		s.mode = modeAnswering
		s.input.Reset()
		return s, s.input.Init()
	}

	// Arm finished: roll its counters into the run totals.
	s.nudges += s.state.Nudges
	s.corrections += s.state.Corrections
	if s.ledgerErr == nil {
		s.ledgerErr = s.state.LedgerErr
	}

	if s.armIdx+1 < len(s.arms) {
		s.mode = modeInterlude
		return s, nil
	}

	sum := summary.New(s.recorder, s.nudges, s.corrections, s.ledgerErr)
	return s, func() tea.Msg {
		return router.ReplaceMsg{Screen: sum}
	}
}

// tickCmd returns a 1-second tick for the intervention countdown.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return countdownTickMsg(t)
	})
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
