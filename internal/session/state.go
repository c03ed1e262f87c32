// Package session orchestrates one participant's assessment run: capture
// products flow in as behavioral samples, confidence and drift are evaluated,
// interventions are resolved, and outcomes accumulate in the recorder.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/skmehra/nudgelab/internal/behavior"
	"github.com/skmehra/nudgelab/internal/confidence"
	"github.com/skmehra/nudgelab/internal/guardian"
	"github.com/skmehra/nudgelab/internal/itembank"
	"github.com/skmehra/nudgelab/internal/ledger"
)

// Phase represents the current phase of the session.
type Phase int

const (
	PhaseActive   Phase = iota // serving questions
	PhaseNudging               // intervention pause + re-answer pending
	PhaseFeedback              // showing answer feedback
	PhaseSummary               // all items resolved
)

// Options configures a new session state.
type Options struct {
	ParticipantID string
	Arm           itembank.Arm
	Items         []itembank.Item
	Baseline      *behavior.Baseline
	Model         confidence.Model
	Detector      *guardian.Detector
	Ledger        ledger.Ledger

	// DifficultySource selects authored bank values or ledger-learned
	// accuracy as p_obj.
	DifficultySource ledger.Source

	// FeedAllArms feeds every original answer into the personal baseline,
	// not only control-arm ones. Re-answer samples never feed it.
	FeedAllArms bool
}

// pendingNudge holds the state of an in-flight intervention.
type pendingNudge struct {
	decision        guardian.Decision
	originalCorrect bool
	originalSample  behavior.Sample
}

// State tracks the runtime state of an active session arm. All counters and
// accumulators are owned here, never process-global, so multiple sessions
// can coexist.
type State struct {
	// SessionID is the UUID for this session.
	SessionID string

	// ParticipantID identifies the participant in ledger rows.
	ParticipantID string

	// Arm is the experimental condition this state runs under.
	Arm itembank.Arm

	// Items is the ordered item sequence for this arm.
	Items []itembank.Item

	// Index is the position of the current item in Items.
	Index int

	// Phase is the current session phase.
	Phase Phase

	// Baseline is the participant's personal signal history. Shared across
	// arms of the same run.
	Baseline *behavior.Baseline

	// Model is the configured confidence strategy.
	Model confidence.Model

	// Detector decides when overconfidence warrants an intervention.
	Detector *guardian.Detector

	// Ledger supplies objective difficulty and records control outcomes.
	Ledger ledger.Ledger

	// Recorder accumulates resolved outcome records.
	Recorder *Recorder

	// Nudges counts triggered interventions.
	Nudges int

	// Corrections counts interventions whose re-answer flipped a wrong
	// original answer to correct.
	Corrections int

	// DifficultySource selects authored vs learned p_obj.
	DifficultySource ledger.Source

	// FeedAllArms extends baseline feeding to experimental-arm answers.
	FeedAllArms bool

	// LedgerErr holds the first ledger failure, reported once at session
	// end; ledger problems never interrupt the run.
	LedgerErr error

	// StartTime is when this arm began.
	StartTime time.Time

	pending *pendingNudge
}

// New creates a session state for one arm. The recorder may be shared
// between arms of the same run.
func New(opts Options, recorder *Recorder) *State {
	if recorder == nil {
		recorder = NewRecorder()
	}
	baseline := opts.Baseline
	if baseline == nil {
		baseline = behavior.NewBaseline(behavior.DefaultMinHistory, behavior.DefaultEpsilon)
	}
	detector := opts.Detector
	if detector == nil {
		detector = guardian.New(guardian.DefaultConfig())
	}
	l := opts.Ledger
	if l == nil {
		l = ledger.NewMemory()
	}
	source := opts.DifficultySource
	if source == "" {
		source = ledger.SourceAuthored
	}
	return &State{
		SessionID:        uuid.NewString(),
		ParticipantID:    opts.ParticipantID,
		Arm:              opts.Arm,
		Items:            opts.Items,
		Phase:            PhaseActive,
		Baseline:         baseline,
		Model:            opts.Model,
		Detector:         detector,
		Ledger:           l,
		Recorder:         recorder,
		DifficultySource: source,
		FeedAllArms:      opts.FeedAllArms,
		StartTime:        time.Now(),
	}
}

// CurrentItem returns the item being answered, or nil when the arm is done.
func (s *State) CurrentItem() *itembank.Item {
	if s.Index < 0 || s.Index >= len(s.Items) {
		return nil
	}
	return &s.Items[s.Index]
}

// Done reports whether every item in this arm has been resolved.
func (s *State) Done() bool {
	return s.Index >= len(s.Items)
}

// AwaitingReanswer reports whether an intervention is pending resolution.
func (s *State) AwaitingReanswer() bool {
	return s.pending != nil
}
