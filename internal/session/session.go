package session

import (
	"context"

	"github.com/skmehra/nudgelab/internal/behavior"
	"github.com/skmehra/nudgelab/internal/guardian"
	"github.com/skmehra/nudgelab/internal/itembank"
	"github.com/skmehra/nudgelab/internal/ledger"
)

// AnswerResult reports what happened to one submitted answer.
type AnswerResult struct {
	// Decision is the drift detector's verdict for the original answer.
	Decision guardian.Decision

	// Correct is the final correctness once the item is resolved. Only
	// meaningful when NudgeRequested is false.
	Correct bool

	// NudgeRequested means the caller must run the intervention protocol:
	// enforce the detector's pause, capture a fresh sample, and call
	// HandleReanswer. The item is not resolved until then.
	NudgeRequested bool

	// Corrected means a re-answer flipped a wrong original to correct.
	Corrected bool
}

// HandleAnswer processes the participant's original answer for the current
// item. It scores the sample, evaluates drift, and either resolves the item
// or requests an intervention.
func HandleAnswer(ctx context.Context, state *State, sample behavior.Sample) AnswerResult {
	item := state.CurrentItem()
	if item == nil || state.pending != nil {
		return AnswerResult{}
	}

	bci := state.Model.Score(sample, state.Baseline)
	correct := item.Match(sample.AnswerText)

	dec := state.Detector.Evaluate(bci, state.pObj(ctx, item), state.Arm == itembank.ArmExperimental)

	if dec.Nudge {
		state.Nudges++
		state.Phase = PhaseNudging
		state.pending = &pendingNudge{
			decision:        dec,
			originalCorrect: correct,
			originalSample:  sample,
		}
		return AnswerResult{Decision: dec, Correct: correct, NudgeRequested: true}
	}

	resolve(ctx, state, item, sample, dec, correct)
	return AnswerResult{Decision: dec, Correct: correct}
}

// HandleReanswer resolves a pending intervention with the re-answer sample.
// The re-answer supersedes the original unconditionally.
func HandleReanswer(ctx context.Context, state *State, sample behavior.Sample) AnswerResult {
	item := state.CurrentItem()
	p := state.pending
	if item == nil || p == nil {
		return AnswerResult{}
	}
	state.pending = nil

	correct := item.Match(sample.AnswerText)
	corrected := correct && !p.originalCorrect
	if corrected {
		state.Corrections++
	}

	// The outcome record keeps the original answer's BCI: the intervention
	// changes the result, not the behavioral estimate that triggered it.
	// The original sample, not the re-answer, feeds the baseline.
	resolve(ctx, state, item, p.originalSample, p.decision, correct)
	return AnswerResult{Decision: p.decision, Correct: correct, Corrected: corrected}
}

// resolve finalizes the current item: records the outcome, feeds the
// baseline and ledger per configuration, and advances to the next item.
func resolve(ctx context.Context, state *State, item *itembank.Item, sample behavior.Sample, dec guardian.Decision, correct bool) {
	state.Recorder.Record(OutcomeRecord{
		ItemID:  item.ID,
		BCI:     dec.BCI,
		Correct: correct,
		IsTrap:  dec.IsTrap,
		Arm:     state.Arm,
	})

	if state.Arm == itembank.ArmControl || state.FeedAllArms {
		state.Baseline.Record(sample)
	}

	if state.Arm == itembank.ArmControl {
		err := state.Ledger.RecordControlOutcome(ctx, state.ParticipantID, item.ID, correct, sample.FirstLatency())
		if err != nil && state.LedgerErr == nil {
			state.LedgerErr = err
		}
	}

	state.Index++
	if state.Done() {
		state.Phase = PhaseSummary
	} else {
		state.Phase = PhaseActive
	}
}

// pObj resolves the item's objective difficulty from the configured source.
// Ledger failures degrade to the authored value.
func (s *State) pObj(ctx context.Context, item *itembank.Item) float64 {
	if s.DifficultySource == ledger.SourceLearned {
		p, err := s.Ledger.PObj(ctx, item.ID)
		if err == nil {
			return p
		}
		if s.LedgerErr == nil {
			s.LedgerErr = err
		}
	}
	if item.PObj > 0 {
		return item.PObj
	}
	return ledger.DefaultPObj
}
