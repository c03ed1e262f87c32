// Package ledger provides the difficulty ledger: objective per-item
// difficulty, either authored or learned from control-group accuracy.
package ledger

import "context"

// DefaultPObj is returned for items with no authored value and no recorded
// history.
const DefaultPObj = 0.5

// Ledger supplies objective difficulty and records control-arm outcomes.
// Both operations fail soft from the session's point of view: a PObj error
// degrades to DefaultPObj and a record error is reported but never fatal.
type Ledger interface {
	// PObj returns the probability that the general population answers the
	// item correctly. Unknown items yield DefaultPObj, not an error.
	PObj(ctx context.Context, itemID string) (float64, error)

	// RecordControlOutcome appends one control-arm attempt.
	RecordControlOutcome(ctx context.Context, participantID, itemID string, correct bool, latencySecs float64) error
}

// Source selects where the session reads objective difficulty from.
type Source string

const (
	// SourceAuthored uses the item bank's p_obj values.
	SourceAuthored Source = "authored"
	// SourceLearned uses ledger-recorded control-group accuracy.
	SourceLearned Source = "learned"
)
