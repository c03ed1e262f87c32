package ledger

import (
	"context"
	"fmt"

	"github.com/skmehra/nudgelab/internal/store"
)

// SQLite is a Ledger backed by the on-disk attempt log. Reads aggregate the
// full history in one query, so concurrent sessions always see a consistent
// snapshot.
type SQLite struct {
	store *store.Store
}

var _ Ledger = (*SQLite)(nil)

// NewSQLite wraps an open store.
func NewSQLite(s *store.Store) *SQLite {
	return &SQLite{store: s}
}

// PObj returns the recorded control-group accuracy for the item, or
// DefaultPObj when the item has no history. Partial history is used as-is;
// completeness is never assumed.
func (l *SQLite) PObj(ctx context.Context, itemID string) (float64, error) {
	accs, err := l.store.ItemAccuracies(ctx)
	if err != nil {
		return DefaultPObj, fmt.Errorf("load item accuracies: %w", err)
	}
	a, ok := accs[itemID]
	if !ok || a.Attempts == 0 {
		return DefaultPObj, nil
	}
	return a.Accuracy(), nil
}

// RecordControlOutcome appends one attempt row.
func (l *SQLite) RecordControlOutcome(ctx context.Context, participantID, itemID string, correct bool, latencySecs float64) error {
	return l.store.InsertControlAttempt(ctx, participantID, itemID, correct, latencySecs)
}
