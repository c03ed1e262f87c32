package ledger

import "context"

type tally struct {
	correct  int
	attempts int
}

// Memory is a map-backed Ledger for tests and runs without persistence.
type Memory struct {
	attempts map[string]*tally
}

var _ Ledger = (*Memory)(nil)

// NewMemory creates an empty in-memory ledger.
func NewMemory() *Memory {
	return &Memory{attempts: make(map[string]*tally)}
}

// PObj returns the empirical accuracy for the item, or DefaultPObj when no
// attempts are recorded.
func (m *Memory) PObj(_ context.Context, itemID string) (float64, error) {
	t, ok := m.attempts[itemID]
	if !ok || t.attempts == 0 {
		return DefaultPObj, nil
	}
	return float64(t.correct) / float64(t.attempts), nil
}

// RecordControlOutcome appends one attempt. It never fails.
func (m *Memory) RecordControlOutcome(_ context.Context, _, itemID string, correct bool, _ float64) error {
	t, ok := m.attempts[itemID]
	if !ok {
		t = &tally{}
		m.attempts[itemID] = t
	}
	t.attempts++
	if correct {
		t.correct++
	}
	return nil
}
