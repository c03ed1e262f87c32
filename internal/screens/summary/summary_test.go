package summary

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/skmehra/nudgelab/internal/itembank"
	"github.com/skmehra/nudgelab/internal/session"
)

func testRecorder() *session.Recorder {
	rec := session.NewRecorder()
	rec.Record(session.OutcomeRecord{ItemID: "c1", BCI: 0.6, Correct: true, Arm: itembank.ArmControl})
	rec.Record(session.OutcomeRecord{ItemID: "c2", BCI: 0.4, Correct: false, Arm: itembank.ArmControl})
	rec.Record(session.OutcomeRecord{ItemID: "e1", BCI: 0.8, Correct: true, IsTrap: true, Arm: itembank.ArmExperimental})
	return rec
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testRecorder(), 2, 1, nil)
	if s.Title() != "Calibration Report" {
		t.Errorf("Title = %q, want %q", s.Title(), "Calibration Report")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testRecorder(), 2, 1, nil)
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
	if !strings.Contains(view, "Brier") {
		t.Error("expected Brier score in the report")
	}
	if !strings.Contains(view, "Nudges") {
		t.Error("expected nudge counts in the report")
	}
}

func TestSummaryScreen_SkipsEmptyArm(t *testing.T) {
	rec := session.NewRecorder()
	rec.Record(session.OutcomeRecord{ItemID: "c1", BCI: 0.5, Correct: true, Arm: itembank.ArmControl})

	s := New(rec, 0, 0, nil)
	view := s.View(80, 24)
	if strings.Contains(view, "Experimental") {
		t.Error("expected no experimental block for an empty arm")
	}
}

func TestSummaryScreen_LedgerWarning(t *testing.T) {
	s := New(testRecorder(), 0, 0, errors.New("disk full"))
	view := s.View(80, 24)
	if !strings.Contains(view, "disk full") {
		t.Error("expected ledger warning in the report")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testRecorder(), 0, 0, nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testRecorder(), 0, 0, nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testRecorder(), 0, 0, nil)
	if len(s.KeyHints()) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(s.KeyHints()))
	}
}
