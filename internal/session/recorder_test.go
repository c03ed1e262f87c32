package session

import (
	"testing"

	"github.com/skmehra/nudgelab/internal/itembank"
)

func TestRecorder_PartitionsByArm(t *testing.T) {
	r := NewRecorder()
	r.Record(OutcomeRecord{ItemID: "c1", Arm: itembank.ArmControl})
	r.Record(OutcomeRecord{ItemID: "e1", Arm: itembank.ArmExperimental})
	r.Record(OutcomeRecord{ItemID: "c2", Arm: itembank.ArmControl})

	control := r.ByArm(itembank.ArmControl)
	if len(control) != 2 || control[0].ItemID != "c1" || control[1].ItemID != "c2" {
		t.Errorf("unexpected control records: %+v", control)
	}
	experimental := r.ByArm(itembank.ArmExperimental)
	if len(experimental) != 1 || experimental[0].ItemID != "e1" {
		t.Errorf("unexpected experimental records: %+v", experimental)
	}
	if r.Len() != 3 {
		t.Errorf("got len %d, want 3", r.Len())
	}
}

func TestRecorder_Empty(t *testing.T) {
	r := NewRecorder()
	if r.Len() != 0 {
		t.Errorf("got len %d for empty recorder, want 0", r.Len())
	}
	if got := r.ByArm(itembank.ArmControl); len(got) != 0 {
		t.Errorf("got %d control records, want 0", len(got))
	}
}
