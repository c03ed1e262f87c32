package itembank

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_LoadsAndSplitsByArm(t *testing.T) {
	b, err := Default()
	if err != nil {
		t.Fatalf("Default(): %v", err)
	}
	if len(b.Items) != 10 {
		t.Fatalf("got %d items, want 10", len(b.Items))
	}

	control := b.ByArm(ArmControl)
	experimental := b.ByArm(ArmExperimental)
	if len(control) != 5 {
		t.Errorf("got %d control items, want 5", len(control))
	}
	if len(experimental) != 5 {
		t.Errorf("got %d experimental items, want 5", len(experimental))
	}

	// Every experimental item in the default bank is a trap.
	for _, it := range experimental {
		if !it.IsTrap(TrapGate) {
			t.Errorf("experimental item %s has p_obj %f, expected trap", it.ID, it.PObj)
		}
	}
}

func TestDefault_FindsBatAndBall(t *testing.T) {
	b, err := Default()
	if err != nil {
		t.Fatalf("Default(): %v", err)
	}
	it := b.Find("bat-and-ball")
	if it == nil {
		t.Fatal("bat-and-ball item missing")
	}
	if it.PObj != 0.15 {
		t.Errorf("got p_obj %f, want 0.15", it.PObj)
	}
	if !it.Match("b") {
		t.Error("choice letter answer should match")
	}
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeBank(t, `{
		"items": [
			{"id": "q1", "prompt": "1+1?", "answer": "2", "p_obj": 0.9, "arm": "control"}
		]
	}`)
	b, err := Load(path)
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if len(b.Items) != 1 || b.Items[0].ID != "q1" {
		t.Errorf("unexpected bank contents: %+v", b)
	}
}

func TestLoad_RejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing prompt", `{"items": [{"id": "q1", "answer": "2", "arm": "control"}]}`},
		{"bad arm", `{"items": [{"id": "q1", "prompt": "?", "answer": "2", "arm": "placebo"}]}`},
		{"p_obj out of range", `{"items": [{"id": "q1", "prompt": "?", "answer": "2", "p_obj": 1.5, "arm": "control"}]}`},
		{"empty items", `{"items": []}`},
		{"unknown field", `{"items": [{"id": "q1", "prompt": "?", "answer": "2", "arm": "control", "hint": "no"}]}`},
		{"not json", `not json at all`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeBank(t, tt.body)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoad_RejectsDuplicateIDs(t *testing.T) {
	path := writeBank(t, `{
		"items": [
			{"id": "q1", "prompt": "1+1?", "answer": "2", "arm": "control"},
			{"id": "q1", "prompt": "2+2?", "answer": "4", "arm": "control"}
		]
	}`)
	if _, err := Load(path); err == nil {
		t.Error("expected duplicate id error")
	}
}

func writeBank(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bank.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
