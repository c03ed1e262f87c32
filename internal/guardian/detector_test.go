package guardian

import (
	"testing"
	"time"
)

func TestEvaluate_ControlArmNeverNudges(t *testing.T) {
	d := New(DefaultConfig())

	// Maximal overconfidence on a trap item, still no nudge in control.
	dec := d.Evaluate(1.0, 0.0, false)
	if dec.Nudge {
		t.Error("nudge triggered in control arm")
	}
	if dec.DeltaC != 1.0 {
		t.Errorf("got deltaC %f, want 1.0", dec.DeltaC)
	}
}

func TestEvaluate_ThresholdIsExclusive(t *testing.T) {
	d := New(Config{NudgeThreshold: 0.35, TrapGate: 0.4, GateOnTrap: true, Pause: time.Second})

	// deltaC exactly at threshold: no nudge.
	dec := d.Evaluate(0.5, 0.15, true)
	if dec.DeltaC != 0.35 {
		t.Fatalf("got deltaC %f, want 0.35", dec.DeltaC)
	}
	if dec.Nudge {
		t.Error("nudge triggered at threshold, should be exclusive")
	}

	// Just above: nudge.
	if dec := d.Evaluate(0.51, 0.15, true); !dec.Nudge {
		t.Error("no nudge just above threshold")
	}
}

func TestEvaluate_TrapGate(t *testing.T) {
	gated := New(Config{NudgeThreshold: 0.3, TrapGate: 0.4, GateOnTrap: true, Pause: time.Second})
	ungated := New(Config{NudgeThreshold: 0.3, TrapGate: 0.4, GateOnTrap: false, Pause: time.Second})

	// Overconfident on a non-trap item.
	if dec := gated.Evaluate(0.95, 0.6, true); dec.Nudge {
		t.Error("gated detector nudged on non-trap item")
	}
	if dec := ungated.Evaluate(0.95, 0.6, true); !dec.Nudge {
		t.Error("ungated detector should nudge on any overconfident answer")
	}
}

func TestEvaluate_BatAndBallScenario(t *testing.T) {
	d := New(Config{NudgeThreshold: 0.35, TrapGate: 0.4, GateOnTrap: true, Pause: time.Second})

	dec := d.Evaluate(0.9, 0.15, true)
	if dec.DeltaC != 0.75 {
		t.Errorf("got deltaC %f, want 0.75", dec.DeltaC)
	}
	if !dec.IsTrap {
		t.Error("p_obj 0.15 should be a trap")
	}
	if !dec.Nudge {
		t.Error("expected nudge for deltaC 0.75 > 0.35 on trap item")
	}
}

func TestEvaluate_UnderconfidenceNeverNudges(t *testing.T) {
	d := New(DefaultConfig())
	if dec := d.Evaluate(0.1, 0.9, true); dec.Nudge {
		t.Error("nudge triggered for negative deltaC")
	}
}

func TestNew_DefaultsApplied(t *testing.T) {
	d := New(Config{})
	if d.Pause() != DefaultPause {
		t.Errorf("got pause %v, want %v", d.Pause(), DefaultPause)
	}
	// Threshold default 0.55: deltaC 0.5 must not nudge.
	if dec := d.Evaluate(0.7, 0.2, true); dec.Nudge {
		t.Error("zero-config detector should use the 0.55 default threshold")
	}
}
