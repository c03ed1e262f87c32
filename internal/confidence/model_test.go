package confidence

import (
	"math/rand"
	"testing"

	"github.com/skmehra/nudgelab/internal/behavior"
)

func TestNew_SelectsStrategy(t *testing.T) {
	tests := []struct {
		strategy Strategy
		wantName string
	}{
		{StrategySigmoid, "sigmoid"},
		{StrategyDecay, "decay"},
		{StrategyDecayExp, "decay-exp"},
	}
	for _, tt := range tests {
		m, err := New(tt.strategy, DefaultConfig())
		if err != nil {
			t.Fatalf("New(%s): %v", tt.strategy, err)
		}
		if m.Name() != tt.wantName {
			t.Errorf("got model %q, want %q", m.Name(), tt.wantName)
		}
	}
}

func TestNew_UnknownStrategy(t *testing.T) {
	if _, err := New("bogus", DefaultConfig()); err == nil {
		t.Error("expected error for unknown strategy")
	}
}

// TestScore_AlwaysInUnitInterval fuzzes both strategies with randomized
// samples, including zero and extreme signal values, and checks the [0,1]
// output contract.
func TestScore_AlwaysInUnitInterval(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	models := []Model{
		&Sigmoid{Weights: DefaultWeights()},
		&Sigmoid{Weights: Weights{Speed: 3, Velocity: 5, Revision: 7}},
		&Decay{MinProcessing: 0.5},
		&Decay{MinProcessing: 0.5, Tau: 2.0, Exponential: true},
	}

	b := behavior.NewBaseline(2, 0.001)
	for i := 0; i < 500; i++ {
		var latency, elapsed float64
		var keystrokes, revisions int
		switch i % 5 {
		case 0: // all-zero sample
		case 1: // extreme values
			latency = rng.Float64() * 1e6
			elapsed = latency + rng.Float64()*1e6
			keystrokes = rng.Intn(1e6)
			revisions = rng.Intn(keystrokes + 1)
		default:
			latency = rng.Float64() * 30
			elapsed = latency + rng.Float64()*30
			keystrokes = rng.Intn(60)
			revisions = rng.Intn(keystrokes + 1)
		}
		s := behavior.NewSample("a", elapsed, latency, keystrokes, revisions)

		for _, m := range models {
			got := m.Score(s, b)
			if got < 0 || got > 1 {
				t.Fatalf("%s: BCI %f out of [0,1] for sample %+v", m.Name(), got, s)
			}
		}

		// Grow the baseline as we go so both sparse and dense histories
		// are exercised.
		if i%3 == 0 {
			b.Record(s)
		}
	}
}
