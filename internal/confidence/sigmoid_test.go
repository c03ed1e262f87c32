package confidence

import (
	"math"
	"testing"

	"github.com/skmehra/nudgelab/internal/behavior"
)

func TestSigmoid_EmptyBaselineIsNeutral(t *testing.T) {
	m := &Sigmoid{Weights: DefaultWeights()}
	b := behavior.NewBaseline(2, 1.0)

	s := behavior.NewSample("b", 3.0, 1.2, 12, 1)
	if got := m.Score(s, b); got != 0.5 {
		t.Errorf("got BCI %f with empty baseline, want exactly 0.5", got)
	}
}

func TestSigmoid_FastFluentAnswerScoresHigh(t *testing.T) {
	m := &Sigmoid{Weights: DefaultWeights()}
	b := behavior.NewBaseline(2, 0.001)

	// Slow, hesitant baseline.
	b.Record(behavior.NewSample("a", 8.0, 4.0, 8, 3))
	b.Record(behavior.NewSample("a", 10.0, 5.0, 6, 2))
	b.Record(behavior.NewSample("a", 9.0, 4.5, 7, 3))

	// Near-instant, fluent, no revisions.
	fast := behavior.NewSample("a", 0.8, 0.2, 10, 0)
	got := m.Score(fast, b)
	if got <= 0.7 {
		t.Errorf("got BCI %f for strongly baseline-beating sample, want > 0.7", got)
	}
	if got < 0 || got > 1 {
		t.Errorf("BCI %f out of [0,1]", got)
	}
}

func TestSigmoid_HesitantAnswerScoresLow(t *testing.T) {
	m := &Sigmoid{Weights: DefaultWeights()}
	b := behavior.NewBaseline(2, 0.001)

	b.Record(behavior.NewSample("a", 2.0, 0.5, 10, 0))
	b.Record(behavior.NewSample("a", 2.5, 0.6, 12, 0))
	b.Record(behavior.NewSample("a", 2.2, 0.4, 11, 1))

	// Long hesitation, heavy revision.
	slow := behavior.NewSample("a", 20.0, 12.0, 8, 6)
	if got := m.Score(slow, b); got >= 0.5 {
		t.Errorf("got BCI %f for hesitant sample, want < 0.5", got)
	}
}

func TestSigmoid_RevisionWeightIsNegative(t *testing.T) {
	m := &Sigmoid{Weights: Weights{Revision: 1.0}}
	b := behavior.NewBaseline(2, 0.001)
	b.Record(behavior.NewSample("a", 1.0, 1.0, 10, 0))
	b.Record(behavior.NewSample("a", 1.0, 1.0, 10, 2))

	revised := behavior.NewSample("a", 1.0, 1.0, 10, 5)
	if got := m.Score(revised, b); got >= 0.5 {
		t.Errorf("got BCI %f for above-baseline revisions, want < 0.5", got)
	}
}

func TestSigmoid_SymmetricAroundNeutral(t *testing.T) {
	m := &Sigmoid{Weights: Weights{Velocity: 1.0}}
	b := behavior.NewBaseline(2, 0.001)
	b.Record(behavior.NewSample("a", 1.0, 2.0, 4, 0)) // velocity 2
	b.Record(behavior.NewSample("a", 1.0, 2.0, 8, 0)) // velocity 4

	fast := m.Score(behavior.NewSample("a", 2.0, 1.0, 8, 0), b)  // velocity 4, z=+1
	slowS := m.Score(behavior.NewSample("a", 2.0, 1.0, 4, 0), b) // velocity 2, z=-1
	if math.Abs((fast+slowS)-1.0) > 1e-9 {
		t.Errorf("logistic not symmetric: %f + %f != 1", fast, slowS)
	}
}
