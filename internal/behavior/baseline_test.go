package behavior

import (
	"math"
	"testing"
)

func sampleWith(latency, elapsed float64, keystrokes, revisions int) Sample {
	return NewSample("x", elapsed, latency, keystrokes, revisions)
}

func TestBaseline_ZScoreBelowMinHistory(t *testing.T) {
	b := NewBaseline(2, 0.001)
	if got := b.ZScore(1.0, SignalVelocity); got != 0 {
		t.Errorf("got z-score %f with empty history, want 0", got)
	}

	b.Record(sampleWith(1.0, 2.0, 8, 1))
	if got := b.ZScore(1.0, SignalVelocity); got != 0 {
		t.Errorf("got z-score %f with 1 observation, want 0", got)
	}
}

func TestBaseline_ZScoreAtMeanIsZero(t *testing.T) {
	b := NewBaseline(2, 0.001)
	b.Record(sampleWith(1.0, 2.0, 4, 0)) // velocity 2.0
	b.Record(sampleWith(1.0, 2.0, 8, 0)) // velocity 4.0

	if got := b.ZScore(3.0, SignalVelocity); math.Abs(got) > 1e-12 {
		t.Errorf("got z-score %g at mean, want 0", got)
	}
}

func TestBaseline_ZScorePopulationStats(t *testing.T) {
	b := NewBaseline(2, 0.001)
	// Velocities 2.0 and 4.0: mean 3.0, population std 1.0.
	b.Record(sampleWith(1.0, 2.0, 4, 0))
	b.Record(sampleWith(1.0, 2.0, 8, 0))

	if got := b.ZScore(4.0, SignalVelocity); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("got z-score %f, want 1.0", got)
	}
}

func TestBaseline_ZScoreVarianceFloor(t *testing.T) {
	b := NewBaseline(2, 1.0)
	// Identical revisions: std 0, floored to epsilon 1.0.
	b.Record(sampleWith(1.0, 2.0, 5, 2))
	b.Record(sampleWith(1.0, 2.0, 5, 2))

	if got := b.ZScore(5.0, SignalRevision); math.Abs(got-3.0) > 1e-12 {
		t.Errorf("got z-score %f, want 3.0 (denominator floored to 1)", got)
	}
}

func TestBaseline_MinHistoryConfigurable(t *testing.T) {
	b := NewBaseline(3, 0.001)
	b.Record(sampleWith(1.0, 2.0, 4, 0))
	b.Record(sampleWith(1.0, 2.0, 8, 0))

	if got := b.ZScore(4.0, SignalVelocity); got != 0 {
		t.Errorf("got z-score %f with 2 of 3 required observations, want 0", got)
	}
}

func TestBaseline_MeanLatency(t *testing.T) {
	b := NewBaseline(2, 0.001)
	if got := b.MeanLatency(); got != 0 {
		t.Errorf("got mean latency %f for empty baseline, want 0", got)
	}

	b.Record(sampleWith(1.0, 3.0, 5, 0))
	b.Record(sampleWith(3.0, 5.0, 5, 0))
	if got := b.MeanLatency(); math.Abs(got-2.0) > 1e-12 {
		t.Errorf("got mean latency %f, want 2.0", got)
	}
}

func TestBaseline_SpeedHistoryUsesReciprocals(t *testing.T) {
	b := NewBaseline(2, 0.001)
	// Latencies 1s and 2s record speeds 1.0 and 0.5: mean 0.75, std 0.25.
	b.Record(sampleWith(1.0, 2.0, 5, 0))
	b.Record(sampleWith(2.0, 3.0, 5, 0))

	if got := b.ZScore(1.0, SignalSpeed); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("got speed z-score %f, want 1.0", got)
	}
}

func TestBaseline_CountPerSignal(t *testing.T) {
	b := NewBaseline(2, 0.001)
	b.Record(sampleWith(1.0, 2.0, 5, 1))
	for _, sig := range []Signal{SignalSpeed, SignalVelocity, SignalRevision} {
		if got := b.Count(sig); got != 1 {
			t.Errorf("signal %s: got count %d, want 1", sig, got)
		}
	}
}
