package confidence

import (
	"math"
	"testing"

	"github.com/skmehra/nudgelab/internal/behavior"
)

func latencySample(latency float64) behavior.Sample {
	return behavior.NewSample("a", latency+1.0, latency, 5, 0)
}

func TestDecay_FastPathIsFullConfidence(t *testing.T) {
	m := &Decay{MinProcessing: 0.5}
	if got := m.Score(latencySample(0.3), nil); got != 1.0 {
		t.Errorf("got BCI %f for latency below min processing time, want exactly 1.0", got)
	}
	if got := m.Score(latencySample(0.5), nil); got != 1.0 {
		t.Errorf("got BCI %f at min processing time, want exactly 1.0", got)
	}
}

func TestDecay_LinearAgainstPersonalAverage(t *testing.T) {
	m := &Decay{MinProcessing: 0.5}
	b := behavior.NewBaseline(2, 1.0)
	// Mean latency 4.5s → denominator 4.0.
	b.Record(latencySample(4.0))
	b.Record(latencySample(5.0))

	got := m.Score(latencySample(2.5), b)
	want := 1 - (2.5-0.5)/4.0
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("got BCI %f, want %f", got, want)
	}
}

func TestDecay_LinearClampsToZero(t *testing.T) {
	m := &Decay{MinProcessing: 0.5}
	b := behavior.NewBaseline(2, 1.0)
	b.Record(latencySample(1.0))
	b.Record(latencySample(2.0))

	if got := m.Score(latencySample(60.0), b); got != 0 {
		t.Errorf("got BCI %f for extreme latency, want clamped 0", got)
	}
}

func TestDecay_LinearDenominatorFloor(t *testing.T) {
	// Empty baseline: avg - min is negative, denominator floors at 1.0.
	m := &Decay{MinProcessing: 0.5}
	got := m.Score(latencySample(1.0), behavior.NewBaseline(2, 1.0))
	want := 1 - (1.0-0.5)/1.0
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("got BCI %f, want %f", got, want)
	}
}

func TestDecay_Exponential(t *testing.T) {
	m := &Decay{MinProcessing: 0.5, Tau: 2.0, Exponential: true}
	got := m.Score(latencySample(2.5), nil)
	want := math.Exp(-(2.5 - 0.5) / 2.0)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("got BCI %f, want %f", got, want)
	}
}

func TestDecay_ExponentialDefaultsTau(t *testing.T) {
	m := &Decay{MinProcessing: 0.5, Exponential: true}
	got := m.Score(latencySample(2.5), nil)
	want := math.Exp(-(2.5 - 0.5) / DefaultTau)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("got BCI %f with zero tau, want default tau result %f", got, want)
	}
}
