package behavior

import "math"

// Signal identifies one of the baseline's observed signal histories.
type Signal string

const (
	// SignalSpeed is the inverse first-input latency (1/seconds).
	SignalSpeed Signal = "speed"
	// SignalVelocity is keystrokes per second.
	SignalVelocity Signal = "velocity"
	// SignalRevision is the deletion count per answer.
	SignalRevision Signal = "revision"
)

const (
	// DefaultMinHistory is the minimum number of observations required
	// before a z-score is computed.
	DefaultMinHistory = 2

	// DefaultEpsilon is the floor applied to the standard deviation in the
	// z-score denominator.
	DefaultEpsilon = 1.0
)

// Baseline accumulates a participant's calibration-phase signal histories
// and answers z-score queries against them. Histories are append-only; the
// zero value is not usable, use NewBaseline.
type Baseline struct {
	minHistory int
	epsilon    float64

	speeds     []float64
	latencies  []float64
	velocities []float64
	revisions  []float64
}

// NewBaseline creates an empty baseline. minHistory values below 1 fall back
// to DefaultMinHistory; non-positive epsilon falls back to DefaultEpsilon.
func NewBaseline(minHistory int, epsilon float64) *Baseline {
	if minHistory < 1 {
		minHistory = DefaultMinHistory
	}
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}
	return &Baseline{minHistory: minHistory, epsilon: epsilon}
}

// Record appends the sample's speed, velocity, and revision signals to their
// histories. Raw first-input latency is kept as well for the latency-decay
// confidence strategy.
func (b *Baseline) Record(s Sample) {
	b.speeds = append(b.speeds, s.InverseLatency())
	b.latencies = append(b.latencies, s.FirstLatency())
	b.velocities = append(b.velocities, s.Velocity())
	b.revisions = append(b.revisions, float64(s.Revisions))
}

// Count returns the number of recorded observations for the signal.
func (b *Baseline) Count(sig Signal) int {
	return len(b.history(sig))
}

// ZScore returns (value - mean) / max(std, epsilon) over the signal's full
// history, using population statistics. Returns 0 when fewer than the
// configured minimum observations exist.
func (b *Baseline) ZScore(value float64, sig Signal) float64 {
	hist := b.history(sig)
	if len(hist) < b.minHistory {
		return 0
	}
	mean, std := meanStd(hist)
	if std < b.epsilon {
		std = b.epsilon
	}
	return (value - mean) / std
}

// MeanLatency returns the mean recorded first-input latency in seconds, or 0
// when no latencies have been recorded.
func (b *Baseline) MeanLatency() float64 {
	if len(b.latencies) == 0 {
		return 0
	}
	mean, _ := meanStd(b.latencies)
	return mean
}

func (b *Baseline) history(sig Signal) []float64 {
	switch sig {
	case SignalSpeed:
		return b.speeds
	case SignalVelocity:
		return b.velocities
	case SignalRevision:
		return b.revisions
	default:
		return nil
	}
}

// meanStd computes the population mean and standard deviation.
func meanStd(values []float64) (mean, std float64) {
	if len(values) == 0 {
		return 0, 0
	}
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	var variance float64
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))
	return mean, math.Sqrt(variance)
}
