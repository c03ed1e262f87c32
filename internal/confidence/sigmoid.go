package confidence

import (
	"math"

	"github.com/skmehra/nudgelab/internal/behavior"
)

// Sigmoid is the normalized multi-signal strategy: each signal is z-scored
// against the participant's own baseline, the weighted sum is squashed
// through a logistic. Faster-than-baseline, more fluent, less self-correcting
// answers read as higher subjective confidence.
type Sigmoid struct {
	Weights Weights
}

func (m *Sigmoid) Name() string { return string(StrategySigmoid) }

// Score returns 1 / (1 + e^-raw) where
// raw = w1*z(speed) + w2*z(velocity) - w3*z(revisions).
// An empty baseline yields all-zero z-scores and therefore exactly 0.5.
func (m *Sigmoid) Score(s behavior.Sample, b *behavior.Baseline) float64 {
	zSpeed := b.ZScore(s.InverseLatency(), behavior.SignalSpeed)
	zVelocity := b.ZScore(s.Velocity(), behavior.SignalVelocity)
	zRevision := b.ZScore(float64(s.Revisions), behavior.SignalRevision)

	raw := m.Weights.Speed*zSpeed + m.Weights.Velocity*zVelocity - m.Weights.Revision*zRevision
	return 1 / (1 + math.Exp(-raw))
}
