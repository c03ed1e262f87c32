package confidence

import (
	"math"

	"github.com/skmehra/nudgelab/internal/behavior"
)

// DefaultTau is the exponential decay constant used when none is configured.
const DefaultTau = 2.0

// Decay is the single-signal latency strategy for captures that provide
// timing but no keystroke detail. Latencies at or below MinProcessing score
// full confidence; beyond that, confidence falls off linearly relative to
// the personal average latency, or exponentially with constant Tau.
type Decay struct {
	MinProcessing float64
	Tau           float64
	Exponential   bool
}

func (m *Decay) Name() string {
	if m.Exponential {
		return string(StrategyDecayExp)
	}
	return string(StrategyDecay)
}

// Score returns 1.0 for latency <= MinProcessing. Otherwise the linear form
// 1 - (latency - min) / max(1, avgLatency - min), clamped to [0,1], or the
// exponential form e^(-(latency - min)/tau).
func (m *Decay) Score(s behavior.Sample, b *behavior.Baseline) float64 {
	lat := s.FirstLatency()
	if lat <= m.MinProcessing {
		return 1.0
	}

	if m.Exponential {
		tau := m.Tau
		if tau <= 0 {
			tau = DefaultTau
		}
		return clamp01(math.Exp(-(lat - m.MinProcessing) / tau))
	}

	denom := 1.0
	if b != nil {
		if d := b.MeanLatency() - m.MinProcessing; d > denom {
			denom = d
		}
	}
	return clamp01(1 - (lat-m.MinProcessing)/denom)
}
