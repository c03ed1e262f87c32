// Package confidence maps a behavioral sample to a Behavioral Confidence
// Index (BCI) in [0,1]. Two interchangeable strategies are provided: a
// multi-signal sigmoid over personal-baseline z-scores, and a single-signal
// latency decay model.
package confidence

import (
	"fmt"

	"github.com/skmehra/nudgelab/internal/behavior"
)

// Strategy selects a confidence model implementation.
type Strategy string

const (
	StrategySigmoid  Strategy = "sigmoid"
	StrategyDecay    Strategy = "decay"
	StrategyDecayExp Strategy = "decay-exp"
)

// Model scores one behavioral sample against the participant's baseline.
// Implementations must return a value in [0,1].
type Model interface {
	Name() string
	Score(s behavior.Sample, b *behavior.Baseline) float64
}

// New builds the model selected by the strategy.
func New(strategy Strategy, cfg Config) (Model, error) {
	switch strategy {
	case StrategySigmoid:
		return &Sigmoid{Weights: cfg.Weights}, nil
	case StrategyDecay:
		return &Decay{MinProcessing: cfg.MinProcessing}, nil
	case StrategyDecayExp:
		return &Decay{MinProcessing: cfg.MinProcessing, Tau: cfg.Tau, Exponential: true}, nil
	default:
		return nil, fmt.Errorf("unknown confidence strategy %q", strategy)
	}
}

// Weights are the signal weights of the sigmoid strategy. They need not sum
// to 1.
type Weights struct {
	Speed    float64 // w1: inverse-latency z-score
	Velocity float64 // w2: velocity z-score
	Revision float64 // w3: revision z-score, subtracted
}

// DefaultWeights mirrors the weighting used in the original study runs.
func DefaultWeights() Weights {
	return Weights{Speed: 0.4, Velocity: 0.3, Revision: 0.3}
}

// Config carries the tunables shared by both strategies.
type Config struct {
	Weights       Weights
	MinProcessing float64 // seconds below which decay confidence is 1.0
	Tau           float64 // exponential decay constant, seconds
}

// DefaultConfig returns the stock model configuration.
func DefaultConfig() Config {
	return Config{
		Weights:       DefaultWeights(),
		MinProcessing: 0.5,
		Tau:           2.0,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
