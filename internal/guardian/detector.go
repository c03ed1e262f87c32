// Package guardian detects behavioral overconfidence drift and decides when
// to interrupt the participant with a re-answer prompt.
package guardian

import "time"

const (
	// DefaultNudgeThreshold is the deltaC above which a nudge triggers.
	DefaultNudgeThreshold = 0.55

	// DefaultTrapGate is the objective difficulty below which an item is a
	// trap. The gate is exclusive.
	DefaultTrapGate = 0.4

	// DefaultPause is the blocking delay shown before the re-answer prompt.
	DefaultPause = 3 * time.Second
)

// Config tunes the drift detector.
type Config struct {
	// NudgeThreshold is the minimum overconfidence (bci - p_obj, exclusive)
	// that triggers an intervention.
	NudgeThreshold float64

	// TrapGate classifies items with p_obj below it as traps.
	TrapGate float64

	// GateOnTrap restricts interventions to trap items when true.
	GateOnTrap bool

	// Pause is the non-cancellable delay before the re-answer capture.
	Pause time.Duration
}

// DefaultConfig mirrors the original study's detector settings.
func DefaultConfig() Config {
	return Config{
		NudgeThreshold: DefaultNudgeThreshold,
		TrapGate:       DefaultTrapGate,
		GateOnTrap:     true,
		Pause:          DefaultPause,
	}
}

// Decision is the detector's verdict for one answered item.
type Decision struct {
	BCI    float64
	PObj   float64
	DeltaC float64 // BCI - PObj; positive means behavioral overconfidence
	IsTrap bool
	Nudge  bool
}

// Detector compares behavioral confidence against objective difficulty.
type Detector struct {
	cfg Config
}

// New creates a Detector. Zero-valued thresholds fall back to defaults.
func New(cfg Config) *Detector {
	if cfg.NudgeThreshold <= 0 {
		cfg.NudgeThreshold = DefaultNudgeThreshold
	}
	if cfg.TrapGate <= 0 {
		cfg.TrapGate = DefaultTrapGate
	}
	if cfg.Pause <= 0 {
		cfg.Pause = DefaultPause
	}
	return &Detector{cfg: cfg}
}

// Pause returns the configured intervention delay.
func (d *Detector) Pause() time.Duration {
	return d.cfg.Pause
}

// Evaluate computes the drift decision for one answer. Nudges only ever
// trigger in the experimental arm; the control arm is observed, never
// interrupted.
func (d *Detector) Evaluate(bci, pObj float64, experimental bool) Decision {
	dec := Decision{
		BCI:    bci,
		PObj:   pObj,
		DeltaC: bci - pObj,
		IsTrap: pObj < d.cfg.TrapGate,
	}
	if !experimental {
		return dec
	}
	if dec.DeltaC <= d.cfg.NudgeThreshold {
		return dec
	}
	if d.cfg.GateOnTrap && !dec.IsTrap {
		return dec
	}
	dec.Nudge = true
	return dec
}
