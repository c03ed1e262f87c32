// Package report computes session-level calibration metrics from recorded
// outcomes. All aggregates over empty collections are defined as 0 rather
// than errors.
package report

import (
	"github.com/skmehra/nudgelab/internal/itembank"
	"github.com/skmehra/nudgelab/internal/session"
)

// ArmMetrics holds the calibration metrics for one experimental arm.
type ArmMetrics struct {
	Records      int
	Correct      int
	Brier        float64
	TrapAccuracy float64
	TrapCount    int
}

// Summary is the full session report.
type Summary struct {
	Control      ArmMetrics
	Experimental ArmMetrics

	Nudges          int
	Corrections     int
	NudgeEfficiency float64

	// ErrorReduction is the percentage reduction of trap error rate in the
	// experimental arm relative to control.
	ErrorReduction float64
}

// Brier returns the mean squared error between BCI and outcome, the
// calibration quality of the confidence estimates. Defined as 0 for an
// empty sequence.
func Brier(records []session.OutcomeRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, r := range records {
		d := r.BCI - outcomeValue(r)
		sum += d * d
	}
	return sum / float64(len(records))
}

// TrapAccuracy returns the mean outcome over trap items only. Defined as 0
// when no trap items were recorded.
func TrapAccuracy(records []session.OutcomeRecord) float64 {
	var correct, traps int
	for _, r := range records {
		if !r.IsTrap {
			continue
		}
		traps++
		if r.Correct {
			correct++
		}
	}
	if traps == 0 {
		return 0
	}
	return float64(correct) / float64(traps)
}

// NudgeEfficiency returns corrections per triggered nudge, or 0 when no
// nudges triggered.
func NudgeEfficiency(corrections, nudges int) float64 {
	if nudges <= 0 {
		return 0
	}
	return float64(corrections) / float64(nudges)
}

// ErrorReduction returns (errControl - errExperimental) / errControl x 100
// where err is 1 - trap accuracy. Defined as 0 when the control arm made no
// trap errors.
func ErrorReduction(control, experimental []session.OutcomeRecord) float64 {
	errControl := 1 - TrapAccuracy(control)
	if errControl <= 0 {
		return 0
	}
	errExperimental := 1 - TrapAccuracy(experimental)
	return (errControl - errExperimental) / errControl * 100
}

// Build assembles the session summary from the recorder and the counters
// accumulated per arm.
func Build(recorder *session.Recorder, nudges, corrections int) Summary {
	control := recorder.ByArm(itembank.ArmControl)
	experimental := recorder.ByArm(itembank.ArmExperimental)

	return Summary{
		Control:         armMetrics(control),
		Experimental:    armMetrics(experimental),
		Nudges:          nudges,
		Corrections:     corrections,
		NudgeEfficiency: NudgeEfficiency(corrections, nudges),
		ErrorReduction:  ErrorReduction(control, experimental),
	}
}

func armMetrics(records []session.OutcomeRecord) ArmMetrics {
	traps, correct := 0, 0
	for _, r := range records {
		if r.IsTrap {
			traps++
		}
		if r.Correct {
			correct++
		}
	}
	return ArmMetrics{
		Records:      len(records),
		Correct:      correct,
		Brier:        Brier(records),
		TrapAccuracy: TrapAccuracy(records),
		TrapCount:    traps,
	}
}

func outcomeValue(r session.OutcomeRecord) float64 {
	if r.Correct {
		return 1
	}
	return 0
}
