package session

import "github.com/skmehra/nudgelab/internal/itembank"

// OutcomeRecord is one item's resolved result. Created once per item after
// any intervention has resolved; immutable thereafter.
type OutcomeRecord struct {
	ItemID  string
	BCI     float64
	Correct bool
	IsTrap  bool
	Arm     itembank.Arm
}

// Recorder accumulates outcome records partitioned by arm. It performs no
// validation beyond what OutcomeRecord's construction guarantees.
type Recorder struct {
	control      []OutcomeRecord
	experimental []OutcomeRecord
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends the record to its arm's sequence.
func (r *Recorder) Record(rec OutcomeRecord) {
	if rec.Arm == itembank.ArmExperimental {
		r.experimental = append(r.experimental, rec)
		return
	}
	r.control = append(r.control, rec)
}

// ByArm returns the ordered records for one arm.
func (r *Recorder) ByArm(arm itembank.Arm) []OutcomeRecord {
	if arm == itembank.ArmExperimental {
		return r.experimental
	}
	return r.control
}

// Len returns the total number of recorded outcomes.
func (r *Recorder) Len() int {
	return len(r.control) + len(r.experimental)
}
