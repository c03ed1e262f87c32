// Package behavior holds the raw typing signals captured for each answer
// attempt and the participant's personal baseline statistics derived from
// them.
package behavior

import "strings"

// Sample is an immutable record of one answer attempt's raw signals.
// Create it with NewSample, which normalizes the answer text and enforces
// the signal invariants.
type Sample struct {
	// AnswerText is the submitted answer, trimmed and lower-cased.
	AnswerText string

	// TotalElapsed is the time from prompt display to submission, in seconds.
	TotalElapsed float64

	// FirstInputLatency is the time from prompt display to the first
	// keystroke, in seconds. Zero or negative means it was never measured;
	// FirstLatency falls back to TotalElapsed in that case.
	FirstInputLatency float64

	// Keystrokes is the total number of key presses, including deletions.
	Keystrokes int

	// Revisions is the number of deletions performed.
	Revisions int
}

// NewSample builds a Sample from capture products. Negative durations are
// clamped to zero and Revisions is capped at Keystrokes.
func NewSample(answer string, totalElapsed, firstInputLatency float64, keystrokes, revisions int) Sample {
	if totalElapsed < 0 {
		totalElapsed = 0
	}
	if firstInputLatency < 0 {
		firstInputLatency = 0
	}
	if keystrokes < 0 {
		keystrokes = 0
	}
	if revisions < 0 {
		revisions = 0
	}
	if revisions > keystrokes {
		revisions = keystrokes
	}
	return Sample{
		AnswerText:        strings.ToLower(strings.TrimSpace(answer)),
		TotalElapsed:      totalElapsed,
		FirstInputLatency: firstInputLatency,
		Keystrokes:        keystrokes,
		Revisions:         revisions,
	}
}

// FirstLatency returns the first-input latency, falling back to the total
// elapsed time when the first keystroke was never timed.
func (s Sample) FirstLatency() float64 {
	if s.FirstInputLatency > 0 {
		return s.FirstInputLatency
	}
	return s.TotalElapsed
}

// Velocity returns keystrokes per second, or 0 when no time elapsed.
func (s Sample) Velocity() float64 {
	if s.TotalElapsed <= 0 {
		return 0
	}
	return float64(s.Keystrokes) / s.TotalElapsed
}

// InverseLatency returns the reciprocal of the first-input latency, used as
// the speed signal. Returns 0 when the latency is zero.
func (s Sample) InverseLatency() float64 {
	lat := s.FirstLatency()
	if lat <= 0 {
		return 0
	}
	return 1 / lat
}
