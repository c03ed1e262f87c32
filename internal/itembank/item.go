// Package itembank loads and validates quiz item banks. Item content is
// authored externally; this package only carries the products the session
// needs: prompt, choices, answer matcher, and objective difficulty.
package itembank

import "strings"

// TrapGate is the default objective-difficulty threshold below which an item
// counts as a trap.
const TrapGate = 0.4

// Arm tags which study phase an item belongs to.
type Arm string

const (
	ArmControl      Arm = "control"
	ArmExperimental Arm = "experimental"
)

// Item is one quiz question.
type Item struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Choices []string `json:"choices,omitempty"`

	// Answer is the canonical correct answer, matched case-insensitively.
	Answer string `json:"answer"`

	// Accept lists acceptable answer substrings. When non-empty it replaces
	// exact matching: a submission is correct if it contains any entry.
	Accept []string `json:"accept,omitempty"`

	// PObj is the authored probability that the general population answers
	// correctly. Lower means harder. Zero means unauthored.
	PObj float64 `json:"p_obj"`

	Arm Arm `json:"arm"`
}

// Match reports whether the normalized answer text is correct. Empty or
// malformed answers are simply incorrect.
func (it *Item) Match(answer string) bool {
	norm := strings.ToLower(strings.TrimSpace(answer))
	if norm == "" {
		return false
	}
	if len(it.Accept) > 0 {
		for _, a := range it.Accept {
			if a != "" && strings.Contains(norm, strings.ToLower(strings.TrimSpace(a))) {
				return true
			}
		}
		return false
	}
	return strings.EqualFold(norm, strings.TrimSpace(it.Answer))
}

// IsTrap reports whether the item's authored difficulty is below the gate.
func (it *Item) IsTrap(gate float64) bool {
	return it.PObj < gate
}
