package report

import (
	"fmt"
	"io"
	"strings"
)

// Write prints the plain-text evaluation report, the non-TTY counterpart of
// the summary screen.
func Write(w io.Writer, s Summary) {
	line := strings.Repeat("=", 34)
	fmt.Fprintf(w, "%s\nCALIBRATION REPORT\n%s\n", line, line)

	fmt.Fprintln(w, "Brier score (calibration accuracy):")
	fmt.Fprintf(w, "  Control:      %.4f  (%d items)\n", s.Control.Brier, s.Control.Records)
	fmt.Fprintf(w, "  Experimental: %.4f  (%d items)\n", s.Experimental.Brier, s.Experimental.Records)

	fmt.Fprintln(w, "\nTrap accuracy:")
	fmt.Fprintf(w, "  Control:      %.1f%%  (%d traps)\n", s.Control.TrapAccuracy*100, s.Control.TrapCount)
	fmt.Fprintf(w, "  Experimental: %.1f%%  (%d traps)\n", s.Experimental.TrapAccuracy*100, s.Experimental.TrapCount)

	fmt.Fprintf(w, "\nNudges triggered:  %d\n", s.Nudges)
	fmt.Fprintf(w, "Corrections:       %d\n", s.Corrections)
	fmt.Fprintf(w, "Nudge efficiency:  %.2f\n", s.NudgeEfficiency)
	fmt.Fprintf(w, "Error reduction:   %.1f%%\n", s.ErrorReduction)
}
