package behavior

import "testing"

func TestNewSample_NormalizesAnswer(t *testing.T) {
	s := NewSample("  B) $0.05  ", 4.2, 1.1, 10, 2)
	if s.AnswerText != "b) $0.05" {
		t.Errorf("got answer %q, want %q", s.AnswerText, "b) $0.05")
	}
}

func TestNewSample_ClampsNegativeDurations(t *testing.T) {
	s := NewSample("a", -1.0, -0.5, 3, 1)
	if s.TotalElapsed != 0 {
		t.Errorf("got total elapsed %f, want 0", s.TotalElapsed)
	}
	if s.FirstInputLatency != 0 {
		t.Errorf("got latency %f, want 0", s.FirstInputLatency)
	}
}

func TestNewSample_CapsRevisionsAtKeystrokes(t *testing.T) {
	s := NewSample("a", 1.0, 0.5, 3, 7)
	if s.Revisions != 3 {
		t.Errorf("got revisions %d, want 3", s.Revisions)
	}
}

func TestSample_FirstLatencyFallback(t *testing.T) {
	s := NewSample("a", 5.0, 0, 4, 0)
	if got := s.FirstLatency(); got != 5.0 {
		t.Errorf("got first latency %f, want total elapsed 5.0", got)
	}
}

func TestSample_Velocity(t *testing.T) {
	tests := []struct {
		name       string
		elapsed    float64
		keystrokes int
		want       float64
	}{
		{"normal", 2.0, 10, 5.0},
		{"zero elapsed", 0, 10, 0},
		{"no keystrokes", 2.0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSample("a", tt.elapsed, 0.5, tt.keystrokes, 0)
			if got := s.Velocity(); got != tt.want {
				t.Errorf("got velocity %f, want %f", got, tt.want)
			}
		})
	}
}

func TestSample_InverseLatencyZeroGuard(t *testing.T) {
	s := NewSample("a", 0, 0, 0, 0)
	if got := s.InverseLatency(); got != 0 {
		t.Errorf("got inverse latency %f, want 0", got)
	}
}
