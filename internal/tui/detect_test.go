package tui

import (
	"testing"
)

func TestDetectMode_EnvOverrides(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"SRCBUNDLE_NON_INTERACTIVE", map[string]string{"SRCBUNDLE_NON_INTERACTIVE": "1"}},
		{"CI", map[string]string{"CI": "true"}},
		{"NO_COLOR", map[string]string{"NO_COLOR": "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SRCBUNDLE_NON_INTERACTIVE", "")
			t.Setenv("CI", "")
			t.Setenv("NO_COLOR", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if got := DetectMode(); got != ModeNonInteractive {
				t.Errorf("DetectMode() = %d, want ModeNonInteractive", got)
			}
			if IsInteractive() {
				t.Error("IsInteractive() = true, want false")
			}
		})
	}
}

func TestDetectMode_NoTerminal(t *testing.T) {
	// Under go test, stderr is a pipe or file rather than a terminal.
	t.Setenv("SRCBUNDLE_NON_INTERACTIVE", "")
	t.Setenv("CI", "")
	t.Setenv("NO_COLOR", "")

	if got := DetectMode(); got != ModeNonInteractive {
		t.Skip("stderr is a terminal in this environment")
	}
}
