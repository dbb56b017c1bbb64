package detector_test

import (
	"testing"

	"go.trai.ch/pinto/internal/adapters/detector"
)

func TestIsCI(t *testing.T) {
	tests := []struct {
		name     string
		ciValue  string
		expected bool
	}{
		{
			name:     "CI=true is CI",
			ciValue:  "true",
			expected: true,
		},
		{
			name:     "CI=1 is CI",
			ciValue:  "1",
			expected: true,
		},
		{
			name:     "CI=false is not CI",
			ciValue:  "false",
			expected: false,
		},
		{
			name:     "No CI env var",
			ciValue:  "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CI", tt.ciValue)

			if got := detector.IsCI(); got != tt.expected {
				t.Errorf("IsCI() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestInteractive_NeverInCI(t *testing.T) {
	t.Setenv("CI", "true")

	if detector.Interactive() {
		t.Error("Interactive() = true in CI, expected false")
	}
}
