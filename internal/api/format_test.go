package api

import (
	"testing"

	"textsim/internal/textutil"
)

func TestFormatScore(t *testing.T) {
	tests := []struct {
		name      string
		score     float64
		precision int
		want      string
	}{
		{"sentinel", textutil.NotComputable, 4, "-1"},
		{"zero", 0, 4, "0.0"},
		{"one", 1, 4, "1.0"},
		{"almost one", 0.99999999, 4, "1.0"},
		{"rounds", 0.930612345, 4, "0.9306"},
		{"drops trailing zeros", 0.5, 4, "0.5"},
		{"rounds up", 0.59758, 4, "0.5976"},
		{"two places", 0.930612345, 2, "0.93"},
		{"zero places", 0.6, 0, "1.0"},
		{"negative precision uses default", 0.123456, -1, "0.1235"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatScore(tt.score, tt.precision); got != tt.want {
				t.Fatalf("FormatScore(%v, %d) = %q, want %q", tt.score, tt.precision, got, tt.want)
			}
		})
	}
}
