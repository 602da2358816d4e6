package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/quantbar/rater/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSlope(t *testing.T) {
	tests := []struct {
		name     string
		seq      []float64
		expected float64
	}{
		{"rising", []float64{1, 2, 3, 4, 5}, (1.0 - 5.0) / (0 - 5.0)},
		{"falling", []float64{5, 3, 1}, (5.0 - 1.0) / (0 - 3.0)},
		{"flat", []float64{2, 2, 2}, 0},
		{"too short", []float64{1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slope(tt.seq); !almostEqual(got, tt.expected) {
				t.Errorf("Slope() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPearsonShiftInvariance(t *testing.T) {
	seq := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	shifted := make([]float64, len(seq))
	for i, v := range seq {
		shifted[i] = v + 100
	}

	if a, b := Pearson(seq), Pearson(shifted); !almostEqual(a, b) {
		t.Errorf("Pearson changed under constant shift: %v vs %v", a, b)
	}
}

func TestPearsonNegationFlipsSign(t *testing.T) {
	seq := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	negated := make([]float64, len(seq))
	for i, v := range seq {
		negated[i] = -v
	}

	if a, b := Pearson(seq), Pearson(negated); !almostEqual(a, -b) {
		t.Errorf("Pearson(seq) = %v, want -Pearson(-seq) = %v", a, -b)
	}
}

func TestPearsonConstantSequenceIsNaN(t *testing.T) {
	if got := Pearson([]float64{7, 7, 7, 7}); !math.IsNaN(got) {
		t.Errorf("Pearson(constant) = %v, want NaN", got)
	}
}

func TestPearsonPerfectTrend(t *testing.T) {
	if got := Pearson([]float64{1, 2, 3, 4, 5}); !almostEqual(got, 1) {
		t.Errorf("Pearson(linear rise) = %v, want 1", got)
	}
	if got := Pearson([]float64{5, 4, 3, 2, 1}); !almostEqual(got, -1) {
		t.Errorf("Pearson(linear fall) = %v, want -1", got)
	}
}

func TestStdDev(t *testing.T) {
	// Population deviation: divide by N.
	if got := StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}); !almostEqual(got, 2) {
		t.Errorf("StdDev() = %v, want 2", got)
	}
	if got := StdDev([]float64{3, 3, 3}); got != 0 {
		t.Errorf("StdDev(constant) = %v, want 0", got)
	}
}

func TestDivergenceInvalidStrength(t *testing.T) {
	up := []float64{1, 2, 3, 4, 5}
	down := []float64{5, 4, 3, 2, 1}

	for _, r := range []float64{1.5, -0.1} {
		if _, err := Divergence(up, down, r); !errors.Is(err, models.ErrInvalidArgument) {
			t.Errorf("Divergence(r=%v) error = %v, want ErrInvalidArgument", r, err)
		}
	}
}

func TestDivergence(t *testing.T) {
	tests := []struct {
		name     string
		up, down []float64
		r        float64
		expected bool
	}{
		{"opposite trends", []float64{1, 2, 3, 4, 5}, []float64{5, 4, 3, 2, 1}, 0.5, true},
		{"same direction", []float64{1, 2, 3, 4, 5}, []float64{2, 3, 4, 5, 6}, 0.5, false},
		{"flat up leg", []float64{2, 2, 2, 2, 2}, []float64{5, 4, 3, 2, 1}, 0.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Divergence(tt.up, tt.down, tt.r)
			if err != nil {
				t.Fatalf("Divergence() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("Divergence() = %v, want %v", got, tt.expected)
			}
		})
	}
}
