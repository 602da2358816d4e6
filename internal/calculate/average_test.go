package calculate

import (
	"errors"
	"math"
	"testing"

	"github.com/quantbar/rater/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func sequencesAlmostEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !almostEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func TestSMA(t *testing.T) {
	tests := []struct {
		name     string
		seq      []float64
		period   int
		expected []float64
	}{
		{"window of three", []float64{1, 2, 3, 4, 5}, 3, []float64{2, 3, 4}},
		{"full window", []float64{2, 4, 6}, 3, []float64{4}},
		{"window of one", []float64{1, 2, 3}, 1, []float64{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SMA(tt.seq, tt.period)
			if err != nil {
				t.Fatalf("SMA() error = %v", err)
			}
			if !sequencesAlmostEqual(got, tt.expected) {
				t.Errorf("SMA() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSMAOutputLength(t *testing.T) {
	seq := make([]float64, 40)
	for i := range seq {
		seq[i] = float64(i * i % 17)
	}

	for _, period := range []int{1, 5, 14, 40} {
		got, err := SMA(seq, period)
		if err != nil {
			t.Fatalf("SMA(period=%d) error = %v", period, err)
		}
		if want := len(seq) - period + 1; len(got) != want {
			t.Errorf("SMA(period=%d) length = %d, want %d", period, len(got), want)
		}
	}
}

func TestSMAInsufficientData(t *testing.T) {
	if _, err := SMA([]float64{1, 2, 3}, 4); !errors.Is(err, models.ErrInsufficientData) {
		t.Errorf("SMA() error = %v, want ErrInsufficientData", err)
	}
}

func TestEMASeedsFromSMA(t *testing.T) {
	seq := []float64{44.34, 44.09, 44.15, 43.61, 44.33, 44.83, 45.10, 45.42, 45.84, 46.08, 45.89, 46.03}

	for _, period := range []int{3, 5, 10} {
		sma, err := SMA(seq, period)
		if err != nil {
			t.Fatalf("SMA() error = %v", err)
		}
		ema, err := EMA(seq, period)
		if err != nil {
			t.Fatalf("EMA() error = %v", err)
		}
		if !almostEqual(ema[0], sma[0]) {
			t.Errorf("EMA(period=%d)[0] = %v, want SMA[0] = %v", period, ema[0], sma[0])
		}
		if len(ema) != len(sma) {
			t.Errorf("EMA(period=%d) length = %d, want %d", period, len(ema), len(sma))
		}
	}
}

func TestEMARecurrence(t *testing.T) {
	seq := []float64{10, 11, 12, 13, 14}
	got, err := EMA(seq, 3)
	if err != nil {
		t.Fatalf("EMA() error = %v", err)
	}

	// smoothing = 2/(3+1) = 0.5, seeded at mean(10,11,12) = 11.
	expected := []float64{11, 12, 13}
	if !sequencesAlmostEqual(got, expected) {
		t.Errorf("EMA() = %v, want %v", got, expected)
	}
}
