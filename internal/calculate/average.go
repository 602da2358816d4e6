// Package calculate implements the indicator library: smoothing primitives
// and one file per technical indicator. Every function is a pure transform
// over its input slices; lookback-bound functions fail with
// models.ErrInsufficientData when the input is shorter than the lookback.
package calculate

import (
	"fmt"

	"github.com/quantbar/rater/models"
)

// SMA returns the simple moving average of seq: one arithmetic mean per
// window of length period, oldest to newest. The output holds
// len(seq)-period+1 values.
func SMA(seq []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, fmt.Errorf("%w: SMA period %d", models.ErrInvalidArgument, period)
	}
	if period > len(seq) {
		return nil, fmt.Errorf("%w: SMA period %d over %d values", models.ErrInsufficientData, period, len(seq))
	}

	out := make([]float64, 0, len(seq)-period+1)
	var sum float64
	for i, v := range seq {
		sum += v
		if i >= period {
			sum -= seq[i-period]
		}
		if i >= period-1 {
			out = append(out, sum/float64(period))
		}
	}
	return out, nil
}

// EMA returns the exponential moving average of seq with smoothing
// 2/(period+1). The first value is the first SMA window, so the output is
// index-aligned with SMA's starting offset and has the same length.
func EMA(seq []float64, period int) ([]float64, error) {
	sma, err := SMA(seq, period)
	if err != nil {
		return nil, err
	}

	smoothing := 2 / float64(period+1)
	out := make([]float64, 0, len(sma))
	prev := sma[0]
	out = append(out, prev)
	for _, price := range seq[period:] {
		prev = smoothing*(price-prev) + prev
		out = append(out, prev)
	}
	return out, nil
}
