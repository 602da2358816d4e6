package calculate

import (
	"fmt"
	"math"

	"github.com/quantbar/rater/models"
)

// ATRPeriod is the conventional Wilder lookback for the average true range.
const ATRPeriod = 14

// TrueRanges returns the true range of every bar after the first: the
// greatest of high-low, |high-prevClose| and |low-prevClose|.
func TrueRanges(high, low, close []float64) []float64 {
	if len(close) < 2 {
		return nil
	}
	tr := make([]float64, 0, len(close)-1)
	for i := 1; i < len(close); i++ {
		highLow := high[i] - low[i]
		highPrevClose := math.Abs(high[i] - close[i-1])
		lowPrevClose := math.Abs(low[i] - close[i-1])
		tr = append(tr, math.Max(highLow, math.Max(highPrevClose, lowPrevClose)))
	}
	return tr
}

// ATR returns the true range sequence and the Wilder-smoothed average true
// range: the first ATR is the plain mean of the first period true ranges,
// each later value is (prev*(period-1) + TR) / period.
func ATR(high, low, close []float64, period int) (tr, atr []float64, err error) {
	tr = TrueRanges(high, low, close)
	if len(tr) < period {
		return nil, nil, fmt.Errorf("%w: ATR period %d needs %d bars, got %d",
			models.ErrInsufficientData, period, period+1, len(close))
	}

	var sum float64
	for _, v := range tr[:period] {
		sum += v
	}
	prev := sum / float64(period)

	atr = make([]float64, 0, len(tr)-period+1)
	atr = append(atr, prev)
	for _, v := range tr[period:] {
		prev = (prev*float64(period-1) + v) / float64(period)
		atr = append(atr, prev)
	}
	return tr, atr, nil
}
