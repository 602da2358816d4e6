package calculate

import (
	"fmt"
	"math"

	"github.com/quantbar/rater/models"
)

// CCI parameters: conventional period and Lambert's scaling constant.
const (
	CCIPeriod = 20
	cciScale  = 0.015
)

// TypicalPrices returns (high+low+close)/3 per bar.
func TypicalPrices(high, low, close []float64) []float64 {
	out := make([]float64, len(close))
	for i := range close {
		out[i] = (high[i] + low[i] + close[i]) / 3
	}
	return out
}

// CCI returns the commodity channel index: the typical price's distance from
// its period SMA, scaled by 0.015 times the window's mean absolute
// deviation. A window of identical typical prices has zero deviation and
// yields NaN for that element. The output holds len(close)-period+1 values.
func CCI(high, low, close []float64, period int) ([]float64, error) {
	tp := TypicalPrices(high, low, close)
	sma, err := SMA(tp, period)
	if err != nil {
		return nil, fmt.Errorf("%w: CCI period %d over %d bars", models.ErrInsufficientData, period, len(close))
	}

	out := make([]float64, len(sma))
	for i := range sma {
		var mad float64
		for _, v := range tp[i : i+period] {
			mad += math.Abs(v - sma[i])
		}
		mad /= float64(period)
		out[i] = (tp[i+period-1] - sma[i]) / (cciScale * mad)
	}
	return out, nil
}
