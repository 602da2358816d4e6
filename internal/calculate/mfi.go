package calculate

import (
	"fmt"

	"github.com/quantbar/rater/models"
)

// MFIPeriod is the conventional money flow index lookback.
const MFIPeriod = 14

// MFI returns the money flow index: the ratio of period positive to negative
// money flow (typical price times volume, signed by the typical price's
// direction), mapped onto 0..100 like the RSI. A window with zero negative
// flow reads as 100, keeping the output within [0, 100]. The output holds
// len(close)-period values.
func MFI(high, low, close, volume []float64, period int) ([]float64, error) {
	if len(close) < period+1 {
		return nil, fmt.Errorf("%w: MFI period %d needs %d bars, got %d",
			models.ErrInsufficientData, period, period+1, len(close))
	}

	tp := TypicalPrices(high, low, close)
	positive := make([]float64, len(tp))
	negative := make([]float64, len(tp))
	for i := 1; i < len(tp); i++ {
		flow := tp[i] * volume[i]
		switch {
		case tp[i] > tp[i-1]:
			positive[i] = flow
		case tp[i] < tp[i-1]:
			negative[i] = flow
		}
	}

	out := make([]float64, 0, len(close)-period)
	for t := period; t < len(tp); t++ {
		var pos, neg float64
		for i := t - period + 1; i <= t; i++ {
			pos += positive[i]
			neg += negative[i]
		}
		if neg == 0 {
			out = append(out, 100)
			continue
		}
		ratio := pos / neg
		out = append(out, 100-100/(1+ratio))
	}
	return out, nil
}
