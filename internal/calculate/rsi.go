package calculate

import (
	"fmt"

	"github.com/quantbar/rater/models"
)

// RSIPeriod is the conventional Wilder lookback for the relative strength
// index.
const RSIPeriod = 14

// RSI returns the relative strength index sequence. Per-bar gains and losses
// are mutually exclusive; the averages are seeded with a plain mean over the
// first period bars and Wilder-smoothed afterwards. A window with zero
// average loss reads as 100, so the output stays within [0, 100] for every
// input. The output holds len(close)-period values.
func RSI(close []float64, period int) ([]float64, error) {
	if len(close) < period+1 {
		return nil, fmt.Errorf("%w: RSI period %d needs %d bars, got %d",
			models.ErrInsufficientData, period, period+1, len(close))
	}

	var gains, losses float64
	for i := 1; i <= period; i++ {
		change := close[i] - close[i-1]
		if change > 0 {
			gains += change
		} else {
			losses -= change
		}
	}
	avgGain := gains / float64(period)
	avgLoss := losses / float64(period)

	out := make([]float64, 0, len(close)-period)
	out = append(out, rsiValue(avgGain, avgLoss))

	for i := period + 1; i < len(close); i++ {
		change := close[i] - close[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		out = append(out, rsiValue(avgGain, avgLoss))
	}
	return out, nil
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}
