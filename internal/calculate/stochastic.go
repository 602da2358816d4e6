package calculate

import (
	"fmt"

	"github.com/quantbar/rater/models"
)

// Conventional stochastic oscillator periods.
const (
	StochasticPeriod = 14
	StochasticSignal = 3
)

// Stochastic returns %K and its 3-bar SMA %D. %K places the latest close
// within the high/low range of the trailing StochasticPeriod bars, scaled to
// 0..100. A window whose high equals its low yields NaN for that element;
// signal thresholds never match NaN.
func Stochastic(high, low, close []float64) (k, d []float64, err error) {
	if len(close) < StochasticPeriod+StochasticSignal-1 {
		return nil, nil, fmt.Errorf("%w: stochastic needs %d bars, got %d",
			models.ErrInsufficientData, StochasticPeriod+StochasticSignal-1, len(close))
	}

	k = make([]float64, 0, len(close)-StochasticPeriod+1)
	for t := StochasticPeriod - 1; t < len(close); t++ {
		highest := high[t]
		lowest := low[t]
		for i := t - StochasticPeriod + 1; i < t; i++ {
			if high[i] > highest {
				highest = high[i]
			}
			if low[i] < lowest {
				lowest = low[i]
			}
		}
		k = append(k, (close[t]-lowest)/(highest-lowest)*100)
	}

	d, err = SMA(k, StochasticSignal)
	if err != nil {
		return nil, nil, err
	}
	return k, d, nil
}
