package calculate

import (
	"fmt"

	"github.com/quantbar/rater/models"
)

// AroonPeriod is the conventional Aroon lookback.
const AroonPeriod = 25

// Aroon returns the Aroon up, down and oscillator sequences. For each bar,
// up measures how recently the period-high was set ((period - bars since
// high) / period * 100), down does the same for the period-low, and the
// oscillator is their difference. Ties go to the most recent bar. The output
// holds len(close)-period values.
func Aroon(close []float64, period int) (up, down, osc []float64, err error) {
	if period <= 0 {
		return nil, nil, nil, fmt.Errorf("%w: Aroon period %d", models.ErrInvalidArgument, period)
	}
	if len(close) < period+1 {
		return nil, nil, nil, fmt.Errorf("%w: Aroon period %d needs %d bars, got %d",
			models.ErrInsufficientData, period, period+1, len(close))
	}

	n := len(close) - period
	up = make([]float64, 0, n)
	down = make([]float64, 0, n)
	osc = make([]float64, 0, n)

	for t := period; t < len(close); t++ {
		sinceHigh, sinceLow := 0, 0
		highest, lowest := close[t], close[t]
		for back := 1; back <= period; back++ {
			v := close[t-back]
			if v > highest {
				highest = v
				sinceHigh = back
			}
			if v < lowest {
				lowest = v
				sinceLow = back
			}
		}
		u := float64(period-sinceHigh) / float64(period) * 100
		d := float64(period-sinceLow) / float64(period) * 100
		up = append(up, u)
		down = append(down, d)
		osc = append(osc, u-d)
	}
	return up, down, osc, nil
}
