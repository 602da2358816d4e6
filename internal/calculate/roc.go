package calculate

import (
	"fmt"

	"github.com/quantbar/rater/models"
)

// ROCPeriod is the conventional rate-of-change lookback.
const ROCPeriod = 12

// RateOfChange returns the percentage change of each value against the value
// period bars earlier. The output holds len(seq)-period values.
func RateOfChange(seq []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, fmt.Errorf("%w: ROC period %d", models.ErrInvalidArgument, period)
	}
	if len(seq) < period+1 {
		return nil, fmt.Errorf("%w: ROC period %d needs %d bars, got %d",
			models.ErrInsufficientData, period, period+1, len(seq))
	}

	out := make([]float64, 0, len(seq)-period)
	for t := period; t < len(seq); t++ {
		out = append(out, (seq[t]-seq[t-period])/seq[t-period]*100)
	}
	return out, nil
}
