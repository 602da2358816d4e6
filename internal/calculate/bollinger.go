package calculate

import (
	"fmt"

	"github.com/quantbar/rater/internal/stats"
	"github.com/quantbar/rater/models"
)

// Conventional Bollinger parameters.
const (
	BollingerPeriod = 20
	BollingerWidth  = 2.0
)

// BollingerBands returns the lower, middle and upper bands: the middle is
// the period SMA, the outer bands sit width standard deviations (population,
// per window) away from it. Each band holds len(close)-period+1 values.
func BollingerBands(close []float64, period int, width float64) (lower, middle, upper []float64, err error) {
	middle, err = SMA(close, period)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("bollinger middle band: %w", err)
	}
	if width <= 0 {
		return nil, nil, nil, fmt.Errorf("%w: bollinger width %v", models.ErrInvalidArgument, width)
	}

	lower = make([]float64, len(middle))
	upper = make([]float64, len(middle))
	for i := range middle {
		dev := width * stats.StdDev(close[i:i+period])
		lower[i] = middle[i] - dev
		upper[i] = middle[i] + dev
	}
	return lower, middle, upper, nil
}
