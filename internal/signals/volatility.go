package signals

import (
	"github.com/quantbar/rater/internal/calculate"
	"github.com/quantbar/rater/models"
)

// evalBollinger scores a close beyond the outer bands at the latest bar.
// This carries the largest fixed weight of any single rule.
func evalBollinger(s *models.Series, t *Thresholds, res *models.Result) error {
	lower, _, upper, err := calculate.BollingerBands(s.Close, calculate.BollingerPeriod, calculate.BollingerWidth)
	if err != nil {
		return err
	}

	last := s.Close[s.Len()-1]
	if last > upper[len(upper)-1] {
		res.Subtract(t.BollingerPoints, "Price moved above upper Bollinger Band")
	} else if last < lower[len(lower)-1] {
		res.Add(t.BollingerPoints, "Price dropped below lower Bollinger Band")
	}
	return nil
}
