package signals

import (
	"github.com/quantbar/rater/internal/calculate"
	"github.com/quantbar/rater/internal/stats"
	"github.com/quantbar/rater/models"
)

// evalADLine tests a short divergence window between price and the
// accumulation/distribution line.
func evalADLine(s *models.Series, t *Thresholds, res *models.Result) error {
	ad := calculate.AccumulationDistribution(s.High, s.Low, s.Close, s.Volume)

	price := stats.Tail(s.Close, t.ADLineDivergenceBars)
	ind := stats.Tail(ad, t.ADLineDivergenceBars)
	bearish, err := stats.Divergence(price, ind, t.VolumeDivergenceR)
	if err != nil {
		return err
	}
	bullish, err := stats.Divergence(ind, price, t.VolumeDivergenceR)
	if err != nil {
		return err
	}
	if bearish {
		res.Subtract(t.VolumeDivergencePts, "Accumulation/distribution falling against rising price")
	}
	if bullish {
		res.Add(t.VolumeDivergencePts, "Accumulation/distribution rising against falling price")
	}
	return nil
}

// evalOBV tests a longer divergence window between price and on-balance
// volume.
func evalOBV(s *models.Series, t *Thresholds, res *models.Result) error {
	obv := calculate.OnBalanceVolume(s.Close, s.Volume)

	price := stats.Tail(s.Close, t.OBVDivergenceBars)
	ind := stats.Tail(obv, t.OBVDivergenceBars)
	bearish, err := stats.Divergence(price, ind, t.VolumeDivergenceR)
	if err != nil {
		return err
	}
	bullish, err := stats.Divergence(ind, price, t.VolumeDivergenceR)
	if err != nil {
		return err
	}
	if bearish {
		res.Subtract(t.VolumeDivergencePts, "On-balance volume falling against rising price")
	}
	if bullish {
		res.Add(t.VolumeDivergencePts, "On-balance volume rising against falling price")
	}
	return nil
}
