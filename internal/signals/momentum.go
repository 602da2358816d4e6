package signals

import (
	"fmt"
	"math"

	"github.com/quantbar/rater/internal/calculate"
	"github.com/quantbar/rater/internal/stats"
	"github.com/quantbar/rater/models"
)

// evalRSI scores the latest RSI against the overbought/oversold bands with
// quartic magnitude scaling and tests a short divergence window against
// price.
func evalRSI(s *models.Series, t *Thresholds, res *models.Result) error {
	rsi, err := calculate.RSI(s.Close, calculate.RSIPeriod)
	if err != nil {
		return err
	}

	latest := rsi[len(rsi)-1]
	switch {
	case latest > t.RSIOverbought:
		pts := math.Pow((latest-t.RSIOverbought)/t.RSIScale, 4) + t.RSIBasePoints
		res.Subtract(pts, fmt.Sprintf("RSI overbought at %.2f", latest))
	case latest < t.RSIOversold:
		pts := math.Pow((t.RSIOversold-latest)/t.RSIScale, 4) + t.RSIBasePoints
		res.Add(pts, fmt.Sprintf("RSI oversold at %.2f", latest))
	}

	if len(rsi) >= t.RSIDivergenceBars {
		price := stats.Tail(s.Close, t.RSIDivergenceBars)
		ind := stats.Tail(rsi, t.RSIDivergenceBars)
		bearish, err := stats.Divergence(price, ind, t.RSIDivergenceR)
		if err != nil {
			return err
		}
		bullish, err := stats.Divergence(ind, price, t.RSIDivergenceR)
		if err != nil {
			return err
		}
		if bearish {
			res.Subtract(t.RSIDivergencePoints, "Price rising while RSI falls (bearish divergence)")
		}
		if bullish {
			res.Add(t.RSIDivergencePoints, "Price falling while RSI rises (bullish divergence)")
		}
	}
	return nil
}

// evalStochastic scores the %K bands with quartic scaling, tests a short
// divergence window and flags bull/bear setups over a longer correlation
// window without adjusting the rating.
func evalStochastic(s *models.Series, t *Thresholds, res *models.Result) error {
	k, _, err := calculate.Stochastic(s.High, s.Low, s.Close)
	if err != nil {
		return err
	}

	latest := k[len(k)-1]
	switch {
	case latest > t.StochOverbought:
		pts := math.Pow((latest-t.StochOverbought)/t.StochScale, 4) + t.StochBasePoints
		res.Subtract(pts, fmt.Sprintf("Stochastic overbought at %.2f", latest))
	case latest < t.StochOversold:
		pts := math.Pow((t.StochOversold-latest)/t.StochScale, 4) + t.StochBasePoints
		res.Add(pts, fmt.Sprintf("Stochastic oversold at %.2f", latest))
	}

	if len(k) >= t.StochDivergenceBars {
		price := stats.Tail(s.Close, t.StochDivergenceBars)
		ind := stats.Tail(k, t.StochDivergenceBars)
		bearish, err := stats.Divergence(price, ind, t.StochDivergenceR)
		if err != nil {
			return err
		}
		bullish, err := stats.Divergence(ind, price, t.StochDivergenceR)
		if err != nil {
			return err
		}
		if bearish {
			res.Subtract(t.StochDivergencePoints, "Price rising while stochastic falls (bearish divergence)")
		}
		if bullish {
			res.Add(t.StochDivergencePoints, "Price falling while stochastic rises (bullish divergence)")
		}
	}

	if len(k) >= t.StochSetupBars {
		price := stats.Tail(s.Close, t.StochSetupBars)
		ind := stats.Tail(k, t.StochSetupBars)
		bull, err := stats.Divergence(ind, price, t.StochSetupR)
		if err != nil {
			return err
		}
		bear, err := stats.Divergence(price, ind, t.StochSetupR)
		if err != nil {
			return err
		}
		if bull {
			res.Note("Stochastic bull setup forming against the price trend")
		}
		if bear {
			res.Note("Stochastic bear setup forming against the price trend")
		}
	}
	return nil
}

// evalMFI scores the money flow index bands with quadratic scaling and tests
// a divergence window against price.
func evalMFI(s *models.Series, t *Thresholds, res *models.Result) error {
	mfi, err := calculate.MFI(s.High, s.Low, s.Close, s.Volume, calculate.MFIPeriod)
	if err != nil {
		return err
	}

	latest := mfi[len(mfi)-1]
	switch {
	case latest > t.MFIOverbought:
		pts := math.Pow((latest-t.MFIOverbought)/t.MFIScale, 2) + t.MFIBasePoints
		res.Subtract(pts, fmt.Sprintf("Money flow index overbought at %.2f", latest))
	case latest < t.MFIOversold:
		pts := math.Pow((t.MFIOversold-latest)/t.MFIScale, 2) + t.MFIBasePoints
		res.Add(pts, fmt.Sprintf("Money flow index oversold at %.2f", latest))
	}

	if len(mfi) >= t.MFIDivergenceBars {
		price := stats.Tail(s.Close, t.MFIDivergenceBars)
		ind := stats.Tail(mfi, t.MFIDivergenceBars)
		bearish, err := stats.Divergence(price, ind, t.MFIDivergenceR)
		if err != nil {
			return err
		}
		bullish, err := stats.Divergence(ind, price, t.MFIDivergenceR)
		if err != nil {
			return err
		}
		if bearish {
			res.Subtract(t.MFIDivergencePoints, "Price rising while money flow falls (bearish divergence)")
		}
		if bullish {
			res.Add(t.MFIDivergencePoints, "Price falling while money flow rises (bullish divergence)")
		}
	}
	return nil
}

// evalROC recognizes a rate-of-change threshold cross only when the trailing
// trend window confirms the same direction, which keeps the rule quiet in
// range-bound markets. It carries the largest weight in the system.
func evalROC(s *models.Series, t *Thresholds, res *models.Result) error {
	roc, err := calculate.RateOfChange(s.Close, calculate.ROCPeriod)
	if err != nil {
		return err
	}
	if s.Len() < t.ROCTrendBars {
		return fmt.Errorf("%w: ROC trend confirmation needs %d bars, got %d",
			models.ErrInsufficientData, t.ROCTrendBars, s.Len())
	}

	trend := stats.Pearson(stats.Tail(s.Close, t.ROCTrendBars))
	latest := roc[len(roc)-1]
	switch {
	case latest > t.ROCLimit && trend > t.ROCTrendR:
		res.Add(t.ROCPoints, fmt.Sprintf("Rate of change up %.1f%% within a confirmed uptrend", latest))
	case latest < -t.ROCLimit && trend < -t.ROCTrendR:
		res.Subtract(t.ROCPoints, fmt.Sprintf("Rate of change down %.1f%% within a confirmed downtrend", latest))
	}
	return nil
}

// evalCCI scores the commodity channel index against its ±limit band.
func evalCCI(s *models.Series, t *Thresholds, res *models.Result) error {
	cci, err := calculate.CCI(s.High, s.Low, s.Close, calculate.CCIPeriod)
	if err != nil {
		return err
	}

	latest := cci[len(cci)-1]
	switch {
	case latest > t.CCILimit:
		res.Subtract(t.CCIPoints, fmt.Sprintf("CCI overbought at %.1f", latest))
	case latest < -t.CCILimit:
		res.Add(t.CCIPoints, fmt.Sprintf("CCI oversold at %.1f", latest))
	}
	return nil
}
