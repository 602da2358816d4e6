package signals

import (
	"fmt"

	"github.com/quantbar/rater/internal/calculate"
	"github.com/quantbar/rater/internal/stats"
	"github.com/quantbar/rater/models"
)

// evalMACD distinguishes zero-line crossings (trailing-window slope and
// correlation must agree with the direction) from signal-line crossovers
// (histogram sign flip on the latest bar).
func evalMACD(s *models.Series, t *Thresholds, res *models.Result) error {
	line, _, hist, err := calculate.MACD(s.Close)
	if err != nil {
		return err
	}
	if len(line) < t.MACDWindow || len(hist) < 2 {
		return fmt.Errorf("%w: MACD window of %d needs %d bars, got %d",
			models.ErrInsufficientData, t.MACDWindow,
			calculate.MACDSlowPeriod-1+t.MACDWindow, s.Len())
	}

	window := stats.Tail(line, t.MACDWindow)
	corr := stats.Pearson(window)
	slope := stats.Slope(window)

	latestLine, prevLine := line[len(line)-1], line[len(line)-2]
	latestHist, prevHist := hist[len(hist)-1], hist[len(hist)-2]

	switch {
	case prevLine <= 0 && latestLine > 0 && slope > t.MACDSlopeMin && corr > 0:
		res.Add(t.MACDPoints, "MACD line crossed above zero")
	case prevLine >= 0 && latestLine < 0 && slope < -t.MACDSlopeMin && corr < 0:
		res.Subtract(t.MACDPoints, "MACD line crossed below zero")
	case prevHist <= 0 && latestHist > 0:
		res.Add(t.MACDPoints, "MACD line crossed above its signal line")
	case prevHist >= 0 && latestHist < 0:
		res.Subtract(t.MACDPoints, "MACD line crossed below its signal line")
	}
	return nil
}

// evalAroon spots fresh trends (one line hitting 100 recently while the
// other stays weak, confirmed by the oscillator's earlier sign), dampens the
// accumulated rating during consolidation and scores large oscillator
// readings.
func evalAroon(s *models.Series, t *Thresholds, res *models.Result) error {
	up, down, osc, err := calculate.Aroon(s.Close, calculate.AroonPeriod)
	if err != nil {
		return err
	}
	if len(osc) <= t.AroonConfirmTo {
		return fmt.Errorf("%w: Aroon confirmation needs %d bars, got %d",
			models.ErrInsufficientData, calculate.AroonPeriod+t.AroonConfirmTo+1, s.Len())
	}

	upTail := stats.Tail(up, t.AroonTrendBars)
	downTail := stats.Tail(down, t.AroonTrendBars)

	// Oscillator sign between ConfirmFrom and ConfirmTo bars back,
	// truncated at the head on short series.
	from := len(osc) - t.AroonConfirmFrom
	if from < 0 {
		from = 0
	}
	confirm := stats.Mean(osc[from : len(osc)-t.AroonConfirmTo])

	if maxOf(upTail) >= 100 && stats.Mean(downTail) < t.AroonAvgLimit && confirm > 0 {
		res.Add(t.AroonTrendPoints, "Aroon up hit 100 with a weak down line (fresh uptrend)")
	} else if maxOf(downTail) >= 100 && stats.Mean(upTail) < t.AroonAvgLimit && confirm < 0 {
		res.Subtract(t.AroonTrendPoints, "Aroon down hit 100 with a weak up line (fresh downtrend)")
	}

	if up[len(up)-1] < t.AroonConsolidBelow && down[len(down)-1] < t.AroonConsolidBelow &&
		stats.Slope(upTail) < 0 && stats.Slope(downTail) < 0 {
		res.Scale(t.AroonDampRatio, "Aroon shows consolidation, dampening conviction")
	}

	latest := osc[len(osc)-1]
	switch {
	case latest > t.AroonOscLimit:
		res.Add(latest/t.AroonOscDivisor, fmt.Sprintf("Aroon oscillator strongly positive at %.1f", latest))
	case latest < -t.AroonOscLimit:
		res.Subtract(-latest/t.AroonOscDivisor, fmt.Sprintf("Aroon oscillator strongly negative at %.1f", latest))
	}
	return nil
}

// evalSARTrend combines the directional index comparison with price's
// position relative to the parabolic SAR.
func evalSARTrend(s *models.Series, t *Thresholds, res *models.Result) error {
	sar, err := calculate.ParabolicSAR(s.High, s.Low, s.Close)
	if err != nil {
		return err
	}
	plusDI, minusDI, _, err := calculate.ADX(s.High, s.Low, s.Close, calculate.ADXPeriod)
	if err != nil {
		return err
	}

	lastClose := s.Close[s.Len()-1]
	lastSAR := sar[len(sar)-1]
	if plusDI[len(plusDI)-1] > minusDI[len(minusDI)-1] && lastClose > lastSAR {
		res.Add(t.SARTrendPoints, "Positive directional movement with price above the SAR")
	} else if minusDI[len(minusDI)-1] > plusDI[len(plusDI)-1] && lastClose < lastSAR {
		res.Subtract(t.SARTrendPoints, "Negative directional movement with price below the SAR")
	}
	return nil
}

// evalPattern scores the three-candle monotonic pattern.
func evalPattern(s *models.Series, t *Thresholds, res *models.Result) error {
	if calculate.BullishPattern(s.Open, s.Close) {
		res.Add(t.PatternPoints, "Three consecutive rising candles with solid bodies")
	} else if calculate.BearishPattern(s.Open, s.Close) {
		res.Subtract(t.PatternPoints, "Three consecutive falling candles with solid bodies")
	}
	return nil
}

func maxOf(seq []float64) float64 {
	m := seq[0]
	for _, v := range seq[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
