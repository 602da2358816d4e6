package calculate

import (
	"fmt"
	"math"

	"github.com/quantbar/rater/models"
)

// ADXPeriod is the conventional Wilder lookback for the directional index.
const ADXPeriod = 14

// ADX returns the +DI, -DI and ADX sequences. Directional movement is taken
// from high/low deltas (+DM when the up-move dominates and is positive, -DM
// for the down-move), Wilder-smoothed together with the true range; DX is
// 100*|+DI - -DI| / (+DI + -DI) and the ADX is the Wilder-smoothed DX. The
// DI sequences hold len(close)-period values, the ADX len(close)-2*period+1.
func ADX(high, low, close []float64, period int) (plusDI, minusDI, adx []float64, err error) {
	if len(close) < 2*period+1 {
		return nil, nil, nil, fmt.Errorf("%w: ADX period %d needs %d bars, got %d",
			models.ErrInsufficientData, period, 2*period+1, len(close))
	}

	plusDM := make([]float64, 0, len(close)-1)
	minusDM := make([]float64, 0, len(close)-1)
	tr := TrueRanges(high, low, close)
	for i := 1; i < len(close); i++ {
		upMove := high[i] - high[i-1]
		downMove := low[i-1] - low[i]
		p, m := 0.0, 0.0
		if upMove > downMove && upMove > 0 {
			p = upMove
		}
		if downMove > upMove && downMove > 0 {
			m = downMove
		}
		plusDM = append(plusDM, p)
		minusDM = append(minusDM, m)
	}

	var smoothPlus, smoothMinus, smoothTR float64
	for i := 0; i < period; i++ {
		smoothPlus += plusDM[i]
		smoothMinus += minusDM[i]
		smoothTR += tr[i]
	}

	n := len(tr) - period + 1
	plusDI = make([]float64, 0, n)
	minusDI = make([]float64, 0, n)
	dx := make([]float64, 0, n)

	appendDI := func() {
		p := smoothPlus / smoothTR * 100
		m := smoothMinus / smoothTR * 100
		plusDI = append(plusDI, p)
		minusDI = append(minusDI, m)
		dx = append(dx, math.Abs(p-m)/(p+m)*100)
	}
	appendDI()

	for i := period; i < len(tr); i++ {
		smoothPlus = smoothPlus - smoothPlus/float64(period) + plusDM[i]
		smoothMinus = smoothMinus - smoothMinus/float64(period) + minusDM[i]
		smoothTR = smoothTR - smoothTR/float64(period) + tr[i]
		appendDI()
	}

	var sum float64
	for _, v := range dx[:period] {
		sum += v
	}
	prev := sum / float64(period)

	adx = make([]float64, 0, len(dx)-period+1)
	adx = append(adx, prev)
	for _, v := range dx[period:] {
		prev = (prev*float64(period-1) + v) / float64(period)
		adx = append(adx, prev)
	}
	return plusDI, minusDI, adx, nil
}
