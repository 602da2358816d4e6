package calculate

// Candlestick pattern parameters: bars inspected and the minimum body size
// as a fraction of the close.
const (
	patternBars  = 3
	minBodyRatio = 0.003
)

// BullishPattern reports three consecutive up-candles with rising opens and
// closes, each with a body of at least 0.3% of its close.
func BullishPattern(open, close []float64) bool {
	if len(close) < patternBars {
		return false
	}
	o := open[len(open)-patternBars:]
	c := close[len(close)-patternBars:]
	for i := 0; i < patternBars; i++ {
		if c[i] <= o[i] || c[i]-o[i] < c[i]*minBodyRatio {
			return false
		}
		if i > 0 && (o[i] <= o[i-1] || c[i] <= c[i-1]) {
			return false
		}
	}
	return true
}

// BearishPattern reports three consecutive down-candles with falling opens
// and closes, each with a body of at least 0.3% of its close.
func BearishPattern(open, close []float64) bool {
	if len(close) < patternBars {
		return false
	}
	o := open[len(open)-patternBars:]
	c := close[len(close)-patternBars:]
	for i := 0; i < patternBars; i++ {
		if c[i] >= o[i] || o[i]-c[i] < c[i]*minBodyRatio {
			return false
		}
		if i > 0 && (o[i] >= o[i-1] || c[i] >= c[i-1]) {
			return false
		}
	}
	return true
}
