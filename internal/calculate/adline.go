package calculate

// AccumulationDistribution returns the cumulative accumulation/distribution
// line: money-flow multiplier ((close-low)-(high-close))/(high-low) times
// volume, summed over all bars. A bar whose high equals its low carries no
// flow information and contributes zero rather than poisoning the cumulative
// sum with NaN.
func AccumulationDistribution(high, low, close, volume []float64) []float64 {
	out := make([]float64, len(close))
	var sum float64
	for i := range close {
		spread := high[i] - low[i]
		if spread != 0 {
			multiplier := ((close[i] - low[i]) - (high[i] - close[i])) / spread
			sum += multiplier * volume[i]
		}
		out[i] = sum
	}
	return out
}
