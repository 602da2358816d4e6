package calculate

// OnBalanceVolume returns the cumulative on-balance volume: starting from
// the first bar's volume, each bar's volume is added on an up-close,
// subtracted on a down-close and ignored when the close is unchanged.
func OnBalanceVolume(close, volume []float64) []float64 {
	out := make([]float64, len(close))
	if len(close) == 0 {
		return out
	}
	out[0] = volume[0]
	for i := 1; i < len(close); i++ {
		switch {
		case close[i] > close[i-1]:
			out[i] = out[i-1] + volume[i]
		case close[i] < close[i-1]:
			out[i] = out[i-1] - volume[i]
		default:
			out[i] = out[i-1]
		}
	}
	return out
}
