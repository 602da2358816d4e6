package calculate

import "fmt"

// Conventional MACD periods.
const (
	MACDFastPeriod   = 12
	MACDSlowPeriod   = 26
	MACDSignalPeriod = 9
)

// MACD returns the MACD line (12-EMA minus 26-EMA), its 9-EMA signal line
// and the histogram (line minus signal). The fast EMA starts 14 values
// earlier than the slow one, so it is read at that offset to keep both
// aligned on the same bars. The signal line and histogram start
// MACDSignalPeriod-1 values into the MACD line.
func MACD(close []float64) (line, signal, hist []float64, err error) {
	fast, err := EMA(close, MACDFastPeriod)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("MACD fast EMA: %w", err)
	}
	slow, err := EMA(close, MACDSlowPeriod)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("MACD slow EMA: %w", err)
	}

	offset := MACDSlowPeriod - MACDFastPeriod
	line = make([]float64, len(slow))
	for i := range slow {
		line[i] = fast[i+offset] - slow[i]
	}

	signal, err = EMA(line, MACDSignalPeriod)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("MACD signal EMA: %w", err)
	}

	hist = make([]float64, len(signal))
	lineOffset := len(line) - len(signal)
	for i := range signal {
		hist[i] = line[i+lineOffset] - signal[i]
	}
	return line, signal, hist, nil
}
