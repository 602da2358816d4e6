package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for the analysis boundary. Validation failures are wrapped
// with context via fmt.Errorf("...: %w", ...) so callers can match with
// errors.Is.
var (
	// ErrInvalidInput marks constructor arguments that do not form an
	// aligned OHLCV series.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientData marks a lookback-bound calculation invoked on a
	// series shorter than its required minimum.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrInvalidArgument marks a parameter outside its documented range.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Candle represents a single price bar.
type Candle struct {
	Datetime string  `json:"datetime"`
	Open     float64 `json:"open"`
	High     float64 `json:"high"`
	Low      float64 `json:"low"`
	Close    float64 `json:"close"`
	Volume   float64 `json:"volume,omitempty"`
}

// Series holds five index-aligned sequences of equal length, ordered
// oldest to newest. It is treated as immutable after construction: no
// indicator or signal rule writes to it.
type Series struct {
	Open   []float64
	High   []float64
	Low    []float64
	Close  []float64
	Volume []float64
}

// NewSeries validates and assembles the five aligned sequences.
func NewSeries(open, high, low, close, volume []float64) (*Series, error) {
	n := len(close)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty series", ErrInvalidInput)
	}
	if len(open) != n || len(high) != n || len(low) != n || len(volume) != n {
		return nil, fmt.Errorf("%w: sequence lengths differ (open=%d high=%d low=%d close=%d volume=%d)",
			ErrInvalidInput, len(open), len(high), len(low), n, len(volume))
	}
	return &Series{Open: open, High: high, Low: low, Close: close, Volume: volume}, nil
}

// NewSeriesFromCandles converts a candle slice (oldest first) into a Series.
func NewSeriesFromCandles(candles []Candle) (*Series, error) {
	if len(candles) == 0 {
		return nil, fmt.Errorf("%w: no candles", ErrInvalidInput)
	}
	open := make([]float64, len(candles))
	high := make([]float64, len(candles))
	low := make([]float64, len(candles))
	close := make([]float64, len(candles))
	volume := make([]float64, len(candles))
	for i, c := range candles {
		open[i] = c.Open
		high[i] = c.High
		low[i] = c.Low
		close[i] = c.Close
		volume[i] = c.Volume
	}
	return NewSeries(open, high, low, close, volume)
}

// Len returns the number of bars in the series.
func (s *Series) Len() int {
	return len(s.Close)
}

// Result is the outcome of one analysis pass: a composite rating and the
// ordered notes of every signal condition that fired. The sign of the rating
// indicates direction (negative = sell, positive = buy), the magnitude
// confidence. Each pass produces a fresh Result; nothing is accumulated
// across calls.
type Result struct {
	Rating float64  `json:"rating"`
	Notes  []string `json:"notes"`
}

// Add raises the rating and records why.
func (r *Result) Add(points float64, note string) {
	r.Rating += points
	r.Notes = append(r.Notes, note)
}

// Subtract lowers the rating and records why.
func (r *Result) Subtract(points float64, note string) {
	r.Rating -= points
	r.Notes = append(r.Notes, note)
}

// Scale multiplies the accumulated rating by ratio and records why. Used by
// consolidation rules that dampen whatever conviction earlier rules built up.
func (r *Result) Scale(ratio float64, note string) {
	r.Rating *= ratio
	r.Notes = append(r.Notes, note)
}

// Note records an observation that carries no rating weight.
func (r *Result) Note(note string) {
	r.Notes = append(r.Notes, note)
}
