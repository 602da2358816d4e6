package signals

import (
	"errors"
	"strings"
	"testing"

	"github.com/quantbar/rater/models"
)

// rallyAndDrop builds the reference scenario: a gentle warmup, a steady
// 25-bar rise that accelerates into a peak at bar 39, then a sharp 5-bar
// fall. 45 bars in total.
func rallyAndDrop() []float64 {
	var close []float64
	for i := 0; i < 20; i++ {
		close = append(close, 100+0.1*float64(i))
	}
	for i := 20; i < 36; i++ {
		close = append(close, 101.9+0.3*float64(i-19))
	}
	v := close[len(close)-1]
	for i := 0; i < 4; i++ {
		v += 1.5
		close = append(close, v)
	}
	for i := 0; i < 5; i++ {
		v -= 2.5
		close = append(close, v)
	}
	return close
}

// seriesAround builds an aligned series from closes with a one-point bar
// range and mildly varying volume.
func seriesAround(t *testing.T, close []float64) *models.Series {
	t.Helper()
	open := make([]float64, len(close))
	high := make([]float64, len(close))
	low := make([]float64, len(close))
	volume := make([]float64, len(close))
	for i, c := range close {
		open[i] = c - 0.2
		high[i] = c + 0.5
		low[i] = c - 0.5
		volume[i] = 1000 + 10*float64(i%9)
	}
	s, err := models.NewSeries(open, high, low, close, volume)
	if err != nil {
		t.Fatalf("NewSeries() error = %v", err)
	}
	return s
}

func TestOverboughtPeakFiresBollingerAndRSI(t *testing.T) {
	close := rallyAndDrop()
	// Evaluate at the local peak, before the fall.
	s := seriesAround(t, close[:40])

	a, err := New(s, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	res, err := a.Run([]Rule{RuleRSI, RuleBollinger})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !containsNote(res.Notes, "Price moved above upper Bollinger Band") {
		t.Errorf("notes = %v, want upper Bollinger Band breach", res.Notes)
	}
	if !containsPrefix(res.Notes, "RSI overbought") {
		t.Errorf("notes = %v, want an RSI overbought reading", res.Notes)
	}
	if res.Rating >= 0 {
		t.Errorf("rating = %v, want negative at an overbought peak", res.Rating)
	}
}

func TestCoreRuleSetOnlyTouchesItsIndicators(t *testing.T) {
	s := seriesAround(t, rallyAndDrop())

	a, err := New(s, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	res, err := a.RunCore()
	if err != nil {
		t.Fatalf("RunCore() error = %v", err)
	}

	// Only RSI, Bollinger and rate-of-change rules may leave notes.
	foreign := []string{
		"MACD", "Stochastic", "Aroon", "SAR", "directional",
		"CCI", "oney flow", "alance volume", "ccumulation", "candle",
	}
	for _, note := range res.Notes {
		for _, marker := range foreign {
			if strings.Contains(note, marker) {
				t.Errorf("core rule set produced foreign note %q", note)
			}
		}
	}
}

func TestRunIsIdempotent(t *testing.T) {
	s := seriesAround(t, rallyAndDrop())

	a, err := New(s, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	first, err := a.RunAll()
	if err != nil {
		t.Fatalf("RunAll() error = %v", err)
	}
	second, err := a.RunAll()
	if err != nil {
		t.Fatalf("RunAll() error = %v", err)
	}

	if first.Rating != second.Rating {
		t.Errorf("repeated runs compound: %v then %v", first.Rating, second.Rating)
	}
	if len(first.Notes) != len(second.Notes) {
		t.Errorf("repeated runs compound notes: %d then %d", len(first.Notes), len(second.Notes))
	}
}

func TestFullRuleSetOnShortSeries(t *testing.T) {
	s := seriesAround(t, rallyAndDrop()[:30])

	a, err := New(s, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := a.RunAll(); !errors.Is(err, models.ErrInsufficientData) {
		t.Errorf("RunAll() on 30 bars error = %v, want ErrInsufficientData", err)
	}
}

func TestNewRejectsEmptySeries(t *testing.T) {
	if _, err := New(nil, nil); !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("New(nil) error = %v, want ErrInvalidInput", err)
	}
}

func containsNote(notes []string, want string) bool {
	for _, n := range notes {
		if n == want {
			return true
		}
	}
	return false
}

func containsPrefix(notes []string, prefix string) bool {
	for _, n := range notes {
		if strings.HasPrefix(n, prefix) {
			return true
		}
	}
	return false
}
