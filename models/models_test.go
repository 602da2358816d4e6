package models

import (
	"errors"
	"testing"
)

func TestNewSeriesRejectsEmpty(t *testing.T) {
	if _, err := NewSeries(nil, nil, nil, nil, nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("NewSeries(empty) error = %v, want ErrInvalidInput", err)
	}
}

func TestNewSeriesRejectsMismatchedLengths(t *testing.T) {
	three := []float64{1, 2, 3}
	two := []float64{1, 2}
	if _, err := NewSeries(three, three, three, three, two); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("NewSeries(mismatched) error = %v, want ErrInvalidInput", err)
	}
}

func TestNewSeriesFromCandles(t *testing.T) {
	candles := []Candle{
		{Datetime: "2024-01-02", Open: 10, High: 12, Low: 9, Close: 11, Volume: 100},
		{Datetime: "2024-01-03", Open: 11, High: 13, Low: 10, Close: 12, Volume: 200},
	}

	s, err := NewSeriesFromCandles(candles)
	if err != nil {
		t.Fatalf("NewSeriesFromCandles() error = %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if s.Close[0] != 11 || s.Close[1] != 12 {
		t.Errorf("Close = %v, want [11 12]", s.Close)
	}
	if s.Volume[1] != 200 {
		t.Errorf("Volume[1] = %v, want 200", s.Volume[1])
	}

	if _, err := NewSeriesFromCandles(nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("NewSeriesFromCandles(nil) error = %v, want ErrInvalidInput", err)
	}
}

func TestResultAccumulation(t *testing.T) {
	var r Result
	r.Add(30, "up")
	r.Subtract(10, "down")
	r.Scale(0.5, "damp")
	r.Note("observation")

	if r.Rating != 10 {
		t.Errorf("Rating = %v, want 10", r.Rating)
	}
	if len(r.Notes) != 4 {
		t.Errorf("Notes = %v, want 4 entries", r.Notes)
	}
}
