package feed

import (
	"errors"
	"strings"
	"testing"

	"github.com/quantbar/rater/models"
)

func TestReadCSV(t *testing.T) {
	data := `datetime,open,high,low,close,volume
2024-01-02,10,12,9,11,100
2024-01-03,11,13,10,12,200
`
	s, err := ReadCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if s.Close[1] != 12 || s.Volume[0] != 100 {
		t.Errorf("parsed series = close %v volume %v", s.Close, s.Volume)
	}
}

func TestReadCSVReorderedHeader(t *testing.T) {
	data := `close,volume,datetime,open,high,low
11,100,2024-01-02,10,12,9
`
	s, err := ReadCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if s.Open[0] != 10 || s.Close[0] != 11 {
		t.Errorf("parsed bar = open %v close %v, want open 10 close 11", s.Open[0], s.Close[0])
	}
}

func TestReadCSVOptionalVolume(t *testing.T) {
	data := `datetime,open,high,low,close
2024-01-02,10,12,9,11
`
	s, err := ReadCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if s.Volume[0] != 0 {
		t.Errorf("Volume[0] = %v, want 0 when the column is absent", s.Volume[0])
	}
}

func TestReadCSVMissingRequiredColumn(t *testing.T) {
	data := `datetime,open,high,low
2024-01-02,10,12,9
`
	if _, err := ReadCSV(strings.NewReader(data)); !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("ReadCSV() error = %v, want ErrInvalidInput", err)
	}
}

func TestReadCSVBadNumber(t *testing.T) {
	data := `datetime,open,high,low,close
2024-01-02,10,12,9,not-a-price
`
	if _, err := ReadCSV(strings.NewReader(data)); !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("ReadCSV() error = %v, want ErrInvalidInput", err)
	}
}
