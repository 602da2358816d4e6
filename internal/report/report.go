// Package report renders an analysis result for the terminal: a direction
// verdict from the rating sign, a confidence label from its magnitude and
// the notes in the order the rules fired.
package report

import (
	"fmt"
	"strings"

	"github.com/quantbar/rater/models"
)

// Confidence bands over the rating magnitude.
const (
	mediumRating = 20.0
	strongRating = 50.0
)

// Verdict is the rendered outcome for one symbol.
type Verdict struct {
	Symbol     string   `json:"symbol"`
	Rating     float64  `json:"rating"`
	Direction  string   `json:"direction"`  // BUY, SELL, NEUTRAL
	Confidence string   `json:"confidence"` // HIGH, MEDIUM, LOW
	Notes      []string `json:"notes"`
}

// Build maps a result onto a verdict.
func Build(symbol string, res *models.Result) Verdict {
	v := Verdict{
		Symbol: symbol,
		Rating: res.Rating,
		Notes:  res.Notes,
	}

	switch {
	case res.Rating > 0:
		v.Direction = "BUY"
	case res.Rating < 0:
		v.Direction = "SELL"
	default:
		v.Direction = "NEUTRAL"
	}

	magnitude := res.Rating
	if magnitude < 0 {
		magnitude = -magnitude
	}
	switch {
	case magnitude >= strongRating:
		v.Confidence = "HIGH"
	case magnitude >= mediumRating:
		v.Confidence = "MEDIUM"
	default:
		v.Confidence = "LOW"
	}
	return v
}

// String renders the verdict as a terminal report.
func (v Verdict) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s (confidence %s, rating %+.2f)\n", v.Symbol, v.Direction, v.Confidence, v.Rating)
	if len(v.Notes) == 0 {
		b.WriteString("  no signals fired\n")
		return b.String()
	}
	for _, note := range v.Notes {
		fmt.Fprintf(&b, "  - %s\n", note)
	}
	return b.String()
}
