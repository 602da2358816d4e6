package report

import (
	"strings"
	"testing"

	"github.com/quantbar/rater/models"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name       string
		rating     float64
		direction  string
		confidence string
	}{
		{"strong buy", 62.5, "BUY", "HIGH"},
		{"moderate sell", -25, "SELL", "MEDIUM"},
		{"weak buy", 5, "BUY", "LOW"},
		{"boundary medium", 20, "BUY", "MEDIUM"},
		{"boundary high", -50, "SELL", "HIGH"},
		{"neutral", 0, "NEUTRAL", "LOW"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Build("AAPL", &models.Result{Rating: tt.rating})
			if v.Direction != tt.direction {
				t.Errorf("Direction = %q, want %q", v.Direction, tt.direction)
			}
			if v.Confidence != tt.confidence {
				t.Errorf("Confidence = %q, want %q", v.Confidence, tt.confidence)
			}
		})
	}
}

func TestVerdictString(t *testing.T) {
	v := Build("MSFT", &models.Result{
		Rating: -30,
		Notes:  []string{"RSI overbought at 82.10"},
	})

	out := v.String()
	if !strings.Contains(out, "MSFT: SELL") {
		t.Errorf("String() = %q, missing symbol and direction", out)
	}
	if !strings.Contains(out, "RSI overbought") {
		t.Errorf("String() = %q, missing the note", out)
	}

	empty := Build("MSFT", &models.Result{}).String()
	if !strings.Contains(empty, "no signals fired") {
		t.Errorf("String() = %q, want the empty-notes line", empty)
	}
}
