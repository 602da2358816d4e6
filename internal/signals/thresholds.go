// Package signals aggregates per-indicator buy/sell rules into a composite
// rating with human-readable notes. One rule per indicator family; every
// threshold, window and point weight lives in Thresholds so the scoring
// policy can be tuned without touching the formula logic.
package signals

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Thresholds holds the tunable scoring policy: overbought/oversold bands,
// divergence strengths and windows, and the rating points each rule carries.
type Thresholds struct {
	// RSI: quartic scaling beyond the bands, plus a short divergence test.
	RSIOverbought       float64 `yaml:"rsi_overbought"`
	RSIOversold         float64 `yaml:"rsi_oversold"`
	RSIScale            float64 `yaml:"rsi_scale"`
	RSIBasePoints       float64 `yaml:"rsi_base_points"`
	RSIDivergenceBars   int     `yaml:"rsi_divergence_bars"`
	RSIDivergenceR      float64 `yaml:"rsi_divergence_r"`
	RSIDivergencePoints float64 `yaml:"rsi_divergence_points"`

	// Stochastic: quartic band scaling, divergence and the 15-bar
	// note-only setup detector.
	StochOverbought       float64 `yaml:"stoch_overbought"`
	StochOversold         float64 `yaml:"stoch_oversold"`
	StochScale            float64 `yaml:"stoch_scale"`
	StochBasePoints       float64 `yaml:"stoch_base_points"`
	StochDivergenceBars   int     `yaml:"stoch_divergence_bars"`
	StochDivergenceR      float64 `yaml:"stoch_divergence_r"`
	StochDivergencePoints float64 `yaml:"stoch_divergence_points"`
	StochSetupBars        int     `yaml:"stoch_setup_bars"`
	StochSetupR           float64 `yaml:"stoch_setup_r"`

	// MACD: crossover detection confirmed over a trailing window.
	MACDWindow   int     `yaml:"macd_window"`
	MACDSlopeMin float64 `yaml:"macd_slope_min"`
	MACDPoints   float64 `yaml:"macd_points"`

	// Aroon: trend spotting, consolidation damping and oscillator
	// magnitude.
	AroonTrendBars     int     `yaml:"aroon_trend_bars"`
	AroonAvgLimit      float64 `yaml:"aroon_avg_limit"`
	AroonConfirmFrom   int     `yaml:"aroon_confirm_from"`
	AroonConfirmTo     int     `yaml:"aroon_confirm_to"`
	AroonTrendPoints   float64 `yaml:"aroon_trend_points"`
	AroonDampRatio     float64 `yaml:"aroon_damp_ratio"`
	AroonOscLimit      float64 `yaml:"aroon_osc_limit"`
	AroonOscDivisor    float64 `yaml:"aroon_osc_divisor"`
	AroonConsolidBelow float64 `yaml:"aroon_consolid_below"`

	// Parabolic SAR + directional index combination.
	SARTrendPoints float64 `yaml:"sar_trend_points"`

	// Volume divergences: A/D line and OBV against price.
	ADLineDivergenceBars int     `yaml:"adline_divergence_bars"`
	OBVDivergenceBars    int     `yaml:"obv_divergence_bars"`
	VolumeDivergenceR    float64 `yaml:"volume_divergence_r"`
	VolumeDivergencePts  float64 `yaml:"volume_divergence_points"`

	// Bollinger band breach. The single largest rule weight.
	BollingerPoints float64 `yaml:"bollinger_points"`

	// CCI band.
	CCILimit  float64 `yaml:"cci_limit"`
	CCIPoints float64 `yaml:"cci_points"`

	// MFI: quadratic band scaling plus divergence.
	MFIOverbought       float64 `yaml:"mfi_overbought"`
	MFIOversold         float64 `yaml:"mfi_oversold"`
	MFIScale            float64 `yaml:"mfi_scale"`
	MFIBasePoints       float64 `yaml:"mfi_base_points"`
	MFIDivergenceBars   int     `yaml:"mfi_divergence_bars"`
	MFIDivergenceR      float64 `yaml:"mfi_divergence_r"`
	MFIDivergencePoints float64 `yaml:"mfi_divergence_points"`

	// ROC: threshold cross gated on a confirmed trailing trend.
	ROCTrendBars int     `yaml:"roc_trend_bars"`
	ROCTrendR    float64 `yaml:"roc_trend_r"`
	ROCLimit     float64 `yaml:"roc_limit"`
	ROCPoints    float64 `yaml:"roc_points"`

	// Three-candle pattern.
	PatternPoints float64 `yaml:"pattern_points"`
}

// DefaultThresholds returns the stock scoring policy.
func DefaultThresholds() *Thresholds {
	return &Thresholds{
		RSIOverbought:       70,
		RSIOversold:         30,
		RSIScale:            15,
		RSIBasePoints:       30,
		RSIDivergenceBars:   5,
		RSIDivergenceR:      0.4,
		RSIDivergencePoints: 15,

		StochOverbought:       80,
		StochOversold:         20,
		StochScale:            10,
		StochBasePoints:       5,
		StochDivergenceBars:   5,
		StochDivergenceR:      0.3,
		StochDivergencePoints: 10,
		StochSetupBars:        15,
		StochSetupR:           0.3,

		MACDWindow:   15,
		MACDSlopeMin: 0,
		MACDPoints:   5,

		AroonTrendBars:     5,
		AroonAvgLimit:      50,
		AroonConfirmFrom:   20,
		AroonConfirmTo:     5,
		AroonTrendPoints:   5,
		AroonDampRatio:     0.75,
		AroonOscLimit:      70,
		AroonOscDivisor:    17,
		AroonConsolidBelow: 50,

		SARTrendPoints: 10,

		ADLineDivergenceBars: 7,
		OBVDivergenceBars:    15,
		VolumeDivergenceR:    0.3,
		VolumeDivergencePts:  10,

		BollingerPoints: 20,

		CCILimit:  100,
		CCIPoints: 10,

		MFIOverbought:       80,
		MFIOversold:         20,
		MFIScale:            10,
		MFIBasePoints:       5,
		MFIDivergenceBars:   10,
		MFIDivergenceR:      0.3,
		MFIDivergencePoints: 5,

		ROCTrendBars: 30,
		ROCTrendR:    0.5,
		ROCLimit:     10,
		ROCPoints:    50,

		PatternPoints: 10,
	}
}

// LoadThresholds reads a YAML file over the defaults, so a policy file only
// needs to name the values it changes.
func LoadThresholds(path string) (*Thresholds, error) {
	t := DefaultThresholds()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read thresholds: %w", err)
	}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parse thresholds: %w", err)
	}
	return t, nil
}
