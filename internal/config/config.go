// Package config loads application settings from the environment, with an
// optional .env file.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Symbol         string `envconfig:"SYMBOL" default:"AAPL"`
	Interval       string `envconfig:"INTERVAL" default:"1day"`
	CandleCount    int    `envconfig:"CANDLE_COUNT" default:"60"`
	APIKey         string `envconfig:"TWELVE_API_KEY"`
	CSVPath        string `envconfig:"CSV_PATH"`
	RuleSet        string `envconfig:"RULE_SET" default:"full"`
	ThresholdsFile string `envconfig:"THRESHOLDS_FILE"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	RequestTimeout int    `envconfig:"REQUEST_TIMEOUT" default:"30"`
}

// Load reads the .env file if present, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}
