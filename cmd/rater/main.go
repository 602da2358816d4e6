package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/quantbar/rater/internal/config"
	"github.com/quantbar/rater/internal/feed"
	"github.com/quantbar/rater/internal/report"
	"github.com/quantbar/rater/internal/signals"
	"github.com/quantbar/rater/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl)

	series, err := loadSeries(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("loading series failed")
	}
	log.Info().Int("bars", series.Len()).Str("symbol", cfg.Symbol).Msg("series loaded")

	thresholds := signals.DefaultThresholds()
	if cfg.ThresholdsFile != "" {
		thresholds, err = signals.LoadThresholds(cfg.ThresholdsFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.ThresholdsFile).Msg("loading thresholds failed")
		}
	}

	analyzer, err := signals.New(series, thresholds)
	if err != nil {
		log.Fatal().Err(err).Msg("building analyzer failed")
	}

	result, err := runRules(analyzer, series, cfg.RuleSet)
	if err != nil {
		log.Fatal().Err(err).Msg("analysis failed")
	}

	fmt.Print(report.Build(cfg.Symbol, result))
}

// loadSeries prefers a local CSV when configured, otherwise the API feed.
func loadSeries(cfg *config.Config) (*models.Series, error) {
	if cfg.CSVPath != "" {
		return feed.LoadCSV(cfg.CSVPath)
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: neither CSV_PATH nor TWELVE_API_KEY configured", models.ErrInvalidInput)
	}

	client := feed.NewAPIClient(feed.APIOptions{
		APIKey:         cfg.APIKey,
		RequestTimeout: time.Duration(cfg.RequestTimeout) * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Duration(cfg.RequestTimeout)*time.Second)
	defer cancel()
	return client.Series(ctx, cfg.Symbol, cfg.Interval, cfg.CandleCount)
}

func runRules(analyzer *signals.Analyzer, series *models.Series, ruleSet string) (*models.Result, error) {
	switch ruleSet {
	case "core":
		if series.Len() < signals.CoreRuleSetMinBars {
			return nil, fmt.Errorf("%w: core rule set needs %d bars, got %d",
				models.ErrInsufficientData, signals.CoreRuleSetMinBars, series.Len())
		}
		return analyzer.RunCore()
	case "full", "":
		if series.Len() < signals.FullRuleSetMinBars {
			return nil, fmt.Errorf("%w: full rule set needs %d bars, got %d",
				models.ErrInsufficientData, signals.FullRuleSetMinBars, series.Len())
		}
		return analyzer.RunAll()
	default:
		return nil, fmt.Errorf("%w: unknown rule set %q (want full or core)", models.ErrInvalidArgument, ruleSet)
	}
}
