// Package feed supplies aligned OHLCV series to the analyzer: a Twelve
// Data-style time-series API client and a local CSV loader.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	platform "github.com/quantbar/rater/internal/platform/http"
	"github.com/quantbar/rater/models"
)

// timeSeriesResponse mirrors the Twelve Data time_series payload, where the
// numeric fields arrive as strings.
type timeSeriesResponse struct {
	Values []struct {
		Datetime string  `json:"datetime"`
		Open     float64 `json:"open,string"`
		High     float64 `json:"high,string"`
		Low      float64 `json:"low,string"`
		Close    float64 `json:"close,string"`
		Volume   float64 `json:"volume,string,omitempty"`
	} `json:"values"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// APIClient fetches candle series from the market-data API.
type APIClient struct {
	apiKey  string
	baseURL string
	client  *platform.Client
	logger  zerolog.Logger
}

// APIOptions configures the feed client.
type APIOptions struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
	RequestsPerSec int
}

// NewAPIClient builds a feed client over the rate-limited platform client.
func NewAPIClient(opts APIOptions) *APIClient {
	base := opts.BaseURL
	if base == "" {
		base = "https://api.twelvedata.com"
	}
	return &APIClient{
		apiKey:  opts.APIKey,
		baseURL: base,
		client: platform.NewClient(platform.Options{
			Timeout:        opts.RequestTimeout,
			RequestsPerSec: opts.RequestsPerSec,
		}),
		logger: log.With().Str("component", "feed").Logger(),
	}
}

// Candles fetches count bars for the symbol/interval, oldest first.
func (c *APIClient) Candles(ctx context.Context, symbol, interval string, count int) ([]models.Candle, error) {
	endpoint := fmt.Sprintf("%s/time_series?symbol=%s&interval=%s&outputsize=%d&apikey=%s",
		c.baseURL, url.QueryEscape(symbol), url.QueryEscape(interval), count, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.client.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("feed request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var data timeSeriesResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}
	if data.Status == "error" {
		return nil, fmt.Errorf("feed API error: %s", data.Message)
	}
	if len(data.Values) == 0 {
		return nil, fmt.Errorf("%w: feed returned no candles", models.ErrInvalidInput)
	}

	// The API returns newest first; calculations need oldest first.
	sort.Slice(data.Values, func(i, j int) bool {
		return data.Values[i].Datetime < data.Values[j].Datetime
	})

	candles := make([]models.Candle, 0, len(data.Values))
	for _, v := range data.Values {
		candles = append(candles, models.Candle{
			Datetime: v.Datetime,
			Open:     v.Open,
			High:     v.High,
			Low:      v.Low,
			Close:    v.Close,
			Volume:   v.Volume,
		})
	}

	c.logger.Debug().Int("count", len(candles)).Str("symbol", symbol).Msg("fetched candles")
	return candles, nil
}

// Series fetches count bars and assembles them into a validated Series.
func (c *APIClient) Series(ctx context.Context, symbol, interval string, count int) (*models.Series, error) {
	candles, err := c.Candles(ctx, symbol, interval, count)
	if err != nil {
		return nil, err
	}
	return models.NewSeriesFromCandles(candles)
}
