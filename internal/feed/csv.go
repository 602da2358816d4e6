package feed

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/quantbar/rater/models"
)

// LoadCSV reads candles from a CSV file with a
// datetime,open,high,low,close,volume header, oldest first, and assembles
// them into a validated Series. The volume column is optional.
func LoadCSV(path string) (*models.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV parses candle rows from r. See LoadCSV for the expected layout.
func ReadCSV(r io.Reader) (*models.Series, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"open", "high", "low", "close"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("%w: csv missing %q column", models.ErrInvalidInput, required)
		}
	}

	var candles []models.Candle
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", line, err)
		}

		c := models.Candle{}
		if i, ok := col["datetime"]; ok {
			c.Datetime = record[i]
		}
		if c.Open, err = parseField(record, col, "open", line); err != nil {
			return nil, err
		}
		if c.High, err = parseField(record, col, "high", line); err != nil {
			return nil, err
		}
		if c.Low, err = parseField(record, col, "low", line); err != nil {
			return nil, err
		}
		if c.Close, err = parseField(record, col, "close", line); err != nil {
			return nil, err
		}
		if i, ok := col["volume"]; ok && i < len(record) && record[i] != "" {
			if c.Volume, err = strconv.ParseFloat(record[i], 64); err != nil {
				return nil, fmt.Errorf("%w: csv row %d volume %q", models.ErrInvalidInput, line, record[i])
			}
		}
		candles = append(candles, c)
	}

	return models.NewSeriesFromCandles(candles)
}

func parseField(record []string, col map[string]int, name string, line int) (float64, error) {
	i := col[name]
	if i >= len(record) {
		return 0, fmt.Errorf("%w: csv row %d missing %s", models.ErrInvalidInput, line, name)
	}
	v, err := strconv.ParseFloat(record[i], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: csv row %d %s %q", models.ErrInvalidInput, line, name, record[i])
	}
	return v, nil
}
