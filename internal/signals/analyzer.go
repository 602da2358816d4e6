package signals

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/quantbar/rater/models"
)

// Analyzer runs signal rules over one immutable series. Every Run produces
// a fresh Result, so repeated invocations never compound ratings or notes.
type Analyzer struct {
	series     *models.Series
	thresholds *Thresholds
}

// New builds an analyzer over the series. A nil thresholds falls back to the
// default scoring policy.
func New(series *models.Series, thresholds *Thresholds) (*Analyzer, error) {
	if series == nil || series.Len() == 0 {
		return nil, fmt.Errorf("%w: nil or empty series", models.ErrInvalidInput)
	}
	if thresholds == nil {
		thresholds = DefaultThresholds()
	}
	return &Analyzer{series: series, thresholds: thresholds}, nil
}

// Run executes the given rules in order and returns their combined verdict.
// The first rule error aborts the pass; there are no partial results.
func (a *Analyzer) Run(rules []Rule) (*models.Result, error) {
	res := &models.Result{}
	for _, rule := range rules {
		before := res.Rating
		if err := rule.eval(a.series, a.thresholds, res); err != nil {
			return nil, fmt.Errorf("rule %s: %w", rule.Name, err)
		}
		if delta := res.Rating - before; delta != 0 {
			log.Debug().Str("rule", rule.Name).Float64("delta", delta).Msg("rule fired")
		}
	}
	return res, nil
}

// RunAll runs the full rule set.
func (a *Analyzer) RunAll() (*models.Result, error) {
	return a.Run(FullRuleSet())
}

// RunCore runs the reduced RSI/Bollinger/ROC subset.
func (a *Analyzer) RunCore() (*models.Result, error) {
	return a.Run(CoreRuleSet())
}
