package signals

import "github.com/quantbar/rater/models"

// Rule is one named signal rule. Eval reads the series and the thresholds
// and folds its verdict into res; it never writes to the series.
type Rule struct {
	Name string
	eval func(s *models.Series, t *Thresholds, res *models.Result) error
}

// The rule registry. Rules run in the order a rule set lists them, which is
// also the order their notes appear in the result.
var (
	RuleRSI        = Rule{Name: "rsi", eval: evalRSI}
	RuleStochastic = Rule{Name: "stochastic", eval: evalStochastic}
	RuleMACD       = Rule{Name: "macd", eval: evalMACD}
	RuleAroon      = Rule{Name: "aroon", eval: evalAroon}
	RuleSARTrend   = Rule{Name: "sar_adx", eval: evalSARTrend}
	RuleADLine     = Rule{Name: "adline", eval: evalADLine}
	RuleOBV        = Rule{Name: "obv", eval: evalOBV}
	RuleBollinger  = Rule{Name: "bollinger", eval: evalBollinger}
	RuleCCI        = Rule{Name: "cci", eval: evalCCI}
	RuleMFI        = Rule{Name: "mfi", eval: evalMFI}
	RuleROC        = Rule{Name: "roc", eval: evalROC}
	RulePattern    = Rule{Name: "candlestick", eval: evalPattern}
)

// Minimum bars each rule set needs. The full set is bound by MACD's
// trailing confirmation window, the core set by the ROC trend window.
const (
	FullRuleSetMinBars = 40
	CoreRuleSetMinBars = 30
)

// FullRuleSet returns every rule in its canonical order.
func FullRuleSet() []Rule {
	return []Rule{
		RuleRSI,
		RuleStochastic,
		RuleMACD,
		RuleAroon,
		RuleSARTrend,
		RuleADLine,
		RuleOBV,
		RuleBollinger,
		RuleCCI,
		RuleMFI,
		RuleROC,
		RulePattern,
	}
}

// CoreRuleSet returns the reduced RSI, Bollinger and rate-of-change subset
// for quick scans. Kept as a named policy rather than a flag so callers can
// pass their own selection to Run.
func CoreRuleSet() []Rule {
	return []Rule{RuleRSI, RuleBollinger, RuleROC}
}
