package calculate

import (
	"fmt"
	"math"

	"github.com/quantbar/rater/models"
)

// Acceleration factor bounds for the parabolic SAR.
const (
	PSARStep = 0.02
	PSARMax  = 0.20
)

// psarState is the per-step state threaded through the SAR recurrence: the
// current trend direction, the extreme point reached during that trend and
// the acceleration factor.
type psarState struct {
	rising  bool
	extreme float64
	af      float64
}

// ParabolicSAR returns the stop-and-reverse sequence, one value per bar.
// Each step moves the SAR toward the extreme point by the acceleration
// factor; the factor grows by PSARStep (capped at PSARMax) every time the
// trend sets a new extreme, and the trend flips when price crosses the prior
// SAR.
func ParabolicSAR(high, low, close []float64) ([]float64, error) {
	if len(close) < 2 {
		return nil, fmt.Errorf("%w: parabolic SAR needs 2 bars, got %d",
			models.ErrInsufficientData, len(close))
	}

	st := psarState{rising: close[1] > close[0], af: PSARStep}
	out := make([]float64, len(close))
	if st.rising {
		st.extreme = high[0]
		out[0] = low[0]
	} else {
		st.extreme = low[0]
		out[0] = high[0]
	}

	for i := 1; i < len(close); i++ {
		sar := out[i-1] + st.af*(st.extreme-out[i-1])

		// The SAR may never enter the range of the prior two bars.
		if st.rising {
			sar = math.Min(sar, low[i-1])
			if i > 1 {
				sar = math.Min(sar, low[i-2])
			}
		} else {
			sar = math.Max(sar, high[i-1])
			if i > 1 {
				sar = math.Max(sar, high[i-2])
			}
		}

		if st.rising && low[i] < sar {
			sar = st.extreme
			st = psarState{rising: false, extreme: low[i], af: PSARStep}
		} else if !st.rising && high[i] > sar {
			sar = st.extreme
			st = psarState{rising: true, extreme: high[i], af: PSARStep}
		} else if st.rising && high[i] > st.extreme {
			st.extreme = high[i]
			st.af = math.Min(st.af+PSARStep, PSARMax)
		} else if !st.rising && low[i] < st.extreme {
			st.extreme = low[i]
			st.af = math.Min(st.af+PSARStep, PSARMax)
		}

		out[i] = sar
	}
	return out, nil
}
