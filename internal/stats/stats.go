// Package stats holds the statistical primitives the indicator library and
// the signal rules are built on: trend slope, time correlation, population
// standard deviation and the divergence test.
package stats

import (
	"fmt"
	"math"

	"github.com/quantbar/rater/models"
)

// Slope returns the straight-line slope between the first and last element
// of seq, treated as two points at x=0 and x=len(seq). A rising sequence
// yields a positive slope. This is a cheap direction filter, not a
// least-squares fit.
func Slope(seq []float64) float64 {
	if len(seq) < 2 {
		return 0
	}
	return (seq[0] - seq[len(seq)-1]) / (0 - float64(len(seq)))
}

// Pearson returns the Pearson correlation coefficient of seq against the
// sequence 1..N, i.e. how linearly the values track time. The result lies in
// [-1, 1]. A constant sequence has zero variance and yields NaN; every
// threshold comparison downstream is false for NaN, so flat windows simply
// never fire a signal.
func Pearson(seq []float64) float64 {
	n := float64(len(seq))
	if len(seq) < 2 {
		return math.NaN()
	}

	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i, y := range seq {
		x := float64(i + 1)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
		sumY2 += y * y
	}

	num := n*sumXY - sumX*sumY
	den := math.Sqrt((n*sumX2 - sumX*sumX) * (n*sumY2 - sumY*sumY))
	return num / den
}

// StdDev returns the population standard deviation of seq (divide by N).
func StdDev(seq []float64) float64 {
	if len(seq) == 0 {
		return 0
	}

	var mean float64
	for _, v := range seq {
		mean += v
	}
	mean /= float64(len(seq))

	var variance float64
	for _, v := range seq {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(seq))

	return math.Sqrt(variance)
}

// Divergence reports whether up trends upward and down trends downward more
// strongly than the correlation threshold r. r must lie in [0, 1]; values
// outside that range fail with ErrInvalidArgument. Flat inputs produce NaN
// correlations and never diverge.
func Divergence(up, down []float64, r float64) (bool, error) {
	if r < 0 || r > 1 {
		return false, fmt.Errorf("%w: divergence strength %v outside [0,1]", models.ErrInvalidArgument, r)
	}
	return Pearson(up) > r && Pearson(down) < -r, nil
}

// Mean returns the arithmetic mean of seq, 0 for an empty slice.
func Mean(seq []float64) float64 {
	if len(seq) == 0 {
		return 0
	}
	var sum float64
	for _, v := range seq {
		sum += v
	}
	return sum / float64(len(seq))
}

// Tail returns the last n elements of seq, or seq itself when it is shorter.
func Tail(seq []float64, n int) []float64 {
	if len(seq) <= n {
		return seq
	}
	return seq[len(seq)-n:]
}
