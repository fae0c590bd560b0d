// Package trend fits an ordinary-least-squares line over (index, value)
// pairs and classifies its direction.
package trend

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Result is the fitted line y = Slope*x + Intercept.
type Result struct {
	Slope     float64
	Intercept float64
}

// Fit computes the least-squares line over the paired samples. Degenerate
// inputs never fail: zero samples yield a flat line at zero, a single
// sample yields a flat line through it, and identical x values (which the
// regression cannot resolve) yield a flat line through the mean of y.
func Fit(xs, ys []float64) Result {
	if len(xs) != len(ys) {
		panic("trend: mismatched sample lengths")
	}

	switch len(xs) {
	case 0:
		return Result{}
	case 1:
		return Result{Slope: 0, Intercept: ys[0]}
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	if !isFinite(slope) || !isFinite(intercept) {
		return Result{Slope: 0, Intercept: stat.Mean(ys, nil)}
	}

	return Result{Slope: slope, Intercept: intercept}
}

// At evaluates the fitted line at x.
func (r Result) At(x float64) float64 {
	return r.Slope*x + r.Intercept
}

// Direction returns "up" for a non-negative slope and "down" otherwise.
// A perfectly flat fit classifies as "up"; the asymmetry is intentional
// and relied upon by the arrow indicator.
func (r Result) Direction() string {
	if r.Slope >= 0 {
		return "up"
	}
	return "down"
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
