package render

import "gonum.org/v1/gonum/floats"

// epsilon floors every span denominator so flat series and single points
// scale without dividing by zero.
const epsilon = 1e-9

// Range is the padded value extent a chart maps onto its plot height.
type Range struct {
	Min float64
	Max float64
}

// RangeOf pads the observed extent asymmetrically: extra headroom above
// the maximum keeps the headline text clear of the polyline, a thinner
// band below the minimum keeps troughs off the axis.
func RangeOf(values []float64) Range {
	min := floats.Min(values)
	max := floats.Max(values)
	span := max - min
	if span < epsilon {
		span = epsilon
	}
	return Range{
		Min: min - span*0.06,
		Max: max + span*0.18,
	}
}

// mid returns the vertical midpoint of the range.
func (r Range) mid() float64 {
	return (r.Min + r.Max) / 2
}

// Context maps logical index/value space onto canvas pixels. It is built
// once per render and closed over by the emit loops; no state mutates
// after construction.
type Context struct {
	canvas Canvas
	n      int
	rng    Range
}

// NewContext binds a canvas to a series of n points spanning rng.
func NewContext(canvas Canvas, n int, rng Range) Context {
	return Context{canvas: canvas, n: n, rng: rng}
}

// X maps a 0-based index onto the plot's horizontal extent. A single
// point lands on the plot's left edge: the divisor clamps to 1 rather
// than dividing by zero.
func (c Context) X(index int) float64 {
	div := float64(c.n - 1)
	if div < 1 {
		div = 1
	}
	return c.canvas.plotLeft() + float64(index)/div*c.canvas.plotWidth()
}

// Y maps a value onto the plot's vertical extent, inverted so larger
// values render higher. Inputs are not clamped; callers only pass values
// the range was computed from (the trend line may poke past the padding,
// which is fine).
func (c Context) Y(value float64) float64 {
	span := c.rng.Max - c.rng.Min
	if span < epsilon {
		span = epsilon
	}
	return c.canvas.plotTop() + (1-(value-c.rng.Min)/span)*c.canvas.plotHeight()
}
