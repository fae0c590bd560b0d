// Package numfmt chooses and applies display formats for chart labels,
// scaling large magnitudes into K/M/B/T suffixes with magnitude-aware
// precision.
package numfmt

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Mode selects how values are stringified.
type Mode string

const (
	ModeDynamicScale   Mode = "dynamic-scale"
	ModeDynamicPercent Mode = "dynamic-percent"
	ModeFixedWhole     Mode = "fixed-whole"
	ModeFixed1DP       Mode = "fixed-1dp"
	ModeFixed2DP       Mode = "fixed-2dp"
	ModeFixedPercent   Mode = "fixed-percent"
)

// Kind tags the rendering strategy a Spec carries.
type Kind int

const (
	// KindNumber renders the value as-is with grouping.
	KindNumber Kind = iota
	// KindScaled divides by a power of a thousand and appends a suffix.
	KindScaled
	// KindPercent multiplies by 100 and appends a percent sign.
	KindPercent
)

// Spec is a resolved format: strategy, precision and, for scaled output,
// the divisor/suffix pair.
type Spec struct {
	Kind     Kind
	Decimals int
	Divisor  float64
	Suffix   string
}

// scaleTiers maps magnitude thresholds (inclusive at the lower bound) to
// suffix and precision. Within each suffix the precision drops as the
// magnitude grows, so 1,234 renders as 1.23K but 123,456 as 123K.
var scaleTiers = []struct {
	threshold float64
	divisor   float64
	suffix    string
	decimals  int
}{
	{1e14, 1e12, "T", 0},
	{1e13, 1e12, "T", 1},
	{1e12, 1e12, "T", 2},
	{1e11, 1e9, "B", 0},
	{1e10, 1e9, "B", 1},
	{1e9, 1e9, "B", 2},
	{1e8, 1e6, "M", 0},
	{1e7, 1e6, "M", 1},
	{1e6, 1e6, "M", 2},
	{1e5, 1e3, "K", 0},
	{1e4, 1e3, "K", 1},
	{1e3, 1e3, "K", 2},
	{0.001, 1, "", 0},
}

// ChooseFormat resolves a Spec from a magnitude and a mode. The magnitude
// is taken by absolute value so negative inputs land in the same tier as
// their positive counterparts. An unrecognized mode falls back to plain
// 2-decimal formatting; the fallback is the documented default, not an
// error.
func ChooseFormat(magnitude float64, mode Mode) Spec {
	switch mode {
	case ModeDynamicScale:
		a := math.Abs(magnitude)
		for _, tier := range scaleTiers {
			if a >= tier.threshold {
				return Spec{Kind: KindScaled, Decimals: tier.decimals, Divisor: tier.divisor, Suffix: tier.suffix}
			}
		}
		// Below the smallest tier: keep three decimals so tiny values
		// do not collapse to "0".
		return Spec{Kind: KindNumber, Decimals: 3, Divisor: 1}
	case ModeDynamicPercent, ModeFixedPercent:
		return Spec{Kind: KindPercent, Decimals: 2, Divisor: 1}
	case ModeFixedWhole:
		return Spec{Kind: KindNumber, Decimals: 0, Divisor: 1}
	case ModeFixed1DP:
		return Spec{Kind: KindNumber, Decimals: 1, Divisor: 1}
	case ModeFixed2DP:
		return Spec{Kind: KindNumber, Decimals: 2, Divisor: 1}
	default:
		return Spec{Kind: KindNumber, Decimals: 2, Divisor: 1}
	}
}

// Fixed en-US convention: comma grouping, dot decimal. The core offers no
// locale parameterization.
var printer = message.NewPrinter(language.English)

// Render stringifies a value under the given spec. The sign survives
// scaling, so -1,234,567 in the M tier renders as "-1.23M".
func Render(value float64, spec Spec) string {
	switch spec.Kind {
	case KindScaled:
		divisor := spec.Divisor
		if divisor == 0 {
			divisor = 1
		}
		return group(value/divisor, spec.Decimals) + spec.Suffix
	case KindPercent:
		return group(value*100, spec.Decimals) + "%"
	default:
		return group(value, spec.Decimals)
	}
}

// Format is the common choose-then-render path: the tier is picked from
// the value's own magnitude.
func Format(value float64, mode Mode) string {
	return Render(value, ChooseFormat(value, mode))
}

func group(value float64, decimals int) string {
	if value == 0 {
		// Normalize negative zero so flat series never label "-0".
		value = 0
	}
	return printer.Sprintf("%v", number.Decimal(value,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals)))
}
