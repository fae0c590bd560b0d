package numfmt_test

import (
	"testing"

	"github.com/sparkcard/sparkcard/internal/numfmt"
)

func TestDynamicScaleTierBoundaries(t *testing.T) {
	cases := []struct {
		magnitude float64
		suffix    string
		decimals  int
	}{
		{999, "", 0},
		{1000, "K", 2},
		{12345, "K", 1},
		{123456, "K", 0},
		{1_000_000, "M", 2},
		{1e9, "B", 2},
		{1e12, "T", 2},
		{1e14, "T", 0},
	}

	for _, tc := range cases {
		spec := numfmt.ChooseFormat(tc.magnitude, numfmt.ModeDynamicScale)
		if spec.Suffix != tc.suffix {
			t.Fatalf("magnitude %v: expected suffix %q, got %q", tc.magnitude, tc.suffix, spec.Suffix)
		}
		if spec.Decimals != tc.decimals {
			t.Fatalf("magnitude %v: expected %d decimals, got %d", tc.magnitude, tc.decimals, spec.Decimals)
		}
	}
}

func TestDynamicScaleRendering(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{999, "999"},
		{1000, "1.00K"},
		{12345, "12.3K"},
		{123456, "123K"},
		{1234567, "1.23M"},
		{-1234567, "-1.23M"},
	}

	for _, tc := range cases {
		if got := numfmt.Format(tc.value, numfmt.ModeDynamicScale); got != tc.want {
			t.Fatalf("Format(%v): expected %q, got %q", tc.value, tc.want, got)
		}
	}
}

func TestDynamicScaleTinyMagnitude(t *testing.T) {
	spec := numfmt.ChooseFormat(0.0002, numfmt.ModeDynamicScale)
	if spec.Decimals != 3 || spec.Suffix != "" {
		t.Fatalf("expected 3 decimals and no suffix below smallest tier, got %+v", spec)
	}
}

func TestPercentModes(t *testing.T) {
	if got := numfmt.Format(0.1234, numfmt.ModeDynamicPercent); got != "12.34%" {
		t.Fatalf("dynamic percent: expected 12.34%%, got %q", got)
	}
	if got := numfmt.Format(1.5, numfmt.ModeFixedPercent); got != "150.00%" {
		t.Fatalf("fixed percent: expected 150.00%%, got %q", got)
	}
}

func TestFixedModes(t *testing.T) {
	if got := numfmt.Format(1234.567, numfmt.ModeFixedWhole); got != "1,235" {
		t.Fatalf("fixed whole: expected 1,235, got %q", got)
	}
	if got := numfmt.Format(1234.56, numfmt.ModeFixed1DP); got != "1,234.6" {
		t.Fatalf("fixed 1dp: expected 1,234.6, got %q", got)
	}
	if got := numfmt.Format(1234.567, numfmt.ModeFixed2DP); got != "1,234.57" {
		t.Fatalf("fixed 2dp: expected 1,234.57, got %q", got)
	}
}

func TestGroupingSeparators(t *testing.T) {
	if got := numfmt.Format(1234567.891, numfmt.ModeFixed2DP); got != "1,234,567.89" {
		t.Fatalf("expected comma grouping, got %q", got)
	}
}

// An unrecognized mode falls back to plain 2-decimal formatting; the
// fallback is part of the contract, not an error path.
func TestUnknownModeFallsBack(t *testing.T) {
	if got := numfmt.Format(1234.567, numfmt.Mode("bogus")); got != "1,234.57" {
		t.Fatalf("expected fallback 1,234.57, got %q", got)
	}
}
