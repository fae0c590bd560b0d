package render

import "github.com/sparkcard/sparkcard/internal/numfmt"

// Canvas fixes the pixel space for one render call. PlotOffset is an
// extra left inset between the margin and the plot rectangle, reserving
// room for Y-axis labels.
type Canvas struct {
	Width  float64
	Height float64

	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64

	PlotOffset float64
}

func (c Canvas) plotLeft() float64 {
	return c.MarginLeft + c.PlotOffset
}

func (c Canvas) plotTop() float64 {
	return c.MarginTop
}

func (c Canvas) plotWidth() float64 {
	w := c.Width - c.MarginRight - c.plotLeft()
	if w < 1 {
		w = 1
	}
	return w
}

func (c Canvas) plotHeight() float64 {
	h := c.Height - c.MarginBottom - c.MarginTop
	if h < 1 {
		h = 1
	}
	return h
}

// DefaultCanvas is sized for an inline sparkline card.
func DefaultCanvas() Canvas {
	return Canvas{
		Width:        260,
		Height:       140,
		MarginTop:    10,
		MarginRight:  12,
		MarginBottom: 24,
		MarginLeft:   8,
		PlotOffset:   34,
	}
}

// DefaultBarCanvas leaves room for category labels on the left and value
// annotations on the right; the document height is derived from the row
// count at render time.
func DefaultBarCanvas() Canvas {
	return Canvas{
		Width:        320,
		Height:       140,
		MarginTop:    30,
		MarginRight:  76,
		MarginBottom: 10,
		MarginLeft:   92,
	}
}

// Style is the configuration surface consumed by the composers: palette,
// typography, bar geometry and the numeric-format selection.
type Style struct {
	MainColor  string
	PriorColor string
	TrendColor string
	TextColor  string
	MutedColor string

	FontFamily   string
	HeadlineSize float64
	SubtitleSize float64
	LabelSize    float64

	BarHeight float64
	RowGap    float64

	// Mode picks the label format; Dynamic overrides it with
	// magnitude-scaled formatting when set.
	Mode    numfmt.Mode
	Dynamic bool
}

func DefaultStyle() Style {
	return Style{
		MainColor:    "#1f77b4",
		PriorColor:   "#c3cdd7",
		TrendColor:   "#ff7f0e",
		TextColor:    "#1f2933",
		MutedColor:   "#6b7280",
		FontFamily:   "Helvetica Neue, Helvetica, Arial, sans-serif",
		HeadlineSize: 16,
		SubtitleSize: 10,
		LabelSize:    9,
		BarHeight:    14,
		RowGap:       4,
		Mode:         numfmt.ModeFixed2DP,
		Dynamic:      true,
	}
}

func (s Style) valueMode() numfmt.Mode {
	if s.Dynamic {
		return numfmt.ModeDynamicScale
	}
	return s.Mode
}
