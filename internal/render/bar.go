package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sparkcard/sparkcard/internal/numfmt"
)

// Category is one horizontal bar: a label and its magnitude.
type Category struct {
	Label string
	Value float64
}

// maxBarRows caps the rendered category count.
const maxBarRows = 1000

// Bar composes a horizontal bar chart. Bars come from shown, sorted
// descending by value and capped at maxBarRows, but both the bar scale
// and the percentage annotations are computed against all — the
// unfiltered category set — so a filtered view still reads as a share of
// the whole. Passing nil for all treats shown as the full set. The
// document height follows the row count; canvas.Height is ignored.
func Bar(shown, all []Category, canvas Canvas, style Style, title string) string {
	if len(shown) == 0 {
		return Placeholder(style)
	}
	if len(all) == 0 {
		all = shown
	}

	ranked := make([]Category, len(shown))
	copy(ranked, shown)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Value == ranked[j].Value {
			return ranked[i].Label < ranked[j].Label
		}
		return ranked[i].Value > ranked[j].Value
	})
	if len(ranked) > maxBarRows {
		ranked = ranked[:maxBarRows]
	}

	maxAll := 0.0
	totalAll := 0.0
	for _, c := range all {
		if c.Value > maxAll {
			maxAll = c.Value
		}
		totalAll += c.Value
	}
	if maxAll < epsilon {
		maxAll = epsilon
	}

	rowStep := style.BarHeight + style.RowGap
	height := canvas.MarginTop + float64(len(ranked))*rowStep - style.RowGap + canvas.MarginBottom

	var b strings.Builder
	b.Grow(1024 + len(ranked)*160)
	openDocument(&b, canvas.Width, height)

	plotLeft := canvas.plotLeft()
	plotWidth := canvas.plotWidth()

	if title != "" {
		text(&b, plotLeft, canvas.MarginTop-8, style.SubtitleSize, style.TextColor, style.FontFamily, "start", escape(title))
	}

	mode := style.valueMode()
	for i, c := range ranked {
		y := canvas.MarginTop + float64(i)*rowStep
		w := c.Value / maxAll * plotWidth
		if w < 0 {
			w = 0
		}

		b.WriteString(fmt.Sprintf(`<rect x="%0.1f" y="%0.1f" width="%0.1f" height="%0.1f" fill="%s"/>`,
			plotLeft, y, w, style.BarHeight, style.MainColor))

		labelY := y + style.BarHeight*0.5 + style.LabelSize*0.35
		text(&b, plotLeft-6, labelY, style.LabelSize, style.TextColor, style.FontFamily, "end", escape(c.Label))

		share := noValueGlyph
		if totalAll != 0 {
			share = numfmt.Format(c.Value/totalAll, numfmt.ModeDynamicPercent)
		}
		annotation := fmt.Sprintf("%s (%s)", numfmt.Format(c.Value, mode), share)
		text(&b, plotLeft+w+6, labelY, style.LabelSize, style.MutedColor, style.FontFamily, "start", annotation)
	}

	b.WriteString("</svg>")
	return DataURLPrefix + b.String()
}
