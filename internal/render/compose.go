// Package render composes self-contained SVG documents from indexed
// series and wraps them as inline data URLs.
package render

import (
	"fmt"
	"strings"

	"github.com/sparkcard/sparkcard/internal/numfmt"
	"github.com/sparkcard/sparkcard/internal/series"
	"github.com/sparkcard/sparkcard/internal/trend"
)

// DataURLPrefix precedes every composed document so the result drops
// straight into an image-URL slot.
const DataURLPrefix = "data:image/svg+xml;utf8,"

// noValueGlyph stands in for ratios that cannot be computed.
const noValueGlyph = "--"

// Line composes a sparkline card: primary polyline, muted prior-period
// polyline (omitted entirely when no point carries a prior value), dashed
// least-squares trend line, headline value with its prior ratio, and
// three labels per axis. An empty series yields the placeholder document.
// Identical inputs produce byte-identical markup.
func Line(points []series.Point, canvas Canvas, style Style, title string) string {
	if len(points) == 0 {
		return Placeholder(style)
	}

	values := series.Values(points)
	rng := RangeOf(values)
	n := points[len(points)-1].Index + 1
	ctx := NewContext(canvas, n, rng)

	var b strings.Builder
	b.Grow(2048)
	openDocument(&b, canvas.Width, canvas.Height)

	plotLeft := canvas.plotLeft()
	plotRight := plotLeft + canvas.plotWidth()
	plotTop := canvas.plotTop()
	plotBottom := plotTop + canvas.plotHeight()

	// Prior series first so the primary line draws over it.
	priorPoints := priorPolyline(points, ctx)
	if priorPoints != "" {
		b.WriteString(fmt.Sprintf(`<polyline fill="none" stroke="%s" stroke-width="1.5" points="%s"/>`, style.PriorColor, priorPoints))
	}

	var main strings.Builder
	for i, p := range points {
		if i > 0 {
			main.WriteByte(' ')
		}
		main.WriteString(fmt.Sprintf("%0.2f,%0.2f", ctx.X(p.Index), ctx.Y(p.Value)))
	}
	b.WriteString(fmt.Sprintf(`<polyline fill="none" stroke="%s" stroke-width="2" points="%s"/>`, style.MainColor, main.String()))

	fit := fitSeries(points)
	b.WriteString(fmt.Sprintf(`<line x1="%0.1f" y1="%0.1f" x2="%0.1f" y2="%0.1f" stroke="%s" stroke-width="1" stroke-dasharray="4 3"/>`,
		ctx.X(0), ctx.Y(fit.At(0)), ctx.X(n-1), ctx.Y(fit.At(float64(n-1))), style.TrendColor))

	if title != "" {
		text(&b, plotLeft, plotTop+style.SubtitleSize, style.SubtitleSize, style.TextColor, style.FontFamily, "start", escape(title))
	}

	last := points[len(points)-1]
	headline := numfmt.Format(last.Value, style.valueMode())
	text(&b, plotRight, plotTop+style.HeadlineSize, style.HeadlineSize, style.TextColor, style.FontFamily, "end", headline)
	text(&b, plotRight, plotTop+style.HeadlineSize+style.SubtitleSize+2, style.SubtitleSize, style.MutedColor, style.FontFamily, "end", PriorRatio(last))

	mid := points[len(points)/2]
	labelY := plotBottom + style.LabelSize + 4
	text(&b, ctx.X(points[0].Index), labelY, style.LabelSize, style.MutedColor, style.FontFamily, "start", escape(points[0].Label))
	text(&b, ctx.X(mid.Index), labelY, style.LabelSize, style.MutedColor, style.FontFamily, "middle", escape(mid.Label))
	text(&b, ctx.X(last.Index), labelY, style.LabelSize, style.MutedColor, style.FontFamily, "end", escape(last.Label))

	mode := style.valueMode()
	text(&b, plotLeft-6, plotBottom+3, style.LabelSize, style.MutedColor, style.FontFamily, "end", numfmt.Format(rng.Min, mode))
	text(&b, plotLeft-6, (plotTop+plotBottom)/2+3, style.LabelSize, style.MutedColor, style.FontFamily, "end", numfmt.Format(rng.mid(), mode))
	text(&b, plotLeft-6, plotTop+3, style.LabelSize, style.MutedColor, style.FontFamily, "end", numfmt.Format(rng.Max, mode))

	b.WriteString("</svg>")
	return DataURLPrefix + b.String()
}

// Placeholder is the single designated empty-state document: a small
// fixed canvas with centered "No data" text and no chart elements.
func Placeholder(style Style) string {
	var b strings.Builder
	openDocument(&b, 120, 40)
	text(&b, 60, 24, style.SubtitleSize, style.MutedColor, style.FontFamily, "middle", "No data")
	b.WriteString("</svg>")
	return DataURLPrefix + b.String()
}

// Arrow emits a fixed-path directional indicator icon. Any direction
// other than "down" points up, matching the trend classification.
func Arrow(direction, color string) string {
	path := "M12 4 L20 13 L15 13 L15 20 L9 20 L9 13 L4 13 Z"
	if direction == "down" {
		path = "M12 20 L4 11 L9 11 L9 4 L15 4 L15 11 L20 11 Z"
	}
	var b strings.Builder
	openDocument(&b, 24, 24)
	b.WriteString(fmt.Sprintf(`<path d="%s" fill="%s"/>`, path, color))
	b.WriteString("</svg>")
	return DataURLPrefix + b.String()
}

// fitSeries fits the least-squares trend over (index, value) pairs.
func fitSeries(points []series.Point) trend.Result {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = float64(p.Index)
		ys[i] = p.Value
	}
	return trend.Fit(xs, ys)
}

// Direction classifies the series' fitted trend; the arrow command and
// host surfaces key icons off it.
func Direction(points []series.Point) string {
	return fitSeries(points).Direction()
}

// priorPolyline collects coordinates for points carrying a prior value.
// The empty string means the element must be omitted, not emitted empty.
func priorPolyline(points []series.Point, ctx Context) string {
	var b strings.Builder
	for _, p := range points {
		if p.Prior == nil {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%0.2f,%0.2f", ctx.X(p.Index), ctx.Y(*p.Prior)))
	}
	return b.String()
}

// PriorRatio renders the most recent value as a percentage of its prior,
// or the placeholder glyph when the prior is absent or zero.
func PriorRatio(p series.Point) string {
	if p.Prior == nil || *p.Prior == 0 {
		return noValueGlyph
	}
	return numfmt.Format(p.Value/(*p.Prior), numfmt.ModeDynamicPercent)
}

func openDocument(b *strings.Builder, width, height float64) {
	b.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%0.0f" height="%0.0f" viewBox="0 0 %0.0f %0.0f">`, width, height, width, height))
	b.WriteString(`<rect width="100%" height="100%" fill="#ffffff"/>`)
}

func text(b *strings.Builder, x, y, size float64, fill, family, anchor, s string) {
	b.WriteString(fmt.Sprintf(`<text x="%0.1f" y="%0.1f" font-family="%s" font-size="%0.0f" fill="%s" text-anchor="%s">%s</text>`,
		x, y, family, size, fill, anchor, s))
}

// escape keeps the markup well-formed for free text containing
// ampersands. Other reserved characters pass through unchanged; that is
// a documented limitation of the format, not an oversight.
func escape(s string) string {
	return strings.ReplaceAll(s, "&", "&amp;")
}
