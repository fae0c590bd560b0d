// Package cli wires the chart composers to a command-line surface: row
// loading, per-command flags, and multi-format summary reports.
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sparkcard/sparkcard/internal/numfmt"
	"github.com/sparkcard/sparkcard/internal/render"
	"github.com/sparkcard/sparkcard/internal/series"
)

// Version is the semantic version of the CLI binary and is overridden at build time.
var Version = "dev"

// App wraps the command-line interface logic so it can be reused in tests.
type App struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewApp constructs an App with the provided I/O streams.
func NewApp(stdin io.Reader, stdout, stderr io.Writer) *App {
	return &App{Stdin: stdin, Stdout: stdout, Stderr: stderr}
}

// Run dispatches to the appropriate sub-command based on the provided args.
func (a *App) Run(args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return nil
	}

	switch args[0] {
	case "line":
		return a.runLine(args[1:])
	case "bar":
		return a.runBar(args[1:])
	case "arrow":
		return a.runArrow(args[1:])
	case "version", "--version", "-v":
		a.printVersion()
		return nil
	case "help", "-h", "--help":
		a.printUsage()
		return nil
	default:
		fmt.Fprintf(a.Stderr, "unknown command: %s\n\n", args[0])
		a.printUsage()
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func (a *App) printVersion() {
	version := strings.TrimSpace(Version)
	if version == "" {
		version = "dev"
	}
	fmt.Fprintf(a.Stdout, "sparkcard %s\n", version)
}

// chartFlags are the options shared by the chart commands.
type chartFlags struct {
	input  string
	sheet  string
	title  string
	mode   string
	out    string
	format string
	width  float64
	height float64
	raw    bool
}

func (c *chartFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.input, "input", "-", "input rows: CSV file, XLSX workbook, or - for stdin")
	fs.StringVar(&c.sheet, "sheet", "", "worksheet name for XLSX input (first sheet when empty)")
	fs.StringVar(&c.title, "title", "", "chart title")
	fs.StringVar(&c.mode, "mode", "dynamic-scale", "value format: dynamic-scale, dynamic-percent, fixed-whole, fixed-1dp, fixed-2dp, or fixed-percent")
	fs.StringVar(&c.out, "out", "", "optional file path to write the chart to")
	fs.StringVar(&c.format, "format", "table", "summary format: table, json, or csv")
	fs.Float64Var(&c.width, "width", 0, "canvas width in pixels (0 for the default)")
	fs.Float64Var(&c.height, "height", 0, "canvas height in pixels (0 for the default)")
	fs.BoolVar(&c.raw, "raw", false, "write raw SVG markup instead of a data URL (requires -out)")
}

func parseMode(raw string) (numfmt.Mode, error) {
	value := numfmt.Mode(strings.ToLower(strings.TrimSpace(raw)))
	switch value {
	case "":
		return numfmt.ModeDynamicScale, nil
	case numfmt.ModeDynamicScale, numfmt.ModeDynamicPercent, numfmt.ModeFixedWhole,
		numfmt.ModeFixed1DP, numfmt.ModeFixed2DP, numfmt.ModeFixedPercent:
		return value, nil
	default:
		return "", fmt.Errorf("unsupported mode %q", raw)
	}
}

func styleFor(mode numfmt.Mode) render.Style {
	style := render.DefaultStyle()
	style.Mode = mode
	style.Dynamic = mode == numfmt.ModeDynamicScale
	return style
}

func (a *App) runLine(args []string) error {
	fs := flag.NewFlagSet("line", flag.ContinueOnError)
	fs.SetOutput(a.Stderr)
	var flags chartFlags
	flags.register(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}

	mode, err := parseMode(flags.mode)
	if err != nil {
		return err
	}
	format, err := parseOutputFormat(flags.format)
	if err != nil {
		return err
	}

	rows, err := a.loadRows(flags.input, flags.sheet)
	if err != nil {
		return err
	}
	points := series.Build(rows)

	canvas := render.DefaultCanvas()
	if flags.width > 0 {
		canvas.Width = flags.width
	}
	if flags.height > 0 {
		canvas.Height = flags.height
	}

	doc := render.Line(points, canvas, styleFor(mode), flags.title)

	s := summary{
		Title: "Line chart",
		Metadata: map[string]string{
			"input": describeInput(flags.input),
			"mode":  string(mode),
		},
		Rows: [][2]string{
			{"Points", fmt.Sprintf("%d", len(points))},
		},
	}

	if len(points) > 0 {
		rng := render.RangeOf(series.Values(points))
		last := points[len(points)-1]
		s.Rows = append(s.Rows,
			[2]string{"Headline", numfmt.Format(last.Value, mode)},
			[2]string{"Vs prior", render.PriorRatio(last)},
			[2]string{"Trend", render.Direction(points)},
			[2]string{"Range min", numfmt.Format(rng.Min, mode)},
			[2]string{"Range max", numfmt.Format(rng.Max, mode)},
		)
	}

	footer, err := a.emitDocument(doc, flags.out, flags.raw)
	if err != nil {
		return err
	}
	s.Footer = footer

	return writeSummary(a.Stdout, format, s)
}

func (a *App) runBar(args []string) error {
	fs := flag.NewFlagSet("bar", flag.ContinueOnError)
	fs.SetOutput(a.Stderr)
	var flags chartFlags
	flags.register(fs)
	limit := fs.Int("limit", 0, "show only the top N categories (percentages still use the full set)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	mode, err := parseMode(flags.mode)
	if err != nil {
		return err
	}
	format, err := parseOutputFormat(flags.format)
	if err != nil {
		return err
	}

	rows, err := a.loadRows(flags.input, flags.sheet)
	if err != nil {
		return err
	}
	points := series.Build(rows)

	all := make([]render.Category, len(points))
	total := 0.0
	for i, p := range points {
		all[i] = render.Category{Label: p.Label, Value: p.Value}
		total += p.Value
	}

	shown := all
	if *limit > 0 && *limit < len(all) {
		ranked := make([]render.Category, len(all))
		copy(ranked, all)
		sort.SliceStable(ranked, func(i, j int) bool {
			if ranked[i].Value == ranked[j].Value {
				return ranked[i].Label < ranked[j].Label
			}
			return ranked[i].Value > ranked[j].Value
		})
		shown = ranked[:*limit]
	}

	canvas := render.DefaultBarCanvas()
	if flags.width > 0 {
		canvas.Width = flags.width
	}

	doc := render.Bar(shown, all, canvas, styleFor(mode), flags.title)

	s := summary{
		Title: "Bar chart",
		Metadata: map[string]string{
			"input": describeInput(flags.input),
			"mode":  string(mode),
		},
		Rows: [][2]string{
			{"Categories", fmt.Sprintf("%d of %d", len(shown), len(all))},
			{"Total", numfmt.Format(total, mode)},
		},
	}

	footer, err := a.emitDocument(doc, flags.out, flags.raw)
	if err != nil {
		return err
	}
	s.Footer = footer

	return writeSummary(a.Stdout, format, s)
}

func (a *App) runArrow(args []string) error {
	fs := flag.NewFlagSet("arrow", flag.ContinueOnError)
	fs.SetOutput(a.Stderr)
	input := fs.String("input", "-", "input rows: CSV file, XLSX workbook, or - for stdin")
	sheet := fs.String("sheet", "", "worksheet name for XLSX input (first sheet when empty)")
	color := fs.String("color", render.DefaultStyle().MainColor, "arrow fill color")
	out := fs.String("out", "", "optional file path to write the icon to")
	raw := fs.Bool("raw", false, "write raw SVG markup instead of a data URL (requires -out)")
	formatFlag := fs.String("format", "table", "summary format: table, json, or csv")

	if err := fs.Parse(args); err != nil {
		return err
	}

	format, err := parseOutputFormat(*formatFlag)
	if err != nil {
		return err
	}

	rows, err := a.loadRows(*input, *sheet)
	if err != nil {
		return err
	}
	points := series.Build(rows)

	direction := render.Direction(points)
	doc := render.Arrow(direction, *color)

	s := summary{
		Title: "Trend arrow",
		Metadata: map[string]string{
			"input": describeInput(*input),
		},
		Rows: [][2]string{
			{"Points", fmt.Sprintf("%d", len(points))},
			{"Trend", direction},
		},
	}

	footer, err := a.emitDocument(doc, *out, *raw)
	if err != nil {
		return err
	}
	s.Footer = footer

	return writeSummary(a.Stdout, format, s)
}

// emitDocument writes the composed document to out, or hands it back as
// a footer line when no output path was given.
func (a *App) emitDocument(doc, out string, raw bool) ([]string, error) {
	trimmed := strings.TrimSpace(out)
	if trimmed == "" {
		return []string{doc}, nil
	}

	payload := doc
	if raw {
		payload = strings.TrimPrefix(doc, render.DataURLPrefix)
	}
	if err := os.WriteFile(trimmed, []byte(payload), 0o644); err != nil {
		return nil, fmt.Errorf("write chart: %w", err)
	}
	return []string{fmt.Sprintf("chart written to %s", trimmed)}, nil
}

func describeInput(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" || trimmed == "-" {
		return "stdin"
	}
	return trimmed
}

func (a *App) printUsage() {
	fmt.Fprintln(a.Stdout, "Usage:")
	fmt.Fprintln(a.Stdout, "  sparkcard line [flags]   # Compose a sparkline card from series rows")
	fmt.Fprintln(a.Stdout, "  sparkcard bar [flags]    # Compose a horizontal bar chart from category rows")
	fmt.Fprintln(a.Stdout, "  sparkcard arrow [flags]  # Compose a trend arrow icon from series rows")
	fmt.Fprintln(a.Stdout)
	fmt.Fprintln(a.Stdout, "Run 'sparkcard line -h' or 'sparkcard bar -h' for detailed flag information.")
}
