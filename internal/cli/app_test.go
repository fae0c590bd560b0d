package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sparkcard/sparkcard/internal/cli"
	"github.com/sparkcard/sparkcard/internal/render"
)

const sampleCSV = "sortKey,label,value,prior\n" +
	"1,Jan,10,8\n" +
	"2,Feb,14,\n" +
	"3,Mar,30,20\n"

type jsonSummary struct {
	Title    string            `json:"title"`
	Metadata map[string]string `json:"metadata"`
	Facts    map[string]string `json:"facts"`
	Footer   []string          `json:"footer"`
}

func runApp(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	app := cli.NewApp(strings.NewReader(stdin), stdout, stderr)
	err := app.Run(args)
	return stdout.String(), stderr.String(), err
}

func TestAppLineJSON(t *testing.T) {
	stdout, _, err := runApp(t, sampleCSV, "line", "-format", "json", "-title", "Revenue")
	if err != nil {
		t.Fatalf("Run line json: %v", err)
	}

	var payload jsonSummary
	if err := json.Unmarshal([]byte(stdout), &payload); err != nil {
		t.Fatalf("unmarshal json: %v\n%s", err, stdout)
	}

	if got := payload.Facts["Points"]; got != "3" {
		t.Fatalf("expected 3 points, got %q", got)
	}
	if got := payload.Facts["Trend"]; got != "up" {
		t.Fatalf("expected trend up, got %q", got)
	}
	if got := payload.Facts["Headline"]; got != "30" {
		t.Fatalf("expected headline 30, got %q", got)
	}
	if got := payload.Facts["Vs prior"]; got != "150.00%" {
		t.Fatalf("expected ratio 150.00%%, got %q", got)
	}
	if len(payload.Footer) != 1 || !strings.HasPrefix(payload.Footer[0], render.DataURLPrefix) {
		t.Fatalf("expected data URL footer, got %v", payload.Footer)
	}
}

func TestAppLineWritesRawSVG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "chart.svg")

	stdout, _, err := runApp(t, sampleCSV, "line", "-out", out, "-raw")
	if err != nil {
		t.Fatalf("Run line -out: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read chart: %v", err)
	}
	if !strings.HasPrefix(string(data), "<svg") {
		t.Fatalf("expected raw SVG markup, got %q", string(data)[:20])
	}
	if !strings.Contains(stdout, out) {
		t.Fatalf("expected footer to mention %s:\n%s", out, stdout)
	}
}

func TestAppBarLimitKeepsUnfilteredTotal(t *testing.T) {
	csv := "1,alpha,5\n2,beta,20\n3,gamma,10\n"

	stdout, _, err := runApp(t, csv, "bar", "-limit", "1", "-format", "json")
	if err != nil {
		t.Fatalf("Run bar: %v", err)
	}

	var payload jsonSummary
	if err := json.Unmarshal([]byte(stdout), &payload); err != nil {
		t.Fatalf("unmarshal json: %v\n%s", err, stdout)
	}

	if got := payload.Facts["Categories"]; got != "1 of 3" {
		t.Fatalf("expected 1 of 3 categories, got %q", got)
	}
	if len(payload.Footer) != 1 || !strings.Contains(payload.Footer[0], "57.14%") {
		t.Fatalf("expected share of the full set in the document, got %v", payload.Footer)
	}
}

func TestAppArrowDirection(t *testing.T) {
	csv := "1,a,9\n2,b,6\n3,c,3\n"

	stdout, _, err := runApp(t, csv, "arrow", "-format", "json")
	if err != nil {
		t.Fatalf("Run arrow: %v", err)
	}

	var payload jsonSummary
	if err := json.Unmarshal([]byte(stdout), &payload); err != nil {
		t.Fatalf("unmarshal json: %v\n%s", err, stdout)
	}

	if got := payload.Facts["Trend"]; got != "down" {
		t.Fatalf("expected trend down, got %q", got)
	}
	if len(payload.Footer) != 1 || !strings.Contains(payload.Footer[0], "<path") {
		t.Fatalf("expected arrow path in footer, got %v", payload.Footer)
	}
}

func TestAppHeaderRowSkipped(t *testing.T) {
	stdout, _, err := runApp(t, sampleCSV, "line", "-format", "json")
	if err != nil {
		t.Fatalf("Run line: %v", err)
	}

	var payload jsonSummary
	if err := json.Unmarshal([]byte(stdout), &payload); err != nil {
		t.Fatalf("unmarshal json: %v\n%s", err, stdout)
	}
	if got := payload.Facts["Points"]; got != "3" {
		t.Fatalf("expected header row to be skipped, got %q points", got)
	}
}

func TestAppTableFormat(t *testing.T) {
	stdout, _, err := runApp(t, sampleCSV, "line", "-title", "Revenue")
	if err != nil {
		t.Fatalf("Run line table: %v", err)
	}

	if !strings.Contains(stdout, "Line chart") {
		t.Fatalf("expected summary title, got:\n%s", stdout)
	}
	if !strings.Contains(stdout, render.DataURLPrefix) {
		t.Fatalf("expected data URL in output:\n%s", stdout)
	}
}

func TestAppUnknownCommand(t *testing.T) {
	_, stderr, err := runApp(t, "", "sparkle")
	if err == nil {
		t.Fatalf("expected error for unknown command")
	}
	if !strings.Contains(stderr, "unknown command") {
		t.Fatalf("expected usage hint on stderr, got:\n%s", stderr)
	}
}

func TestAppBadMode(t *testing.T) {
	_, _, err := runApp(t, sampleCSV, "line", "-mode", "fancy")
	if err == nil || !strings.Contains(err.Error(), "unsupported mode") {
		t.Fatalf("expected unsupported mode error, got %v", err)
	}
}

func TestAppBadFormat(t *testing.T) {
	_, _, err := runApp(t, sampleCSV, "line", "-format", "yaml")
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Fatalf("expected unsupported format error, got %v", err)
	}
}

func TestAppMalformedRow(t *testing.T) {
	_, _, err := runApp(t, "1,Jan,ten\n", "line")
	if err == nil {
		t.Fatalf("expected parse error for non-numeric value")
	}
}
