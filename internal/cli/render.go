package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
)

type outputFormat string

const (
	formatTable outputFormat = "table"
	formatJSON  outputFormat = "json"
	formatCSV   outputFormat = "csv"
)

func parseOutputFormat(raw string) (outputFormat, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch outputFormat(value) {
	case formatTable, formatJSON, formatCSV:
		return outputFormat(value), nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected table, json, or csv)", raw)
	}
}

// summary is the outcome every chart command reports: key/value facts
// about the composed document plus a footer carrying the data URL or the
// output path.
type summary struct {
	Title    string
	Metadata map[string]string
	Rows     [][2]string
	Footer   []string
}

func writeSummary(w io.Writer, format outputFormat, s summary) error {
	switch format {
	case formatTable:
		if s.Title != "" {
			fmt.Fprintln(w, s.Title)
			fmt.Fprintln(w)
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, row := range s.Rows {
			fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1])
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		for _, line := range s.Footer {
			fmt.Fprintln(w)
			fmt.Fprintln(w, line)
		}
		return nil

	case formatJSON:
		facts := make(map[string]string, len(s.Rows))
		for _, row := range s.Rows {
			facts[row[0]] = row[1]
		}
		payload := map[string]any{
			"title":    s.Title,
			"metadata": s.Metadata,
			"facts":    facts,
			"footer":   s.Footer,
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case formatCSV:
		if s.Title != "" {
			if _, err := fmt.Fprintf(w, "# %s\n", s.Title); err != nil {
				return err
			}
		}
		keys := make([]string, 0, len(s.Metadata))
		for k := range s.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if _, err := fmt.Fprintf(w, "# %s: %s\n", key, s.Metadata[key]); err != nil {
				return err
			}
		}

		writer := csv.NewWriter(w)
		if err := writer.Write([]string{"fact", "value"}); err != nil {
			return err
		}
		for _, row := range s.Rows {
			if err := writer.Write([]string{row[0], row[1]}); err != nil {
				return err
			}
		}
		for _, line := range s.Footer {
			if err := writer.Write([]string{"output", line}); err != nil {
				return err
			}
		}
		writer.Flush()
		return writer.Error()
	}

	return fmt.Errorf("unknown format %q", format)
}
