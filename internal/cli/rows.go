package cli

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/sparkcard/sparkcard/internal/series"
)

// loadRows reads raw series rows from a CSV file, an XLSX workbook, or
// stdin (path "-" or empty). Columns are sortKey,label,value[,prior];
// a leading header row is skipped when its sort key does not parse.
func (a *App) loadRows(path, sheet string) ([]series.RawRow, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" || trimmed == "-" {
		return parseCSV(a.Stdin)
	}

	switch strings.ToLower(filepath.Ext(trimmed)) {
	case ".xlsx", ".xlsm":
		return parseWorkbook(trimmed, sheet)
	}

	file, err := os.Open(trimmed)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", trimmed, err)
	}
	defer file.Close()

	rows, err := parseCSV(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", trimmed, err)
	}
	return rows, nil
}

func parseCSV(r io.Reader) ([]series.RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return rowsFromRecords(records)
}

func parseWorkbook(path, sheet string) ([]series.RawRow, error) {
	book, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer book.Close()

	name := strings.TrimSpace(sheet)
	if name == "" {
		name = book.GetSheetName(0)
	}

	records, err := book.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", name, err)
	}

	rows, err := rowsFromRecords(records)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", name, err)
	}
	return rows, nil
}

func rowsFromRecords(records [][]string) ([]series.RawRow, error) {
	rows := make([]series.RawRow, 0, len(records))

	for i, record := range records {
		if len(record) < 3 {
			if i == 0 {
				continue
			}
			return nil, fmt.Errorf("row %d: expected sortKey,label,value[,prior], got %d columns", i+1, len(record))
		}

		key, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		if err != nil {
			if i == 0 {
				// Header row.
				continue
			}
			return nil, fmt.Errorf("row %d: parse sort key %q: %w", i+1, record[0], err)
		}

		value, err := parseOptional(record[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: parse value %q: %w", i+1, record[2], err)
		}

		var prior *float64
		if len(record) > 3 {
			prior, err = parseOptional(record[3])
			if err != nil {
				return nil, fmt.Errorf("row %d: parse prior %q: %w", i+1, record[3], err)
			}
		}

		rows = append(rows, series.RawRow{
			SortKey: key,
			Label:   strings.TrimSpace(record[1]),
			Value:   value,
			Prior:   prior,
		})
	}

	if len(rows) == 0 {
		return nil, errors.New("no data rows found")
	}

	return rows, nil
}

// parseOptional treats a blank cell as a missing value rather than zero.
func parseOptional(raw string) (*float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
