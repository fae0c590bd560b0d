// Package series normalizes raw tabular rows into the ordered, indexed
// form consumed by the chart renderers.
package series

import (
	"math"
	"sort"
)

// RawRow is one observation as supplied by the host data layer. SortKey is
// any ascending ordinal the host chooses (unix timestamp, month number,
// fiscal period index). Value and Prior are nil when the underlying cell
// was blank.
type RawRow struct {
	SortKey float64
	Label   string
	Value   *float64
	Prior   *float64
}

// Point is a validated observation with its dense 0-based index assigned.
// Prior stays nil when the row carried no prior-period value.
type Point struct {
	Index   int
	SortKey float64
	Label   string
	Value   float64
	Prior   *float64
}

// Build filters and orders raw rows into an indexed series. Rows whose
// primary value is nil or NaN are dropped; prior-value gaps are retained.
// The result is always ascending by SortKey regardless of input order, and
// indices are contiguous 0..N-1 when sort keys are distinct.
//
// Duplicate sort keys are a caller error: dense ranking collapses them onto
// the same index, which the renderers cannot distinguish from a single
// category. Callers must pre-aggregate before handing rows to Build.
//
// An empty result is valid and means "no data"; the composers render a
// placeholder document for it.
func Build(rows []RawRow) []Point {
	kept := make([]RawRow, 0, len(rows))
	for _, row := range rows {
		if row.Value == nil || math.IsNaN(*row.Value) {
			continue
		}
		kept = append(kept, row)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].SortKey < kept[j].SortKey
	})

	points := make([]Point, 0, len(kept))
	index := -1
	for i, row := range kept {
		if i == 0 || row.SortKey != kept[i-1].SortKey {
			index++
		}
		points = append(points, Point{
			Index:   index,
			SortKey: row.SortKey,
			Label:   row.Label,
			Value:   *row.Value,
			Prior:   row.Prior,
		})
	}

	return points
}

// Values extracts the primary values in series order.
func Values(points []Point) []float64 {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Value
	}
	return values
}
