// SPDX-License-Identifier: EPL-2.0

package features

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Table is a feature matrix with one row per frame in time order.
// Every row has len(Columns) values.
type Table struct {
	Columns []string
	Rows    [][]float64
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// Column returns the values of the named column, or false when there is none.
func (t *Table) Column(name string) ([]float64, bool) {
	for i, c := range t.Columns {
		if c != name {
			continue
		}
		out := make([]float64, len(t.Rows))
		for r, row := range t.Rows {
			out[r] = row[i]
		}
		return out, true
	}
	return nil, false
}

// WriteCSV writes a header line with the column names followed by one line
// per row.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	record := make([]string, len(t.Columns))
	for r, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("row %d has %d values, want %d", r, len(row), len(t.Columns))
		}
		for i, v := range row {
			record[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row %d: %w", r, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
