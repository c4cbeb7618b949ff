// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package table holds CSV datasets in memory as rows with named columns and
// selects rows by predicate.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// MissingColumnError reports a read of a column the dataset does not have.
type MissingColumnError struct {
	Dataset string
	Column  string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("dataset %s: missing column %q", e.Dataset, e.Column)
}

// Table is an immutable, loaded dataset.
type Table struct {
	name   string
	header []string
	index  map[string]int
	rows   [][]string
}

// Row is a view of one table row.
type Row struct {
	table *Table
	cells []string
}

// Read parses CSV from r. The first record is the header. Short records are
// padded with empty cells; a UTF-8 byte order mark on the header is dropped.
// A bare quote inside an unquoted field, such as an inch mark, is kept as text.
func Read(name string, r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return &Table{name: name, index: map[string]int{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s header: %w", name, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	t := &Table{
		name:   name,
		header: header,
		index:  make(map[string]int, len(header)),
	}
	for i, col := range header {
		if _, dup := t.index[col]; !dup {
			t.index[col] = i
		}
	}

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		if len(rec) < len(header) {
			padded := make([]string, len(header))
			copy(padded, rec)
			rec = padded
		}
		t.rows = append(t.rows, rec)
	}

	return t, nil
}

// Load reads the CSV file at path. The table is named after the path.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()
	return Read(path, f)
}

// Name identifies the dataset in errors and logs.
func (t *Table) Name() string { return t.name }

// Columns returns the header in file order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.header...)
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// HasColumn reports whether the header contains col.
func (t *Table) HasColumn(col string) bool {
	_, ok := t.index[col]
	return ok
}

// Require returns a *MissingColumnError for the first absent column.
func (t *Table) Require(cols ...string) error {
	for _, c := range cols {
		if !t.HasColumn(c) {
			return &MissingColumnError{Dataset: t.name, Column: c}
		}
	}
	return nil
}

// Rows returns every row in source order.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	for i, cells := range t.rows {
		out[i] = Row{table: t, cells: cells}
	}
	return out
}

// Select returns the rows for which pred is true, in source order.
// The first predicate error aborts the scan and is returned.
func (t *Table) Select(pred func(Row) (bool, error)) ([]Row, error) {
	var out []Row
	for i, cells := range t.rows {
		row := Row{table: t, cells: cells}
		ok, err := pred(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if ok {
			out = append(out, row)
		}
	}
	return out, nil
}

// Get returns the cell under col, or a *MissingColumnError when the table
// has no such column.
func (r Row) Get(col string) (string, error) {
	i, ok := r.table.index[col]
	if !ok {
		return "", &MissingColumnError{Dataset: r.table.name, Column: col}
	}
	return r.cells[i], nil
}

// Lookup returns the cell under col and whether the column exists. Absent
// columns read as "".
func (r Row) Lookup(col string) (string, bool) {
	i, ok := r.table.index[col]
	if !ok {
		return "", false
	}
	return r.cells[i], true
}

// Map returns the row keyed by column name.
func (r Row) Map() map[string]string {
	m := make(map[string]string, len(r.table.header))
	for i, col := range r.table.header {
		if _, seen := m[col]; seen {
			continue
		}
		m[col] = r.cells[i]
	}
	return m
}
