// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render writes query results for the terminal as an aligned
// table, JSON, or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/autoaid/pkg/types"
)

// Format selects an output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// maxCell bounds the width of a table column.
const maxCell = 48

// ParseFormat validates a --format value. Empty selects the table format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatTable, nil
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, json or yaml)", s)
	}
}

// Renderer writes results to w in one format.
type Renderer struct {
	w      io.Writer
	format Format
	header *color.Color
}

// New returns a Renderer. Table headers are colored only when colorize is
// set and the color package has not disabled color for the terminal.
func New(w io.Writer, format Format, colorize bool) *Renderer {
	h := color.New(color.Bold, color.FgCyan)
	if !colorize {
		h.DisableColor()
	}
	return &Renderer{w: w, format: format, header: h}
}

// Vehicles writes vehicle search results.
func (r *Renderer) Vehicles(recs []types.VehicleRecord) error {
	rows := make([][]string, len(recs))
	for i, v := range recs {
		rows[i] = []string{v.Make, v.Model, v.PriceText}
	}
	return r.emit(recs, []string{"Make", "Model", "Price"}, rows)
}

// ProblemSolutions writes keyword problem search results.
func (r *Renderer) ProblemSolutions(recs []types.ProblemSolution) error {
	rows := make([][]string, len(recs))
	for i, p := range recs {
		rows[i] = []string{p.Symptom, p.Solution, p.Category}
	}
	return r.emit(recs, []string{"Symptom", "Solution", "Category"}, rows)
}

// Problems writes full problem rows, as returned by the dealer filter.
func (r *Renderer) Problems(recs []types.ProblemRecord) error {
	rows := make([][]string, len(recs))
	for i, p := range recs {
		rows[i] = []string{p.Problem, p.Symptom, p.Solution, p.Category, p.Dealer}
	}
	return r.emit(recs, []string{"Problem", "Symptom", "Solution", "Category", "Dealer"}, rows)
}

// Parts writes part search results with every passed-through column.
func (r *Renderer) Parts(recs []types.PartRecord) error {
	maps := make([]map[string]string, len(recs))
	for i, p := range recs {
		maps[i] = p.Attributes
	}
	cols := columns(maps, types.ColCarPart)
	rows := make([][]string, len(recs))
	for i, p := range recs {
		row := make([]string, len(cols))
		for j, c := range cols {
			row[j] = p.Attributes[c]
		}
		row[0] = p.PartName
		rows[i] = row
	}
	return r.emit(recs, cols, rows)
}

// Rows writes column-to-value maps such as solution suggestions. Problem
// columns lead; any others follow in name order.
func (r *Renderer) Rows(recs []map[string]string) error {
	cols := columns(recs, types.ColProblem, types.ColSymptom, types.ColSolution, types.ColCategory)
	rows := make([][]string, len(recs))
	for i, m := range recs {
		row := make([]string, len(cols))
		for j, c := range cols {
			row[j] = m[c]
		}
		rows[i] = row
	}
	return r.emit(recs, cols, rows)
}

// Score writes one health score.
func (r *Renderer) Score(res types.ScoreResult) error {
	row := []string{
		strconv.FormatFloat(res.Score, 'f', 2, 64),
		strconv.Itoa(res.BuildYear),
		string(res.FuelType),
	}
	return r.emit(res, []string{"Score", "Build Year", "Fuel Type"}, [][]string{row})
}

// Logs writes maintenance logs.
func (r *Renderer) Logs(logs []types.MaintenanceLog) error {
	rows := make([][]string, len(logs))
	for i, l := range logs {
		rows[i] = []string{l.LogID, l.PlateNumber, l.DateOfService, l.TypeOfService, l.ServiceProvider}
	}
	return r.emit(logs, []string{"Log ID", "Plate", "Date", "Service", "Provider"}, rows)
}

func (r *Renderer) emit(v any, header []string, rows [][]string) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	default:
		r.table(header, rows)
		return nil
	}
}

func (r *Renderer) table(header []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(r.w, "No results found.")
		return
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := min(len(cell), maxCell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	r.header.Fprintln(r.w, line(header, widths))
	total := 0
	for _, w := range widths {
		total += w + 2
	}
	fmt.Fprintln(r.w, strings.Repeat("-", total-2))
	for _, row := range rows {
		fmt.Fprintln(r.w, line(row, widths))
	}
	fmt.Fprintf(r.w, "\n%d results\n", len(rows))
}

func line(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fmt.Sprintf("%-*s", widths[i], truncate(c, maxCell))
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

// columns returns lead followed by every other key of rows in name order.
func columns(rows []map[string]string, lead ...string) []string {
	seen := make(map[string]bool, len(lead))
	cols := append([]string(nil), lead...)
	for _, c := range lead {
		seen[c] = true
	}
	var rest []string
	for _, m := range rows {
		for k := range m {
			if !seen[k] {
				seen[k] = true
				rest = append(rest, k)
			}
		}
	}
	sort.Strings(rest)
	return append(cols, rest...)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
