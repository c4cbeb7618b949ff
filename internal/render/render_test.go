// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/autoaid/pkg/types"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

var vehicles = []types.VehicleRecord{
	{Make: "Toyota", Model: "Corolla", PriceText: "$20,000", Price: 20000},
	{Make: "Honda", Model: "Civic", PriceText: "$22,500", Price: 22500},
}

func TestVehiclesTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatTable, false).Vehicles(vehicles))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Make    Model    Price", lines[0])
	assert.Equal(t, "Toyota  Corolla  $20,000", lines[2])
	assert.Equal(t, "Honda   Civic    $22,500", lines[3])
	assert.Equal(t, "2 results", lines[5])
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatTable, false).Logs(nil))
	assert.Equal(t, "No results found.\n", buf.String())
}

func TestVehiclesJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatJSON, false).Vehicles(vehicles))

	var got []types.VehicleRecord
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, vehicles, got)
}

func TestEmptyJSONIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatJSON, false).ProblemSolutions([]types.ProblemSolution{}))
	assert.Equal(t, "[]\n", buf.String())
}

func TestLogsYAML(t *testing.T) {
	logs := []types.MaintenanceLog{{LogID: "1", PlateNumber: "ABC123", TypeOfService: "Oil change"}}

	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatYAML, false).Logs(logs))
	assert.Contains(t, buf.String(), "plate_number: ABC123")

	var got []types.MaintenanceLog
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, logs, got)
}

func TestPartsTableColumns(t *testing.T) {
	parts := []types.PartRecord{
		{PartName: "Brake Pad", Attributes: map[string]string{"Car Part": "Brake Pad", "Price": "$40", "Brand": "Bosch"}},
	}

	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatTable, false).Parts(parts))

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "Car Part   Brand  Price", lines[0])
	assert.Equal(t, "Brake Pad  Bosch  $40", lines[2])
}

func TestRowsLeadColumns(t *testing.T) {
	rows := []map[string]string{
		{"Problem": "Engine won't start", "Symptom": "No crank", "Possible Solution": "Charge battery", "Category": "Electrical", "Dealer": "Acme"},
	}
	cols := columns(rows, types.ColProblem, types.ColSymptom, types.ColSolution, types.ColCategory)
	assert.Equal(t, []string{"Problem", "Symptom", "Possible Solution", "Category", "Dealer"}, cols)

	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatTable, false).Rows(rows))
	assert.Contains(t, buf.String(), "Engine won't start")
}

func TestScoreTable(t *testing.T) {
	var buf bytes.Buffer
	res := types.ScoreResult{Score: 83.333333, BuildYear: 2020, FuelType: types.FuelDiesel}
	require.NoError(t, New(&buf, FormatTable, false).Score(res))
	assert.Contains(t, buf.String(), "83.33  2020        diesel")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))

	long := strings.Repeat("x", 100)
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatTable, false).Logs([]types.MaintenanceLog{{LogID: long}}))
	assert.Contains(t, buf.String(), strings.Repeat("x", maxCell-3)+"...")
	assert.NotContains(t, buf.String(), strings.Repeat("x", maxCell))
}
