// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package table

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vehiclesCSV = `Car Make,Car Model,Price (in USD)
Toyota,Corolla,"$20,000"
Honda,Civic,"$18,500"
Ford,Focus,"$17,000"
`

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRead(t *testing.T) {
	tbl, err := Read("vehicles", strings.NewReader(vehiclesCSV))
	require.NoError(t, err)

	assert.Equal(t, "vehicles", tbl.Name())
	assert.Equal(t, []string{"Car Make", "Car Model", "Price (in USD)"}, tbl.Columns())
	assert.Equal(t, 3, tbl.Len())

	rows := tbl.Rows()
	price, err := rows[0].Get("Price (in USD)")
	require.NoError(t, err)
	assert.Equal(t, "$20,000", price)
}

func TestReadEdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantRows int
		check    func(t *testing.T, tbl *Table)
	}{
		{
			name:     "empty input",
			input:    "",
			wantRows: 0,
			check: func(t *testing.T, tbl *Table) {
				assert.Empty(t, tbl.Columns())
			},
		},
		{
			name:     "header only",
			input:    "Problem,Symptom\n",
			wantRows: 0,
		},
		{
			name:     "short rows are padded",
			input:    "Problem,Symptom,Category\nengine noise\n",
			wantRows: 1,
			check: func(t *testing.T, tbl *Table) {
				v, err := tbl.Rows()[0].Get("Category")
				require.NoError(t, err)
				assert.Equal(t, "", v)
			},
		},
		{
			name:     "byte order mark is stripped",
			input:    "\ufeffCar Part,Price\nAlternator,120\n",
			wantRows: 1,
			check: func(t *testing.T, tbl *Table) {
				assert.True(t, tbl.HasColumn("Car Part"))
			},
		},
		{
			name:     "bare quote in unquoted field",
			input:    "Car Part,Price,Supplier\nBrake Pad,45,PartsCo\nWiper Blade 22\",15,PartsCo\nAlternator,120,AutoSupply\n",
			wantRows: 3,
			check: func(t *testing.T, tbl *Table) {
				rows := tbl.Rows()
				part, err := rows[1].Get("Car Part")
				require.NoError(t, err)
				assert.Equal(t, `Wiper Blade 22"`, part)
				price, err := rows[1].Get("Price")
				require.NoError(t, err)
				assert.Equal(t, "15", price)
				last, err := rows[2].Get("Car Part")
				require.NoError(t, err)
				assert.Equal(t, "Alternator", last)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := Read("test", strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.wantRows, tbl.Len())
			if tt.check != nil {
				tt.check(t, tbl)
			}
		})
	}
}

func TestSelectPreservesOrder(t *testing.T) {
	tbl, err := Read("vehicles", strings.NewReader(vehiclesCSV))
	require.NoError(t, err)

	rows, err := tbl.Select(func(r Row) (bool, error) {
		carMake, err := r.Get("Car Make")
		if err != nil {
			return false, err
		}
		return carMake != "Honda", nil
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first, _ := rows[0].Lookup("Car Model")
	second, _ := rows[1].Lookup("Car Model")
	assert.Equal(t, "Corolla", first)
	assert.Equal(t, "Focus", second)
}

func TestSelectPropagatesMissingColumn(t *testing.T) {
	tbl, err := Read("vehicles", strings.NewReader(vehiclesCSV))
	require.NoError(t, err)

	_, err = tbl.Select(func(r Row) (bool, error) {
		_, err := r.Get("Dealer")
		return err == nil, err
	})
	require.Error(t, err)

	var mce *MissingColumnError
	require.True(t, errors.As(err, &mce))
	assert.Equal(t, "Dealer", mce.Column)
	assert.Equal(t, "vehicles", mce.Dataset)
}

func TestLookupAbsentColumn(t *testing.T) {
	tbl, err := Read("vehicles", strings.NewReader(vehiclesCSV))
	require.NoError(t, err)

	v, ok := tbl.Rows()[0].Lookup("Dealer")
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestRequire(t *testing.T) {
	tbl, err := Read("vehicles", strings.NewReader(vehiclesCSV))
	require.NoError(t, err)

	assert.NoError(t, tbl.Require("Car Make", "Car Model"))

	err = tbl.Require("Car Make", "Mileage")
	var mce *MissingColumnError
	require.ErrorAs(t, err, &mce)
	assert.Equal(t, "Mileage", mce.Column)
}

func TestRowMap(t *testing.T) {
	tbl, err := Read("vehicles", strings.NewReader(vehiclesCSV))
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"Car Make":       "Honda",
		"Car Model":      "Civic",
		"Price (in USD)": "$18,500",
	}, tbl.Rows()[1].Map())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
