// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/autoaid/pkg/types"
)

func TestMultiplier(t *testing.T) {
	tests := []struct {
		fuel types.FuelType
		want float64
	}{
		{"diesel", 1.2},
		{"Diesel", 1.2},
		{"PETROL", 1.1},
		{"cng", 1.3},
		{"electric", 1.0},
		{"", 1.0},
	}

	for _, tt := range tests {
		t.Run(string(tt.fuel), func(t *testing.T) {
			assert.Equal(t, tt.want, Multiplier(tt.fuel))
		})
	}
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name string
		in   types.ScoreInput
		want float64
	}{
		{
			name: "new vehicle has no baseline",
			in:   types.ScoreInput{AverageUsage: 0, BuildYear: 2024, FuelType: "petrol"},
			want: 0,
		},
		{
			name: "new vehicle with usage still scores zero",
			in:   types.ScoreInput{AverageUsage: 50, BuildYear: 2024, FuelType: "diesel"},
			want: 0,
		},
		{
			name: "heavy usage is capped",
			in:   types.ScoreInput{AverageUsage: 1000, BuildYear: 2000, FuelType: "cng"},
			want: 100,
		},
		{
			name: "usage at baseline for unknown fuel",
			in:   types.ScoreInput{AverageUsage: 10, BuildYear: 2014, FuelType: "electric"},
			want: 100,
		},
		{
			name: "half the baseline",
			in:   types.ScoreInput{AverageUsage: 5, BuildYear: 2020, FuelType: "other"},
			want: 50,
		},
		{
			name: "diesel baseline is 12 per day",
			in:   types.ScoreInput{AverageUsage: 6, BuildYear: 2010, FuelType: "DIESEL"},
			want: 50,
		},
		{
			name: "no usage on an old car",
			in:   types.ScoreInput{AverageUsage: 0, BuildYear: 2000, FuelType: "petrol"},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.in)
			assert.InDelta(t, tt.want, got.Score, 1e-9)
			assert.LessOrEqual(t, got.Score, MaxScore)
			assert.Equal(t, tt.in.BuildYear, got.BuildYear)
			assert.Equal(t, tt.in.FuelType, got.FuelType)
		})
	}
}

func TestParseInputDefaults(t *testing.T) {
	in := ParseInput("12000", "not-a-number", "soon", "Petrol")

	assert.Equal(t, 12000.0, in.KilometersDriven)
	assert.Equal(t, 0.0, in.AverageUsage)
	assert.Equal(t, ReferenceYear, in.BuildYear)
	assert.Equal(t, types.FuelType("Petrol"), in.FuelType)

	assert.Equal(t, 0.0, Compute(in).Score)
}

func TestParseInputThenCompute(t *testing.T) {
	got := Compute(ParseInput("", "11", "2019", "petrol"))
	assert.InDelta(t, 100.0, got.Score, 1e-9)
	assert.Equal(t, 2019, got.BuildYear)
}
