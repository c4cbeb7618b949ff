// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package score computes the heuristic 0-100 car health score, comparing a
// vehicle's reported average usage with an expected baseline derived from
// its age and fuel type.
package score

import (
	"math"
	"strings"

	"github.com/pdiddy/autoaid/internal/numeric"
	"github.com/pdiddy/autoaid/pkg/types"
)

const (
	// ReferenceYear is the fixed year ages are measured from. It is not the
	// current date.
	ReferenceYear = 2024

	// BaseRate is the expected daily usage before the fuel multiplier.
	BaseRate = 10.0

	// MaxScore caps the result.
	MaxScore = 100.0

	daysPerYear = 365
)

// Multiplier returns the fuel-type scaling of BaseRate. Unknown fuels get 1.
func Multiplier(fuel types.FuelType) float64 {
	switch types.FuelType(strings.ToLower(string(fuel))) {
	case types.FuelDiesel:
		return 1.2
	case types.FuelPetrol:
		return 1.1
	case types.FuelCNG:
		return 1.3
	default:
		return 1.0
	}
}

// ParseInput builds a ScoreInput from raw form values. Unparsable usage
// values become 0 and an unparsable build year becomes ReferenceYear.
// The fuel type is kept as written.
func ParseInput(kmDriven, avgUsage, buildYear, fuelType string) types.ScoreInput {
	return types.ScoreInput{
		KilometersDriven: numeric.FloatOr(kmDriven, 0),
		AverageUsage:     numeric.FloatOr(avgUsage, 0),
		BuildYear:        numeric.IntOr(buildYear, ReferenceYear),
		FuelType:         types.FuelType(fuelType),
	}
}

// Compute returns the health score for in. A vehicle built in
// ReferenceYear has no expected usage and scores 0.
func Compute(in types.ScoreInput) types.ScoreResult {
	daysOld := float64((ReferenceYear - in.BuildYear) * daysPerYear)

	expected := BaseRate * Multiplier(in.FuelType) * daysOld
	actual := in.AverageUsage * daysOld

	s := 0.0
	if expected != 0 {
		s = math.Min(MaxScore, actual/expected*100)
	}

	return types.ScoreResult{
		Score:     s,
		BuildYear: in.BuildYear,
		FuelType:  in.FuelType,
	}
}
