// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the records exchanged between the autoaid engine,
// its stores and its front ends (CLI and HTTP).
package types

// Dataset column names as they appear in the CSV headers.
const (
	ColCarMake  = "Car Make"
	ColCarModel = "Car Model"
	ColPrice    = "Price (in USD)"

	ColProblem  = "Problem"
	ColSymptom  = "Symptom"
	ColSolution = "Possible Solution"
	ColCategory = "Category"
	ColDealer   = "Dealer"

	ColCarPart = "Car Part"
)

// VehicleRecord is one row of the vehicle catalog.
type VehicleRecord struct {
	Make  string `json:"make" yaml:"make"`
	Model string `json:"model" yaml:"model"`

	// PriceText is the price as written in the catalog, e.g. "$20,000".
	PriceText string `json:"price_text" yaml:"price_text"`

	// Price is PriceText normalized to a number.
	Price float64 `json:"price" yaml:"price"`

	// Attributes holds every column of the source row, including the ones above.
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// ProblemRecord is one row of the problem/solution catalog.
type ProblemRecord struct {
	Problem  string `json:"problem" yaml:"problem"`
	Symptom  string `json:"symptom" yaml:"symptom"`
	Solution string `json:"solution" yaml:"solution"`
	Category string `json:"category" yaml:"category"`

	// Dealer is empty when the catalog has no Dealer column.
	Dealer string `json:"dealer,omitempty" yaml:"dealer,omitempty"`
}

// ProblemSolution is the projection returned by keyword problem searches.
type ProblemSolution struct {
	Symptom  string `json:"symptom" yaml:"symptom"`
	Solution string `json:"solution" yaml:"solution"`
	Category string `json:"category" yaml:"category"`
}

// PartRecord is one row of the parts catalog. Columns other than the part
// name are passed through untouched.
type PartRecord struct {
	PartName   string            `json:"part_name" yaml:"part_name"`
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// MaintenanceLog is a service record held by the maintenance store.
type MaintenanceLog struct {
	LogID           string `json:"log_id" yaml:"log_id"`
	PlateNumber     string `json:"plate_number" yaml:"plate_number"`
	DateOfService   string `json:"date_of_service" yaml:"date_of_service"`
	TypeOfService   string `json:"type_of_service" yaml:"type_of_service"`
	ServiceProvider string `json:"service_provider" yaml:"service_provider"`
}

// FuelType is the declared fuel of a vehicle. Comparisons are case-insensitive.
type FuelType string

const (
	FuelDiesel FuelType = "diesel"
	FuelPetrol FuelType = "petrol"
	FuelCNG    FuelType = "cng"
)

// ScoreInput carries the usage data for one health score computation.
type ScoreInput struct {
	// KilometersDriven is accepted and echoed but does not enter the formula.
	KilometersDriven float64 `json:"kilometers_driven" yaml:"kilometers_driven"`

	// AverageUsage is the reported daily usage compared against the baseline.
	AverageUsage float64 `json:"average_usage" yaml:"average_usage"`

	BuildYear int      `json:"build_year" yaml:"build_year"`
	FuelType  FuelType `json:"fuel_type" yaml:"fuel_type"`
}

// ScoreResult is a health score with the inputs echoed for display.
type ScoreResult struct {
	Score     float64  `json:"score" yaml:"score"`
	BuildYear int      `json:"build_year" yaml:"build_year"`
	FuelType  FuelType `json:"fuel_type" yaml:"fuel_type"`
}
