// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/autoaid/internal/score"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute the 0-100 car health score",
	Long: `Score compares the average daily usage with the usage expected for the
vehicle's age and fuel type, measured from 2024. Values that do not parse
fall back to 0 usage and build year 2024. Kilometers driven are echoed only.`,
	RunE: runScore,
}

func runScore(cmd *cobra.Command, args []string) error {
	km, _ := cmd.Flags().GetString("km")
	avg, _ := cmd.Flags().GetString("avg")
	year, _ := cmd.Flags().GetString("year")
	fuel, _ := cmd.Flags().GetString("fuel")

	in := score.ParseInput(km, avg, year, fuel)
	logger.Debug().Float64("km", in.KilometersDriven).Float64("avg", in.AverageUsage).
		Int("year", in.BuildYear).Str("fuel", string(in.FuelType)).Msg("score input")

	r, err := renderer()
	if err != nil {
		return err
	}
	return r.Score(score.Compute(in))
}

func init() {
	scoreCmd.Flags().String("km", "0", "kilometers driven")
	scoreCmd.Flags().String("avg", "0", "average daily usage")
	scoreCmd.Flags().String("year", "2024", "build year")
	scoreCmd.Flags().String("fuel", "", "fuel type: diesel, petrol or cng")

	rootCmd.AddCommand(scoreCmd)
}
