// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var vehiclesCmd = &cobra.Command{
	Use:   "vehicles [keyword]",
	Short: "Search the vehicle catalog by make or model and price",
	Long: `Vehicles lists catalog entries whose make or model contains the keyword,
ignoring case. With --price, entries priced above the threshold are dropped.
A price that does not parse as a number applies no limit.`,
	RunE: runVehicles,
}

func runVehicles(cmd *cobra.Command, args []string) error {
	price, _ := cmd.Flags().GetString("price")

	eng, err := openEngine()
	if err != nil {
		return err
	}
	recs, err := eng.FilterVehicles(keywordArg(cmd, args), price)
	if err != nil {
		return err
	}

	r, err := renderer()
	if err != nil {
		return err
	}
	return r.Vehicles(recs)
}

// keywordArg returns --keyword, or the positional arguments joined by spaces.
func keywordArg(cmd *cobra.Command, args []string) string {
	kw, _ := cmd.Flags().GetString("keyword")
	if kw == "" && len(args) > 0 {
		kw = strings.Join(args, " ")
	}
	return kw
}

func init() {
	vehiclesCmd.Flags().String("keyword", "", "make or model substring (default: all vehicles)")
	vehiclesCmd.Flags().String("price", "", "maximum price, e.g. 25000 or $25,000")

	rootCmd.AddCommand(vehiclesCmd)
}
