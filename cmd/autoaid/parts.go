// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
)

var partsCmd = &cobra.Command{
	Use:   "parts [keyword]",
	Short: "Search the parts catalog by part name",
	Long: `Parts lists every catalog part whose name contains the keyword, ignoring
case, with all other columns of the parts dataset.`,
	RunE: runParts,
}

func runParts(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	recs, err := eng.FilterParts(keywordArg(cmd, args))
	if err != nil {
		return err
	}

	r, err := renderer()
	if err != nil {
		return err
	}
	return r.Parts(recs)
}

func init() {
	partsCmd.Flags().String("keyword", "", "part name substring")

	rootCmd.AddCommand(partsCmd)
}
