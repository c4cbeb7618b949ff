// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
)

var problemsCmd = &cobra.Command{
	Use:   "problems",
	Short: "Search the problem/solution catalog",
	Long: `Problems queries the catalog of known vehicle problems. Use search to
match problem descriptions, dealer to list one dealer's problems, or suggest
for word-level solution suggestions.`,
}

// --- search subcommand ---

var problemsSearchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "List symptom, solution and category of matching problems",
	Long: `Search lists the symptom, possible solution and category of every problem
whose description contains the keyword, ignoring case.`,
	RunE: runProblemsSearch,
}

func runProblemsSearch(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	recs, err := eng.FilterProblemsByKeyword(keywordArg(cmd, args))
	if err != nil {
		return err
	}

	r, err := renderer()
	if err != nil {
		return err
	}
	return r.ProblemSolutions(recs)
}

// --- dealer subcommand ---

var problemsDealerCmd = &cobra.Command{
	Use:   "dealer [name]",
	Short: "List the problems recorded for one dealer",
	Long: `Dealer lists every problem whose Dealer column equals the name exactly.
The comparison is case-sensitive and does not trim whitespace.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProblemsDealer,
}

func runProblemsDealer(cmd *cobra.Command, args []string) error {
	dealer, _ := cmd.Flags().GetString("dealer")
	if !cmd.Flags().Changed("dealer") && len(args) > 0 {
		dealer = args[0]
	}

	eng, err := openEngine()
	if err != nil {
		return err
	}
	recs, err := eng.FilterProblemsByDealer(dealer)
	if err != nil {
		return err
	}

	r, err := renderer()
	if err != nil {
		return err
	}
	return r.Problems(recs)
}

// --- suggest subcommand ---

var problemsSuggestCmd = &cobra.Command{
	Use:   "suggest [keyword]",
	Short: "Suggest solutions for problems sharing a word with the keyword",
	Long: `Suggest splits the keyword into words and lists every problem row whose
description contains at least one of them. All columns of the row are shown.`,
	RunE: runProblemsSuggest,
}

func runProblemsSuggest(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	rows, err := eng.SuggestSolutions(keywordArg(cmd, args))
	if err != nil {
		return err
	}

	r, err := renderer()
	if err != nil {
		return err
	}
	return r.Rows(rows)
}

func init() {
	problemsSearchCmd.Flags().String("keyword", "", "problem description substring")
	problemsDealerCmd.Flags().String("dealer", "", "exact dealer name")
	problemsSuggestCmd.Flags().String("keyword", "", "words to look for in problem descriptions")

	problemsCmd.AddCommand(problemsSearchCmd)
	problemsCmd.AddCommand(problemsDealerCmd)
	problemsCmd.AddCommand(problemsSuggestCmd)

	rootCmd.AddCommand(problemsCmd)
}
