// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the autoaid CLI.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/autoaid/internal/catalog"
	"github.com/pdiddy/autoaid/internal/logging"
	"github.com/pdiddy/autoaid/internal/render"
	"github.com/pdiddy/autoaid/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// cfg is decoded from viper before every subcommand runs.
	cfg types.Config

	logger = zerolog.Nop()

	// configErr is a config file or .env failure seen by initConfig.
	configErr error
)

// rootCmd is the base command for the autoaid CLI.
var rootCmd = &cobra.Command{
	Use:   "autoaid",
	Short: "Vehicle catalog search, troubleshooting and maintenance lookups",
	Long: `autoaid answers questions over local CSV datasets: vehicles by keyword and
price, known problems by keyword or dealer, solution suggestions, and parts.
It also computes a heuristic car health score and looks up service history
by licence plate in a SQL or Redis maintenance store.

Every query is available as a subcommand and, through serve, as an HTTP
endpoint.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configErr != nil {
			return configErr
		}
		c, err := decodeConfig(viper.GetViper())
		if err != nil {
			return err
		}
		cfg = c
		logger = logging.New(cfg.Log, os.Stderr)
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Debug().Str("file", f).Msg("using config file")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./autoaid.yaml or ~/.config/autoaid/autoaid.yaml)")
	pf.String("data-dir", "", "directory holding the CSV datasets")
	pf.String("format", "", "output format: table, json or yaml")
	pf.String("log-level", "", "log level: trace, debug, info, warn, error or off")

	viper.BindPFlag("data.dir", pf.Lookup("data-dir"))
	viper.BindPFlag("format", pf.Lookup("format"))
	viper.BindPFlag("log.level", pf.Lookup("log-level"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	configErr = configure(viper.GetViper(), cfgFile)
}

// openEngine builds the query engine over the configured datasets.
func openEngine() (*catalog.Engine, error) {
	return catalog.Open(cfg.Data, logger)
}

// renderer returns a stdout renderer in the configured format.
func renderer() (*render.Renderer, error) {
	f, err := render.ParseFormat(viper.GetString("format"))
	if err != nil {
		return nil, err
	}
	return render.New(os.Stdout, f, true), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
