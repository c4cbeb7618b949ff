// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/autoaid/internal/maintenance"
	"github.com/pdiddy/autoaid/internal/server"
	"github.com/pdiddy/autoaid/internal/table"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the queries over HTTP",
	Long: `Serve starts the HTTP front end. Queries are form-encoded POSTs that
answer JSON. When the maintenance store cannot be reached at startup the
server still runs and /maintenancelog answers 503.

The server stops gracefully on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eng, err := openEngine()
	if err != nil {
		return err
	}

	store, err := maintenance.Open(ctx, cfg.Store, logger)
	if err != nil {
		logger.Warn().Err(err).Str("driver", string(cfg.Store.Driver)).Msg("maintenance store unavailable, lookups disabled")
	} else {
		defer store.Close()
	}

	if cfg.Data.Watch {
		if _, err := table.Watch(ctx, logger, eng.Handles()...); err != nil {
			return err
		}
	}

	return server.New(eng, store, cfg.Server, logger).ListenAndServe(ctx)
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	serveCmd.Flags().Bool("watch", false, "reload load-once datasets when their files change")

	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	viper.BindPFlag("data.watch", serveCmd.Flags().Lookup("watch"))

	rootCmd.AddCommand(serveCmd)
}
