// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/autoaid/internal/maintenance"
	"github.com/pdiddy/autoaid/pkg/types"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Look up and record vehicle maintenance logs",
	Long: `Logs works with the maintenance store configured under store: a SQL
database (sqlite3, postgres, mysql) or Redis. Use lookup to list a plate's
service history, add to record a service, or migrate to create the schema.`,
}

// --- lookup subcommand ---

var logsLookupCmd = &cobra.Command{
	Use:   "lookup [plate]",
	Short: "List the maintenance logs recorded for a licence plate",
	Long: `Lookup lists every log whose plate number equals the plate exactly.
With --image, the plate is taken from the image file name without its
extension and with whitespace removed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogsLookup,
}

func runLogsLookup(cmd *cobra.Command, args []string) error {
	image, _ := cmd.Flags().GetString("image")

	var plate string
	switch {
	case len(args) > 0:
		plate = args[0]
	case image != "":
		plate = maintenance.PlateFromFilename(image)
	default:
		return fmt.Errorf("plate required: provide a plate argument or --image")
	}

	ctx := context.Background()
	store, err := maintenance.Open(ctx, cfg.Store, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	logs, err := maintenance.Lookup(ctx, store, plate)
	if err != nil {
		return err
	}

	r, err := renderer()
	if err != nil {
		return err
	}
	return r.Logs(logs)
}

// --- add subcommand ---

var logsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a maintenance log",
	Long: `Add stores one service record. A log ID is generated when --id is not
given, and the service date defaults to today.`,
	RunE: runLogsAdd,
}

func runLogsAdd(cmd *cobra.Command, args []string) error {
	rec := types.MaintenanceLog{}
	rec.LogID, _ = cmd.Flags().GetString("id")
	rec.PlateNumber, _ = cmd.Flags().GetString("plate")
	rec.DateOfService, _ = cmd.Flags().GetString("date")
	rec.TypeOfService, _ = cmd.Flags().GetString("service")
	rec.ServiceProvider, _ = cmd.Flags().GetString("provider")

	if rec.PlateNumber == "" {
		return fmt.Errorf("--plate is required")
	}
	if rec.DateOfService == "" {
		rec.DateOfService = time.Now().Format("2006-01-02")
	}

	ctx := context.Background()
	store, err := maintenance.Open(ctx, cfg.Store, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err = store.Add(ctx, rec)
	if err != nil {
		return err
	}
	logger.Info().Str("log_id", rec.LogID).Str("plate", rec.PlateNumber).Msg("maintenance log added")

	r, err := renderer()
	if err != nil {
		return err
	}
	return r.Logs([]types.MaintenanceLog{rec})
}

// --- migrate subcommand ---

var logsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the maintenance log schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		store, err := maintenance.Open(ctx, cfg.Store, logger)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Migrate(ctx); err != nil {
			return err
		}
		fmt.Printf("Maintenance store (%s) is ready\n", cfg.Store.Driver)
		return nil
	},
}

func init() {
	logsLookupCmd.Flags().String("image", "", "plate image whose file name is the plate text")

	logsAddCmd.Flags().String("id", "", "log ID (default: generated UUID)")
	logsAddCmd.Flags().String("plate", "", "licence plate number")
	logsAddCmd.Flags().String("date", "", "date of service, YYYY-MM-DD (default: today)")
	logsAddCmd.Flags().String("service", "", "type of service")
	logsAddCmd.Flags().String("provider", "", "service provider")

	logsCmd.AddCommand(logsLookupCmd)
	logsCmd.AddCommand(logsAddCmd)
	logsCmd.AddCommand(logsMigrateCmd)

	rootCmd.AddCommand(logsCmd)
}
