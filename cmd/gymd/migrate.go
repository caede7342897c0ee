package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/gymdesk/internal/gym/app"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := app.LoadConfig()
		cfg.AutoMigrate = true

		db, err := app.OpenDatabase(cfg, app.NewLogger(cfg))
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		version, dirty, err := db.SchemaVersion()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (dirty=%t)\n", version, dirty)
		return nil
	},
}
