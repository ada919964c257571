package main

import (
	"fmt"
	"strconv"

	"github.com/SscSPs/cashflow_app/internal/platform/config"
	"github.com/SscSPs/cashflow_app/internal/repositories/database/pgsql"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			changed, err := pgsql.RunMigrations(cfg.DatabaseURL)
			if err != nil {
				return err
			}
			if changed {
				cmd.Println("Migrations applied.")
			} else {
				cmd.Println("No new migrations to apply.")
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down [steps]",
		Short: "Revert applied migrations (default 1)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid steps %q: %w", args[0], err)
				}
				steps = n
			}
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if err := pgsql.RollbackMigrations(cfg.DatabaseURL, steps); err != nil {
				return err
			}
			cmd.Printf("Reverted %d migration(s).\n", steps)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show the current schema version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			version, dirty, err := pgsql.MigrationVersion(cfg.DatabaseURL)
			if err != nil {
				return err
			}
			cmd.Printf("version=%d dirty=%t\n", version, dirty)
			return nil
		},
	})

	return cmd
}
