// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskVault Contributors

package main

import (
	"log/slog"
	"os"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/taskvault/taskvault/internal/store"
)

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd() *cobra.Command {
	var databaseURL string
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long:  `Run all pending database migrations against the PostgreSQL database.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if databaseURL == "" {
				databaseURL = os.Getenv("DATABASE_URL")
			}
			return runMigrate(cmd, databaseURL, down)
		},
	}

	cmd.Flags().StringVar(&databaseURL, "database_url", "", "PostgreSQL connection string (defaults to DATABASE_URL)")
	cmd.Flags().BoolVar(&down, "down", false, "roll back all migrations instead of applying them")
	return cmd
}

func runMigrate(cmd *cobra.Command, databaseURL string, down bool) error {
	if databaseURL == "" {
		return oops.Code("CONFIG_INVALID").Errorf("database_url flag or DATABASE_URL environment variable is required")
	}

	migrator, err := store.NewMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			slog.Warn("failed to close migrator", "error", err)
		}
	}()

	if down {
		cmd.Println("Rolling back migrations...")
		if err := migrator.Down(); err != nil {
			return err
		}
		cmd.Println("Rollback completed successfully")
		return nil
	}

	cmd.Println("Running migrations...")
	if err := migrator.Up(); err != nil {
		return err
	}

	version, dirty, err := migrator.Version()
	if err != nil {
		return err
	}
	if dirty {
		cmd.Println("WARNING: schema is in a dirty state")
	}
	cmd.Printf("Migrations completed successfully (version %d)\n", version)
	return nil
}
