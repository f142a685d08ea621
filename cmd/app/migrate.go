package main

import (
	"context"

	"github.com/Vlex127/ukoni/internal/repository/postgres"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context())
		},
	}
}

func runMigrate(ctx context.Context) error {
	logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	db, err := connectPostgres(ctx, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	applied, err := postgres.ApplyMigrations(ctx, db)
	if err != nil {
		return err
	}

	if len(applied) == 0 {
		logger.Info("Database is up to date")
		return nil
	}
	for _, version := range applied {
		logger.Sugar().Infof("Applied migration %s", version)
	}

	return nil
}
