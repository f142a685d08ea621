package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Vlex127/ukoni/internal/config"
	"github.com/Vlex127/ukoni/internal/repository/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ukoni",
		Short: "ukoni - comment service for the ukoni blog",
	}
	cmd.SilenceUsage = true
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())
	return cmd
}

// bootstrap loads .env and app.yaml and builds the logger.
func bootstrap() (*zap.Logger, error) {
	if err := loadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := initConfig(); err != nil {
		return nil, fmt.Errorf("failed to initialize yaml config: %w", err)
	}

	if viper.GetBool("app.debug") {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func connectPostgres(ctx context.Context, logger *zap.Logger) (*pgxpool.Pool, error) {
	db, err := postgres.DB(ctx, config.NewDBConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	logger.Info("Successfully connected to PostgreSQL")

	return db, nil
}

// loadEnv tolerates a missing .env so the process can run on a plain environment.
func loadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func initConfig() error {
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")
	viper.SetConfigName("app")
	return viper.ReadInConfig()
}
