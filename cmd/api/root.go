package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/pkordes/trip-planner/internal/config"
)

// newRootCmd builds the command tree. With no subcommand the server starts.
func newRootCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:          "api",
		Short:        "Trip planner HTTP API",
		SilenceUsage: true,
		Long:         "Trip planner HTTP API.\n\n" + config.Usage(),
		Example: strings.TrimSpace(`
  # Start the server (same as "api serve")
  api

  # Apply pending migrations first, then serve
  api serve --migrate

  # Inspect the schema version
  api migrate status
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "Apply pending migrations before serving")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())
	return cmd
}

// setup loads configuration, installs the JSON logger as the default and
// opens the database pool. The caller closes the pool.
func setup(ctx context.Context) (config.Config, *slog.Logger, *pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("configuration error: %w", err)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	// pgxpool manages a pool of Postgres connections.
	// New() does not open connections immediately: the first query does.
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	// Verify the DB is reachable before doing any work.
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return config.Config{}, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.Info("database connection established")
	return cfg, logger, pool, nil
}

// newLogger builds the JSON slog logger. Unknown levels fall back to info.
func newLogger(level string) *slog.Logger {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		logLevel = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}
