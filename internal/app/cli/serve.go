package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"appraisal/internal/app/server"
	"appraisal/internal/platform/config"
	"appraisal/internal/platform/db"
	"appraisal/internal/platform/sqlite"
)

func (c *cli) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.Run(ctx, cfg)
		},
	}
}

func (c *cli) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Bring the database schema up to date",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			return c.migrate(cmd.Context(), cfg)
		},
	}
}

func (c *cli) migrate(ctx context.Context, cfg config.Config) error {
	if cfg.StoreDriver == config.DriverSQLite {
		local, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "sqlite schema ready at %s\n", cfg.SQLitePath)
		return local.Close()
	}

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	defer pool.Close()
	applied, err := db.Migrate(ctx, pool, cfg.MigrationsDir)
	if err != nil {
		return err
	}
	if len(applied) == 0 {
		fmt.Fprintln(c.out, "schema already up to date")
		return nil
	}
	for _, version := range applied {
		fmt.Fprintf(c.out, "applied %s\n", version)
	}
	return nil
}
