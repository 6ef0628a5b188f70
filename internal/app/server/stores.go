package server

import (
	"context"
	"fmt"
	"log/slog"

	"appraisal/internal/domain/goals"
	"appraisal/internal/domain/rankings"
	"appraisal/internal/platform/config"
	"appraisal/internal/platform/db"
	"appraisal/internal/platform/jobs"
	"appraisal/internal/platform/sqlite"
)

// Stores bundles the persistence collaborators for the configured driver.
type Stores struct {
	Goals     goals.StoreAPI
	Snapshots rankings.SnapshotStore
	Runs      jobs.RunRecorder
	Ping      func(ctx context.Context) error
	Close     func()
}

// OpenStores connects to the configured backend and, when enabled, brings
// its schema up to date.
func OpenStores(ctx context.Context, cfg config.Config) (*Stores, error) {
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		local, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", cfg.SQLitePath, err)
		}
		return SQLiteStores(local), nil
	case config.DriverPostgres:
		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("db connect: %w", err)
		}
		if cfg.RunMigrations {
			if _, err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
				pool.Close()
				return nil, fmt.Errorf("migrations: %w", err)
			}
		}
		return &Stores{
			Goals:     goals.NewStore(pool),
			Snapshots: rankings.NewStore(pool),
			Runs:      jobs.PostgresRuns{DB: pool},
			Ping:      pool.Ping,
			Close:     pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// SQLiteStores serves every collaborator from one SQLite database.
func SQLiteStores(local *sqlite.DB) *Stores {
	return &Stores{
		Goals:     local,
		Snapshots: local,
		Runs:      local,
		Ping:      local.Conn().PingContext,
		Close: func() {
			if err := local.Close(); err != nil {
				slog.Warn("sqlite close failed", "err", err)
			}
		},
	}
}
