package jobs

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRuns records job runs in the job_runs table.
type PostgresRuns struct {
	DB *pgxpool.Pool
}

func (p PostgresRuns) StartRun(ctx context.Context, scope, jobType string) (string, error) {
	runID := ""
	err := p.DB.QueryRow(ctx, `
    INSERT INTO job_runs (scope, job_type, status)
    VALUES ($1,$2,$3)
    RETURNING id
  `, scope, jobType, "running").Scan(&runID)
	return runID, err
}

func (p PostgresRuns) FinishRun(ctx context.Context, runID, status string, details []byte) error {
	_, err := p.DB.Exec(ctx, `
    UPDATE job_runs
    SET status = $1, details_json = $2, completed_at = now()
    WHERE id = $3
  `, status, details, runID)
	return err
}
