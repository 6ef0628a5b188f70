package sqlite

import (
	"context"
	"strconv"
	"time"
)

func (db *DB) StartRun(ctx context.Context, scope, jobType string) (string, error) {
	result, err := db.conn.ExecContext(ctx, `
		INSERT INTO job_runs (scope, job_type, status, started_at)
		VALUES (?, ?, 'running', ?)
	`, scope, jobType, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(id, 10), nil
}

func (db *DB) FinishRun(ctx context.Context, runID, status string, details []byte) error {
	_, err := db.conn.ExecContext(ctx, `
		UPDATE job_runs
		SET status = ?, details_json = ?, completed_at = ?
		WHERE id = ?
	`, status, string(details), time.Now().UTC().Format(time.RFC3339), runID)
	return err
}

type JobRun struct {
	ID      int64
	Scope   string
	JobType string
	Status  string
	Details string
}

// RecentRuns lists the latest job runs, newest first.
func (db *DB) RecentRuns(ctx context.Context, limit int) ([]JobRun, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, scope, job_type, status, COALESCE(details_json, '')
		FROM job_runs
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []JobRun
	for rows.Next() {
		var run JobRun
		if err := rows.Scan(&run.ID, &run.Scope, &run.JobType, &run.Status, &run.Details); err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}
