package sqlite

import (
	"context"
	"time"

	"appraisal/internal/domain/rankings"
)

func (db *DB) UpsertRanking(ctx context.Context, snap rankings.Snapshot) error {
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO team_rankings
			(manager_id, employee_id, year, month, rank, total_goals, completed_goals,
			 completion_rate, avg_progress, on_time_rate, score, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (manager_id, employee_id, year, month) DO UPDATE
			SET rank = excluded.rank,
			    total_goals = excluded.total_goals,
			    completed_goals = excluded.completed_goals,
			    completion_rate = excluded.completion_rate,
			    avg_progress = excluded.avg_progress,
			    on_time_rate = excluded.on_time_rate,
			    score = excluded.score,
			    saved_at = excluded.saved_at
	`, snap.ManagerID, snap.EmployeeID, snap.Year, snap.Month, snap.Rank, snap.TotalGoals, snap.CompletedGoals,
		snap.CompletionRate, snap.AvgProgress, snap.OnTimeRate, snap.Score, time.Now().UTC().Format(time.RFC3339))
	return err
}

func (db *DB) QueryRankings(ctx context.Context, managerID, employeeID string, limit int) ([]rankings.Snapshot, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT manager_id, employee_id, year, month, rank, total_goals, completed_goals,
		       completion_rate, avg_progress, on_time_rate, score, saved_at
		FROM team_rankings
		WHERE manager_id = ? AND employee_id = ?
		ORDER BY year DESC, month DESC
		LIMIT ?
	`, managerID, employeeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []rankings.Snapshot
	for rows.Next() {
		var snap rankings.Snapshot
		var savedAt string
		if err := rows.Scan(&snap.ManagerID, &snap.EmployeeID, &snap.Year, &snap.Month, &snap.Rank,
			&snap.TotalGoals, &snap.CompletedGoals, &snap.CompletionRate, &snap.AvgProgress,
			&snap.OnTimeRate, &snap.Score, &savedAt); err != nil {
			return nil, err
		}
		snap.SavedAt, _ = time.Parse(time.RFC3339, savedAt)
		out = append(out, snap)
	}
	return out, rows.Err()
}

func (db *DB) CountRankings(ctx context.Context, managerID string, year, month int) (int, error) {
	var count int
	err := db.conn.QueryRowContext(ctx, `
		SELECT COUNT(1) FROM team_rankings
		WHERE manager_id = ? AND year = ? AND month = ?
	`, managerID, year, month).Scan(&count)
	return count, err
}
