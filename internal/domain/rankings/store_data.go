package rankings

import "context"

func (s *Store) UpsertRanking(ctx context.Context, snap Snapshot) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO team_rankings
      (manager_id, employee_id, year, month, rank, total_goals, completed_goals,
       completion_rate, avg_progress, on_time_rate, score, saved_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,now())
    ON CONFLICT (manager_id, employee_id, year, month) DO UPDATE
      SET rank = EXCLUDED.rank,
          total_goals = EXCLUDED.total_goals,
          completed_goals = EXCLUDED.completed_goals,
          completion_rate = EXCLUDED.completion_rate,
          avg_progress = EXCLUDED.avg_progress,
          on_time_rate = EXCLUDED.on_time_rate,
          score = EXCLUDED.score,
          saved_at = now()
  `, snap.ManagerID, snap.EmployeeID, snap.Year, snap.Month, snap.Rank, snap.TotalGoals, snap.CompletedGoals,
		snap.CompletionRate, snap.AvgProgress, snap.OnTimeRate, snap.Score)
	return err
}

func (s *Store) QueryRankings(ctx context.Context, managerID, employeeID string, limit int) ([]Snapshot, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT manager_id, employee_id, year, month, rank, total_goals, completed_goals,
           completion_rate, avg_progress, on_time_rate, score, saved_at
    FROM team_rankings
    WHERE manager_id = $1 AND employee_id = $2
    ORDER BY year DESC, month DESC
    LIMIT $3
  `, managerID, employeeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var snap Snapshot
		if err := rows.Scan(&snap.ManagerID, &snap.EmployeeID, &snap.Year, &snap.Month, &snap.Rank,
			&snap.TotalGoals, &snap.CompletedGoals, &snap.CompletionRate, &snap.AvgProgress,
			&snap.OnTimeRate, &snap.Score, &snap.SavedAt); err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}
