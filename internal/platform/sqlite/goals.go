package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"appraisal/internal/domain/goals"
)

const goalColumns = `
	goal_id, user_id, COALESCE(created_by, ''), goal_title, year, quarter, month,
	monthly_target, monthly_achievement,
	week1_target, week2_target, week3_target, week4_target,
	week1_achievement, week2_achievement, week3_achievement, week4_achievement,
	COALESCE(status, ''), COALESCE(start_date, ''), COALESCE(end_date, ''),
	COALESCE(created_at, ''), COALESCE(completed_at, '')
`

const memberColumns = `id, name, email, COALESCE(designation, ''), COALESCE(department, ''), role`

func (db *DB) ListUserGoals(ctx context.Context, userID string) ([]goals.Goal, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT`+goalColumns+`
		FROM goals
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	return scanGoals(rows)
}

func (db *DB) ListPeriodGoals(ctx context.Context, userID string, year, quarter, month int) ([]goals.Goal, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT`+goalColumns+`
		FROM goals
		WHERE user_id = ? AND year = ? AND quarter = ? AND month = ?
		ORDER BY created_at DESC
	`, userID, year, quarter, month)
	if err != nil {
		return nil, err
	}
	return scanGoals(rows)
}

func scanGoals(rows *sql.Rows) ([]goals.Goal, error) {
	defer rows.Close()

	var out []goals.Goal
	for rows.Next() {
		var g goals.Goal
		if err := rows.Scan(
			&g.ID, &g.UserID, &g.CreatedBy, &g.Title, &g.Year, &g.Quarter, &g.Month,
			&g.MonthlyTarget, &g.MonthlyAchievement,
			&g.WeeklyTargets[0], &g.WeeklyTargets[1], &g.WeeklyTargets[2], &g.WeeklyTargets[3],
			&g.WeeklyAchievements[0], &g.WeeklyAchievements[1], &g.WeeklyAchievements[2], &g.WeeklyAchievements[3],
			&g.Status, &g.StartDate, &g.EndDate, &g.CreatedAt, &g.CompletedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (db *DB) TeamMembers(ctx context.Context, managerID string) ([]goals.Member, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT `+memberColumns+`
		FROM users
		WHERE manager_id = ?
		ORDER BY name
	`, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []goals.Member
	for rows.Next() {
		var m goals.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Designation, &m.Department, &m.Role); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (db *DB) UserByID(ctx context.Context, userID string) (goals.Member, error) {
	var m goals.Member
	err := db.conn.QueryRowContext(ctx, `
		SELECT `+memberColumns+`
		FROM users
		WHERE id = ?
	`, userID).Scan(&m.ID, &m.Name, &m.Email, &m.Designation, &m.Department, &m.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return goals.Member{}, goals.ErrUserNotFound
	}
	if err != nil {
		return goals.Member{}, err
	}
	return m, nil
}

func (db *DB) GoalFeedback(ctx context.Context, goalID string) ([]goals.Feedback, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT f.goal_id, f.feedback_by, COALESCE(u.name, ''), COALESCE(f.feedback_type, ''),
		       COALESCE(f.rating, 0), COALESCE(f.comment, ''), f.created_at
		FROM goal_feedback f
		LEFT JOIN users u ON u.id = f.feedback_by
		WHERE f.goal_id = ?
		ORDER BY f.created_at DESC
	`, goalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []goals.Feedback
	for rows.Next() {
		var fb goals.Feedback
		if err := rows.Scan(&fb.GoalID, &fb.FeedbackBy, &fb.FeedbackByName, &fb.FeedbackType, &fb.Rating, &fb.Comment, &fb.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, fb)
	}
	return out, rows.Err()
}

// InsertUser adds or replaces a directory entry. An empty managerID leaves
// the user without a manager.
func (db *DB) InsertUser(ctx context.Context, m goals.Member, managerID string) error {
	var manager any
	if managerID != "" {
		manager = managerID
	}
	role := m.Role
	if role == "" {
		role = goals.RoleEmployee
	}
	_, err := db.conn.ExecContext(ctx, `
		INSERT OR REPLACE INTO users (id, name, email, designation, department, role, manager_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, m.ID, m.Name, m.Email, m.Designation, m.Department, role, manager)
	return err
}

func (db *DB) InsertGoal(ctx context.Context, g goals.Goal) error {
	if g.Quarter == 0 && g.Month > 0 {
		g.Quarter = goals.QuarterOf(g.Month)
	}
	_, err := db.conn.ExecContext(ctx, `
		INSERT OR REPLACE INTO goals (`+goalInsertColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		g.ID, g.UserID, nullable(g.CreatedBy), g.Title, g.Year, g.Quarter, g.Month,
		g.MonthlyTarget, g.MonthlyAchievement,
		g.WeeklyTargets[0], g.WeeklyTargets[1], g.WeeklyTargets[2], g.WeeklyTargets[3],
		g.WeeklyAchievements[0], g.WeeklyAchievements[1], g.WeeklyAchievements[2], g.WeeklyAchievements[3],
		nullable(g.Status), nullable(g.StartDate), nullable(g.EndDate), nullable(g.CreatedAt), nullable(g.CompletedAt),
	)
	return err
}

const goalInsertColumns = `
	goal_id, user_id, created_by, goal_title, year, quarter, month,
	monthly_target, monthly_achievement,
	week1_target, week2_target, week3_target, week4_target,
	week1_achievement, week2_achievement, week3_achievement, week4_achievement,
	status, start_date, end_date, created_at, completed_at
`

func (db *DB) InsertFeedback(ctx context.Context, fb goals.Feedback) error {
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO goal_feedback (goal_id, feedback_by, feedback_type, rating, comment, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, fb.GoalID, fb.FeedbackBy, nullable(fb.FeedbackType), fb.Rating, nullable(fb.Comment), fb.CreatedAt)
	return err
}

func nullable(value string) any {
	if value == "" {
		return nil
	}
	return value
}
