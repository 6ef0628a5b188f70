package goals

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var ErrUserNotFound = errors.New("user not found")

const goalColumns = `
    goal_id, user_id, COALESCE(created_by::text, ''), goal_title, year, quarter, month,
    monthly_target, monthly_achievement,
    week1_target, week2_target, week3_target, week4_target,
    week1_achievement, week2_achievement, week3_achievement, week4_achievement,
    COALESCE(status, ''), start_date, end_date, created_at, completed_at
`

func (s *Store) ListUserGoals(ctx context.Context, userID string) ([]Goal, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT`+goalColumns+`
    FROM goals
    WHERE user_id = $1
    ORDER BY created_at DESC
  `, userID)
	if err != nil {
		return nil, err
	}
	return scanGoals(rows)
}

func (s *Store) ListPeriodGoals(ctx context.Context, userID string, year, quarter, month int) ([]Goal, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT`+goalColumns+`
    FROM goals
    WHERE user_id = $1 AND year = $2 AND quarter = $3 AND month = $4
    ORDER BY created_at DESC
  `, userID, year, quarter, month)
	if err != nil {
		return nil, err
	}
	return scanGoals(rows)
}

func scanGoals(rows pgx.Rows) ([]Goal, error) {
	defer rows.Close()

	var out []Goal
	for rows.Next() {
		var goal Goal
		var start, end pgtype.Date
		var created, completed pgtype.Timestamptz
		if err := rows.Scan(
			&goal.ID, &goal.UserID, &goal.CreatedBy, &goal.Title, &goal.Year, &goal.Quarter, &goal.Month,
			&goal.MonthlyTarget, &goal.MonthlyAchievement,
			&goal.WeeklyTargets[0], &goal.WeeklyTargets[1], &goal.WeeklyTargets[2], &goal.WeeklyTargets[3],
			&goal.WeeklyAchievements[0], &goal.WeeklyAchievements[1], &goal.WeeklyAchievements[2], &goal.WeeklyAchievements[3],
			&goal.Status, &start, &end, &created, &completed,
		); err != nil {
			return nil, err
		}
		goal.StartDate = formatDate(start)
		goal.EndDate = formatDate(end)
		goal.CreatedAt = formatTimestamp(created)
		goal.CompletedAt = formatTimestamp(completed)
		out = append(out, goal)
	}
	return out, rows.Err()
}

func (s *Store) TeamMembers(ctx context.Context, managerID string) ([]Member, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, email, COALESCE(designation, ''), COALESCE(department, ''), role
    FROM users
    WHERE manager_id = $1
    ORDER BY name
  `, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []Member
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Designation, &m.Department, &m.Role); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (s *Store) UserByID(ctx context.Context, userID string) (Member, error) {
	var m Member
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, email, COALESCE(designation, ''), COALESCE(department, ''), role
    FROM users
    WHERE id = $1
  `, userID).Scan(&m.ID, &m.Name, &m.Email, &m.Designation, &m.Department, &m.Role)
	if errors.Is(err, pgx.ErrNoRows) {
		return Member{}, ErrUserNotFound
	}
	if err != nil {
		return Member{}, err
	}
	return m, nil
}

func (s *Store) GoalFeedback(ctx context.Context, goalID string) ([]Feedback, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT f.goal_id, f.feedback_by, COALESCE(u.name, ''), COALESCE(f.feedback_type, ''),
           COALESCE(f.rating, 0), COALESCE(f.comment, ''), f.created_at
    FROM goal_feedback f
    LEFT JOIN users u ON u.id = f.feedback_by
    WHERE f.goal_id = $1
    ORDER BY f.created_at DESC
  `, goalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Feedback
	for rows.Next() {
		var fb Feedback
		var created pgtype.Timestamptz
		if err := rows.Scan(&fb.GoalID, &fb.FeedbackBy, &fb.FeedbackByName, &fb.FeedbackType, &fb.Rating, &fb.Comment, &created); err != nil {
			return nil, err
		}
		fb.CreatedAt = formatTimestamp(created)
		out = append(out, fb)
	}
	return out, rows.Err()
}

func formatDate(value pgtype.Date) string {
	if !value.Valid {
		return ""
	}
	return value.Time.Format(DateLayout)
}

func formatTimestamp(value pgtype.Timestamptz) string {
	if !value.Valid {
		return ""
	}
	return value.Time.UTC().Format(time.RFC3339)
}
