package performance

import (
	"context"
	"fmt"
	"time"

	"appraisal/internal/domain/goals"
)

const MaxTrendMonths = 24

type Service struct {
	goals goals.GoalQuery
}

func NewService(store goals.GoalQuery) *Service {
	return &Service{goals: store}
}

func (s *Service) PeriodSummary(ctx context.Context, userID string, year, month int, asOf time.Time) (Summary, error) {
	if !goals.ValidPeriod(year, month) {
		return Summary{}, ErrInvalidPeriod
	}
	list, err := s.goals.ListPeriodGoals(ctx, userID, year, goals.QuarterOf(month), month)
	if err != nil {
		return Summary{}, fmt.Errorf("list period goals: %w", err)
	}
	metrics := Aggregate(list, asOf)
	return Summary{
		Year:    year,
		Month:   month,
		Metrics: metrics,
		Score:   Score(metrics),
		Band:    goals.Band(metrics.AvgProgress),
	}, nil
}

func (s *Service) PeriodGoals(ctx context.Context, userID string, year, month int) ([]GoalProgress, error) {
	if !goals.ValidPeriod(year, month) {
		return nil, ErrInvalidPeriod
	}
	list, err := s.goals.ListPeriodGoals(ctx, userID, year, goals.QuarterOf(month), month)
	if err != nil {
		return nil, fmt.Errorf("list period goals: %w", err)
	}
	out := make([]GoalProgress, 0, len(list))
	for _, goal := range list {
		out = append(out, buildGoalProgress(goal))
	}
	return out, nil
}

func buildGoalProgress(goal goals.Goal) GoalProgress {
	progress := goal.Progress()
	view := GoalProgress{
		GoalID:      goal.ID,
		Title:       goal.Title,
		Status:      goal.EffectiveStatus(),
		Progress:    Round(progress, 2),
		Band:        goals.Band(progress),
		Weeks:       make([]WeekProgress, 0, goals.WeeksPerMonth),
		WeeklyDrift: Round(goal.MonthlyAchievement-goal.WeeklyTotal(), 2),
	}
	for week := 1; week <= goals.WeeksPerMonth; week++ {
		wp := WeekProgress{
			Week:        week,
			Target:      goal.WeeklyTargets[week-1],
			Achievement: goal.WeeklyAchievements[week-1],
		}
		wp.Progress = Round(goals.Progress(wp.Achievement, wp.Target), 2)
		if goals.ValidPeriod(goal.Year, goal.Month) {
			start, end := goals.WeekDates(goal.Year, goal.Month, week)
			wp.StartDate = start.Format(goals.DateLayout)
			wp.EndDate = end.Format(goals.DateLayout)
		}
		view.Weeks = append(view.Weeks, wp)
	}
	return view
}

func (s *Service) Completable(ctx context.Context, userID string) ([]goals.Goal, error) {
	list, err := s.goals.ListUserGoals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user goals: %w", err)
	}
	return goals.CompletableGoals(list), nil
}
