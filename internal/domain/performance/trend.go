package performance

import (
	"context"
	"log/slog"
	"time"

	"appraisal/internal/domain/goals"
)

// MonthlyTrend walks back months calendar months from the month containing
// asOf and returns one point per month that has goals, oldest first. A month
// whose goals cannot be loaded is skipped.
func (s *Service) MonthlyTrend(ctx context.Context, userID string, months int, asOf time.Time) ([]TrendPoint, error) {
	if months < 1 || months > MaxTrendMonths {
		return nil, ErrInvalidMonths
	}
	local := asOf.In(goals.IST)
	points := make([]TrendPoint, 0, months)
	for i := 0; i < months; i++ {
		year, month := goals.MonthsBefore(local.Year(), int(local.Month()), i)
		list, err := s.goals.ListPeriodGoals(ctx, userID, year, goals.QuarterOf(month), month)
		if err != nil {
			slog.Warn("trend month lookup failed", "userId", userID, "year", year, "month", month, "err", err)
			continue
		}
		if len(list) == 0 {
			continue
		}
		m := Aggregate(list, asOf)
		points = append(points, TrendPoint{
			Month:          goals.MonthLabel(year, month),
			Year:           year,
			MonthNum:       month,
			CompletionRate: m.CompletionRate,
			AvgProgress:    m.AvgProgress,
			TotalGoals:     m.TotalGoals,
			Completed:      m.Completed,
		})
	}
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	return points, nil
}
