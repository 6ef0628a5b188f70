package performance

import (
	"time"

	"appraisal/internal/domain/goals"
)

// Aggregate summarises a set of goals as of the given evaluation instant.
// Completed goals count as on time when their end date is not before the
// evaluation date; goals without a readable end date are left out of the
// on-time tally only.
func Aggregate(list []goals.Goal, asOf time.Time) Metrics {
	if len(list) == 0 {
		return Metrics{}
	}

	today := goals.LocalDate(asOf, goals.IST)
	m := Metrics{TotalGoals: len(list)}
	var totalProgress float64
	for _, goal := range list {
		totalProgress += goal.Progress()
		switch goal.EffectiveStatus() {
		case goals.StatusCompleted:
			m.Completed++
			end, err := goals.ParseDate(goal.EndDate, goals.IST)
			if err != nil {
				continue
			}
			if !end.Before(today) {
				m.OnTime++
			} else {
				m.Overdue++
			}
		case goals.StatusActive:
			m.Active++
		case goals.StatusOnHold:
			m.OnHold++
		case goals.StatusCancelled:
			m.Cancelled++
		}
	}

	m.AvgProgress = totalProgress / float64(m.TotalGoals)
	m.CompletionRate = float64(m.Completed) / float64(m.TotalGoals) * 100
	if m.Completed > 0 {
		m.OnTimeRate = float64(m.OnTime) / float64(m.Completed) * 100
	}
	return m
}
