package performance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"appraisal/internal/domain/goals"
)

var evalTime = time.Date(2024, 1, 10, 9, 30, 0, 0, goals.IST)

func TestAggregateEmpty(t *testing.T) {
	m := Aggregate(nil, evalTime)
	assert.True(t, m.IsEmpty())
	assert.Equal(t, Metrics{}, m)
}

func TestAggregateExample(t *testing.T) {
	list := []goals.Goal{
		{MonthlyTarget: 100, MonthlyAchievement: 50, Status: goals.StatusActive},
		{MonthlyTarget: 50, MonthlyAchievement: 50, Status: goals.StatusCompleted, EndDate: "2024-01-09"},
	}
	m := Aggregate(list, evalTime)
	assert.Equal(t, 2, m.TotalGoals)
	assert.Equal(t, 1, m.Completed)
	assert.Equal(t, 1, m.Active)
	assert.InDelta(t, 50.0, m.CompletionRate, 1e-9)
	assert.InDelta(t, 75.0, m.AvgProgress, 1e-9)
	assert.Equal(t, 0, m.OnTime)
	assert.Equal(t, 1, m.Overdue)
	assert.InDelta(t, 0.0, m.OnTimeRate, 1e-9)
	assert.Equal(t, 44.5, Score(m))
}

func TestAggregateStatusCounts(t *testing.T) {
	list := []goals.Goal{
		{Status: goals.StatusActive},
		{Status: ""},
		{Status: goals.StatusOnHold},
		{Status: goals.StatusCancelled},
		{Status: "Archived"},
		{Status: goals.StatusCompleted, EndDate: "2024-01-10"},
	}
	m := Aggregate(list, evalTime)
	assert.Equal(t, 6, m.TotalGoals)
	assert.Equal(t, 2, m.Active)
	assert.Equal(t, 1, m.OnHold)
	assert.Equal(t, 1, m.Cancelled)
	assert.Equal(t, 1, m.Completed)
	assert.Equal(t, 1, m.OnTime, "end date equal to the evaluation date is on time")
	assert.InDelta(t, 100.0/6, m.CompletionRate, 1e-9)
}

func TestAggregateSkipsUnreadableEndDates(t *testing.T) {
	list := []goals.Goal{
		{Status: goals.StatusCompleted, EndDate: ""},
		{Status: goals.StatusCompleted, EndDate: "not-a-date"},
		{Status: goals.StatusCompleted, EndDate: "2024-02-01"},
		{Status: goals.StatusCompleted, EndDate: "2023-12-31"},
	}
	m := Aggregate(list, evalTime)
	assert.Equal(t, 4, m.Completed)
	assert.Equal(t, 1, m.OnTime)
	assert.Equal(t, 1, m.Overdue)
	assert.InDelta(t, 25.0, m.OnTimeRate, 1e-9)
	assert.InDelta(t, 100.0, m.CompletionRate, 1e-9)
}

func TestAggregateEvaluatesDatesInIST(t *testing.T) {
	// 20:00 UTC on Jan 9 is already Jan 10 in IST.
	asOf := time.Date(2024, 1, 9, 20, 0, 0, 0, time.UTC)
	list := []goals.Goal{{Status: goals.StatusCompleted, EndDate: "2024-01-09"}}
	m := Aggregate(list, asOf)
	assert.Equal(t, 1, m.Overdue)
}

func TestCompletionRateNeverExceedsHundred(t *testing.T) {
	list := make([]goals.Goal, 0, 10)
	for i := 0; i < 10; i++ {
		list = append(list, goals.Goal{Status: goals.StatusCompleted, MonthlyTarget: 1, MonthlyAchievement: 5})
	}
	m := Aggregate(list, evalTime)
	assert.LessOrEqual(t, m.CompletionRate, 100.0)
	assert.LessOrEqual(t, m.AvgProgress, 100.0)
}
