package notifications

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appraisal/internal/domain/goals"
	"appraisal/internal/domain/goals/goalstest"
)

var (
	employee = goals.Member{ID: "emp-1", Name: "Asha", Role: goals.RoleEmployee}
	manager  = goals.Member{ID: "mgr-1", Name: "Ravi", Role: goals.RoleManager}
)

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, goals.IST)
}

func kinds(feed []Notification) []Kind {
	out := make([]Kind, 0, len(feed))
	for _, n := range feed {
		out = append(out, n.Kind)
	}
	return out
}

func TestFeedOverdueBeforeDeadline(t *testing.T) {
	store := goalstest.New()
	store.AddGoal(goals.Goal{ID: "g1", UserID: employee.ID, Title: "Close tickets", Year: 2024, Month: 3, MonthlyTarget: 10, EndDate: "2024-03-17"})
	store.AddGoal(goals.Goal{ID: "g2", UserID: employee.ID, Title: "Ship release", Year: 2024, Month: 3, MonthlyTarget: 10, EndDate: "2024-03-22"})

	feed, err := New(store).Feed(context.Background(), employee, at(2024, 3, 20, 10, 0))
	require.NoError(t, err)
	require.Len(t, feed, 2)

	assert.Equal(t, KindOverdue, feed[0].Kind)
	assert.Equal(t, "Goal 'Close tickets' is overdue by 3 days", feed[0].Message)
	assert.Equal(t, PriorityUrgent, feed[0].Priority)
	assert.Equal(t, KindDeadline, feed[1].Kind)
	assert.Equal(t, "Goal 'Ship release' - Due in 2 days", feed[1].Message)
	assert.Equal(t, "Mar 22, 2024", feed[1].Time)
	assert.Equal(t, at(2024, 3, 22, 23, 59), feed[1].Timestamp)
}

func TestFeedOverdueMostRecentFirst(t *testing.T) {
	store := goalstest.New()
	store.AddGoal(goals.Goal{ID: "old", UserID: employee.ID, Title: "Old", MonthlyTarget: 5, EndDate: "2024-01-01"})
	store.AddGoal(goals.Goal{ID: "new", UserID: employee.ID, Title: "New", MonthlyTarget: 5, EndDate: "2024-01-05"})

	feed, err := New(store).Feed(context.Background(), employee, at(2024, 1, 10, 9, 0))
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Contains(t, feed[0].Message, "'New'")
	assert.Contains(t, feed[1].Message, "'Old'")
}

func TestFeedDeadlineWording(t *testing.T) {
	store := goalstest.New()
	store.AddGoal(goals.Goal{ID: "d0", UserID: employee.ID, Title: "Today", MonthlyTarget: 5, EndDate: "2024-03-20"})
	store.AddGoal(goals.Goal{ID: "d1", UserID: employee.ID, Title: "Tomorrow", MonthlyTarget: 5, EndDate: "2024-03-21"})
	store.AddGoal(goals.Goal{ID: "d4", UserID: employee.ID, Title: "Later", MonthlyTarget: 5, EndDate: "2024-03-24"})

	feed, err := New(store).Feed(context.Background(), employee, at(2024, 3, 20, 9, 0))
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "Goal 'Tomorrow' - Due tomorrow", feed[0].Message)
	assert.Equal(t, "Goal 'Today' - Due today", feed[1].Message)
}

func TestFeedSkipsInactiveGoals(t *testing.T) {
	store := goalstest.New()
	store.AddGoal(goals.Goal{ID: "g1", UserID: employee.ID, Title: "Done", Status: goals.StatusCompleted, MonthlyTarget: 5, EndDate: "2024-03-01"})
	store.AddGoal(goals.Goal{ID: "g2", UserID: employee.ID, Title: "Paused", Status: goals.StatusOnHold, MonthlyTarget: 5, EndDate: "2024-03-21"})

	feed, err := New(store).Feed(context.Background(), employee, at(2024, 3, 20, 9, 0))
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestFeedFeedback(t *testing.T) {
	store := goalstest.New()
	store.AddGoal(goals.Goal{ID: "g1", UserID: employee.ID, Title: "Close tickets", MonthlyTarget: 10, EndDate: "2024-03-31"})
	store.AddFeedback(goals.Feedback{GoalID: "g1", FeedbackBy: manager.ID, FeedbackByName: "Ravi", FeedbackType: "Manager Feedback", Rating: 4, Comment: "Good pace", CreatedAt: "2024-03-20T05:30:00Z"})
	store.AddFeedback(goals.Feedback{GoalID: "g1", FeedbackBy: employee.ID, FeedbackByName: "Asha", Rating: 5, Comment: "self", CreatedAt: "2024-03-20T09:00:00"})
	store.AddFeedback(goals.Feedback{GoalID: "g1", FeedbackBy: "hr-1", Rating: 3, Comment: "stale", CreatedAt: "2024-03-01T09:00:00"})
	store.AddFeedback(goals.Feedback{GoalID: "g1", FeedbackBy: "hr-1", Rating: 3, Comment: "broken", CreatedAt: "yesterday-ish"})
	store.AddFeedback(goals.Feedback{GoalID: "g1", FeedbackBy: "hr-2", Rating: 2, Comment: "ok", CreatedAt: "2024-03-19 18:15:00"})

	feed, err := New(store).Feed(context.Background(), employee, at(2024, 3, 20, 14, 0))
	require.NoError(t, err)
	require.Len(t, feed, 2)

	first := feed[0]
	assert.Equal(t, KindFeedback, first.Kind)
	assert.Equal(t, "New Manager Feedback Received", first.Title)
	assert.Equal(t, "Ravi rated 'Close tickets' ⭐⭐⭐⭐ - Good pace...", first.Message)
	assert.Equal(t, "Today at 11:00 AM", first.Time)
	assert.Equal(t, at(2024, 3, 20, 11, 0), first.Timestamp)

	second := feed[1]
	assert.Equal(t, "New Feedback Received", second.Title)
	assert.Equal(t, "Someone rated 'Close tickets' ⭐⭐ - ok...", second.Message)
	assert.Equal(t, "Yesterday at 06:15 PM", second.Time)
}

func TestFeedFeedbackWindowIsInclusive(t *testing.T) {
	store := goalstest.New()
	store.AddGoal(goals.Goal{ID: "g1", UserID: employee.ID, Title: "T", MonthlyTarget: 10, EndDate: "2024-04-30"})
	store.AddFeedback(goals.Feedback{GoalID: "g1", FeedbackBy: "x", Rating: 1, CreatedAt: "2024-03-13T00:01:00"})
	store.AddFeedback(goals.Feedback{GoalID: "g1", FeedbackBy: "x", Rating: 1, CreatedAt: "2024-03-12T23:59:00"})

	feed, err := New(store).Feed(context.Background(), employee, at(2024, 3, 20, 9, 0))
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "Mar 13, 2024 at 12:01 AM", feed[0].Time)
}

func TestFeedTruncatesComment(t *testing.T) {
	store := goalstest.New()
	store.AddGoal(goals.Goal{ID: "g1", UserID: employee.ID, Title: "T", MonthlyTarget: 10})
	long := "abcdefghij" + "abcdefghij" + "abcdefghij" + "abcdefghij" + "abcdefghij" + "TAIL"
	store.AddFeedback(goals.Feedback{GoalID: "g1", FeedbackBy: "x", FeedbackByName: "X", Rating: 0, Comment: long, CreatedAt: "2024-03-20T09:00:00"})

	feed, err := New(store).Feed(context.Background(), employee, at(2024, 3, 20, 10, 0))
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.NotContains(t, feed[0].Message, "TAIL")
	assert.Equal(t, "X rated 'T'  - "+long[:50]+"...", feed[0].Message)
}

func TestFeedAssignment(t *testing.T) {
	store := goalstest.New()
	store.AddUser(manager)
	store.AddGoal(goals.Goal{ID: "g1", UserID: employee.ID, CreatedBy: manager.ID, Title: "Onboard", MonthlyTarget: 10, CreatedAt: "2024-03-18T10:00:00+05:30"})
	store.AddGoal(goals.Goal{ID: "g2", UserID: employee.ID, CreatedBy: employee.ID, Title: "Own", MonthlyTarget: 10, CreatedAt: "2024-03-18T10:00:00"})
	store.AddGoal(goals.Goal{ID: "g3", UserID: employee.ID, CreatedBy: "ghost", Title: "Ghost", MonthlyTarget: 10, CreatedAt: "2024-03-18T10:00:00"})
	store.AddGoal(goals.Goal{ID: "g4", UserID: employee.ID, CreatedBy: manager.ID, Title: "Old", MonthlyTarget: 10, CreatedAt: "2024-02-01T10:00:00"})

	feed, err := New(store).Feed(context.Background(), employee, at(2024, 3, 20, 10, 0))
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, KindAssignment, feed[0].Kind)
	assert.Equal(t, "New Goal Assigned", feed[0].Title)
	assert.Equal(t, "Ravi assigned you goal 'Onboard'", feed[0].Message)
	assert.Equal(t, "Mar 18, 2024 at 10:00 AM", feed[0].Time)
	assert.Equal(t, PriorityHigh, feed[0].Priority)
}

func TestFeedAchievement(t *testing.T) {
	store := goalstest.New()
	store.AddGoal(goals.Goal{ID: "g1", UserID: employee.ID, Title: "Hit target", MonthlyTarget: 10, MonthlyAchievement: 12, EndDate: "2024-03-25"})
	store.AddGoal(goals.Goal{ID: "g2", UserID: employee.ID, Title: "Undated", MonthlyTarget: 10, MonthlyAchievement: 10})

	feed, err := New(store).Feed(context.Background(), employee, at(2024, 3, 20, 9, 0))
	require.NoError(t, err)

	var achievements []Notification
	for _, n := range feed {
		if n.Kind == KindAchievement {
			achievements = append(achievements, n)
		}
	}
	require.Len(t, achievements, 2)
	assert.Equal(t, "Congratulations! You completed 'Hit target'", achievements[0].Message)
	assert.Equal(t, "Mar 25, 2024", achievements[0].Time)
	assert.Equal(t, "Today", achievements[1].Time)
	assert.Equal(t, at(2024, 3, 20, 12, 0), achievements[1].Timestamp)
	assert.Equal(t, KindAchievement, feed[len(feed)-1].Kind)
}

func TestFeedManagerSeesTeamIncomplete(t *testing.T) {
	store := goalstest.New()
	report := goals.Member{ID: "emp-2", Name: "Meera"}
	store.AddReport(manager.ID, report)
	store.AddGoal(goals.Goal{ID: "g1", UserID: report.ID, Title: "Audit", MonthlyTarget: 8, MonthlyAchievement: 3, EndDate: "2024-03-10"})
	store.AddGoal(goals.Goal{ID: "g2", UserID: report.ID, Title: "Finished", MonthlyTarget: 8, MonthlyAchievement: 8, EndDate: "2024-03-10"})

	feed, err := New(store).Feed(context.Background(), manager, at(2024, 3, 20, 9, 0))
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, KindTeamIncomplete, feed[0].Kind)
	assert.Equal(t, "Meera did not complete 'Audit' (Progress: 37.5%)", feed[0].Message)
	assert.Equal(t, PriorityNormal, feed[0].Priority)

	feed, err = New(store).Feed(context.Background(), goals.Member{ID: manager.ID, Role: goals.RoleEmployee}, at(2024, 3, 20, 9, 0))
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestFeedSkipsMalformedRecords(t *testing.T) {
	store := goalstest.New()
	store.AddGoal(goals.Goal{ID: "bad", UserID: employee.ID, Title: "Bad", MonthlyTarget: 5, EndDate: "31/03/2024"})
	store.AddGoal(goals.Goal{ID: "good", UserID: employee.ID, Title: "Good", MonthlyTarget: 5, EndDate: "2024-03-19"})
	store.FailFeedback["good"] = true

	feed, err := New(store).Feed(context.Background(), employee, at(2024, 3, 20, 9, 0))
	require.NoError(t, err)
	assert.Equal(t, []Kind{KindOverdue}, kinds(feed))
}

func TestFeedFailsWhenUserGoalsUnavailable(t *testing.T) {
	store := goalstest.New()
	store.FailUser[employee.ID] = true

	_, err := New(store).Feed(context.Background(), employee, at(2024, 3, 20, 9, 0))
	require.ErrorIs(t, err, goalstest.ErrInjected)
}

func TestFeedCapsAtLimit(t *testing.T) {
	store := goalstest.New()
	for i := 1; i <= 20; i++ {
		store.AddGoal(goals.Goal{
			ID:            fmt.Sprintf("g%d", i),
			UserID:        employee.ID,
			Title:         fmt.Sprintf("Goal %d", i),
			MonthlyTarget: 5,
			EndDate:       fmt.Sprintf("2024-02-%02d", i),
		})
	}

	svc := New(store)
	feed, err := svc.Feed(context.Background(), employee, at(2024, 3, 20, 9, 0))
	require.NoError(t, err)
	require.Len(t, feed, MaxFeedItems)
	assert.Contains(t, feed[0].Message, "'Goal 20'")

	svc.Limit = 3
	feed, err = svc.Feed(context.Background(), employee, at(2024, 3, 20, 9, 0))
	require.NoError(t, err)
	assert.Len(t, feed, 3)
}

func TestSortFeedTiebreaksOnOrder(t *testing.T) {
	ts := at(2024, 3, 20, 23, 59)
	items := []Notification{
		{Kind: KindDeadline, Priority: PriorityHigh, Timestamp: ts, Order: 2},
		{Kind: KindAssignment, Priority: PriorityHigh, Timestamp: ts, Order: 1},
		{Kind: KindOverdue, Priority: PriorityUrgent, Timestamp: ts.AddDate(0, 0, -5), Order: 3},
	}
	sortFeed(items)
	assert.Equal(t, []Kind{KindOverdue, KindAssignment, KindDeadline}, kinds(items))
}

func TestSummarize(t *testing.T) {
	summary := Summarize([]Notification{
		{Kind: KindOverdue, Priority: PriorityUrgent},
		{Kind: KindFeedback, Priority: PriorityUrgent},
		{Kind: KindDeadline, Priority: PriorityHigh},
		{Kind: KindDeadline, Priority: PriorityHigh},
	})
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 2, summary.Urgent)
	assert.Equal(t, 2, summary.ByKind[KindDeadline])
}
