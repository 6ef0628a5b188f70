package notifications

import (
	"fmt"
	"log/slog"
	"time"

	"appraisal/internal/domain/goals"
)

const (
	displayDate  = "Jan 02, 2006"
	displayClock = "03:04 PM"
)

type feedBuilder struct {
	loc   *time.Location
	now   time.Time
	today time.Time
	items []Notification
}

func newFeedBuilder(asOf time.Time, loc *time.Location) *feedBuilder {
	return &feedBuilder{
		loc:   loc,
		now:   asOf.In(loc),
		today: goals.LocalDate(asOf, loc),
	}
}

func (b *feedBuilder) add(n Notification) {
	n.Order = len(b.items)
	b.items = append(b.items, n)
}

func (b *feedBuilder) withinRecentWindow(ts time.Time) bool {
	days := goals.DaysBetween(ts, b.today)
	return days >= 0 && days <= RecentWindowDays
}

func (b *feedBuilder) relativeTime(ts time.Time) string {
	return b.relativeDay(ts) + " at " + ts.Format(displayClock)
}

func (b *feedBuilder) relativeDay(ts time.Time) string {
	switch goals.DaysBetween(ts, b.today) {
	case 0:
		return "Today"
	case 1:
		return "Yesterday"
	default:
		return ts.Format(displayDate)
	}
}

// scanAchievements reports active goals that already reached their target.
func (b *feedBuilder) scanAchievements(owned []goals.Goal) {
	for _, goal := range owned {
		if !goal.IsActive() || goal.Progress() < 100 {
			continue
		}
		day := b.today
		if goal.EndDate != "" {
			end, err := goals.ParseDate(goal.EndDate, b.loc)
			if err != nil {
				slog.Debug("skipping achievement with bad end date", "goalId", goal.ID, "endDate", goal.EndDate, "err", err)
				continue
			}
			day = end
		}
		at := time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, b.loc)
		b.add(Notification{
			Kind:      KindAchievement,
			Title:     "Goal Completed!",
			Message:   fmt.Sprintf("Congratulations! You completed '%s'", goal.Title),
			Time:      b.relativeDay(at),
			Timestamp: at,
			Priority:  PriorityLow,
		})
	}
}

func (b *feedBuilder) scanDeadlines(owned []goals.Goal) {
	for _, goal := range owned {
		if !goal.IsActive() || goal.EndDate == "" {
			continue
		}
		end, err := goals.ParseDate(goal.EndDate, b.loc)
		if err != nil {
			slog.Debug("skipping deadline with bad end date", "goalId", goal.ID, "endDate", goal.EndDate, "err", err)
			continue
		}
		daysLeft := goals.DaysBetween(b.today, end)
		switch {
		case daysLeft < 0:
			b.add(Notification{
				Kind:      KindOverdue,
				Title:     "Goal Overdue",
				Message:   fmt.Sprintf("Goal '%s' is overdue by %d days", goal.Title, -daysLeft),
				Time:      end.Format(displayDate),
				Timestamp: endOfDay(end),
				Priority:  PriorityUrgent,
			})
		case daysLeft <= DeadlineWindowDays:
			b.add(Notification{
				Kind:      KindDeadline,
				Title:     "Goal Deadline Approaching",
				Message:   fmt.Sprintf("Goal '%s' - %s", goal.Title, dueIn(daysLeft)),
				Time:      end.Format(displayDate),
				Timestamp: endOfDay(end),
				Priority:  PriorityHigh,
			})
		}
	}
}

func dueIn(days int) string {
	switch days {
	case 0:
		return "Due today"
	case 1:
		return "Due tomorrow"
	default:
		return fmt.Sprintf("Due in %d days", days)
	}
}

func (b *feedBuilder) sorted(limit int) []Notification {
	sortFeed(b.items)
	if len(b.items) > limit {
		return b.items[:limit]
	}
	return b.items
}
