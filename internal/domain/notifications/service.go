package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"appraisal/internal/domain/goals"
)

type Service struct {
	goals     goals.GoalQuery
	feedback  goals.FeedbackQuery
	directory goals.Directory

	Location *time.Location
	Limit    int
}

func New(store goals.StoreAPI) *Service {
	return &Service{
		goals:     store,
		feedback:  store,
		directory: store,
		Location:  goals.IST,
		Limit:     MaxFeedItems,
	}
}

// Feed builds the user's notification feed as of asOf: most urgent first,
// then most recent. Records that cannot be parsed are skipped individually.
func (s *Service) Feed(ctx context.Context, user goals.Member, asOf time.Time) ([]Notification, error) {
	owned, err := s.goals.ListUserGoals(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list user goals: %w", err)
	}

	b := newFeedBuilder(asOf, s.location())
	s.scanFeedback(ctx, b, user, owned)
	s.scanAssignments(ctx, b, user, owned)
	b.scanAchievements(owned)
	b.scanDeadlines(owned)
	if user.Role == goals.RoleManager {
		s.scanTeam(ctx, b, user)
	}
	return b.sorted(s.limit()), nil
}

func (s *Service) location() *time.Location {
	if s.Location == nil {
		return goals.IST
	}
	return s.Location
}

func (s *Service) limit() int {
	if s.Limit <= 0 {
		return MaxFeedItems
	}
	return s.Limit
}

func (s *Service) scanFeedback(ctx context.Context, b *feedBuilder, user goals.Member, owned []goals.Goal) {
	for _, goal := range owned {
		entries, err := s.feedback.GoalFeedback(ctx, goal.ID)
		if err != nil {
			slog.Warn("notification feedback lookup failed", "goalId", goal.ID, "err", err)
			continue
		}
		for _, fb := range entries {
			if fb.FeedbackBy == user.ID {
				continue
			}
			created, err := goals.ParseTimestamp(fb.CreatedAt, b.loc)
			if err != nil {
				slog.Debug("skipping feedback with bad timestamp", "goalId", goal.ID, "createdAt", fb.CreatedAt, "err", err)
				continue
			}
			if !b.withinRecentWindow(created) {
				continue
			}
			feedbackType := fb.FeedbackType
			if feedbackType == "" {
				feedbackType = "Feedback"
			}
			author := fb.FeedbackByName
			if author == "" {
				author = "Someone"
			}
			b.add(Notification{
				Kind:      KindFeedback,
				Title:     fmt.Sprintf("New %s Received", feedbackType),
				Message:   fmt.Sprintf("%s rated '%s' %s - %s...", author, goal.Title, stars(fb.Rating), preview(fb.Comment)),
				Time:      b.relativeTime(created),
				Timestamp: created,
				Priority:  PriorityUrgent,
			})
		}
	}
}

func (s *Service) scanAssignments(ctx context.Context, b *feedBuilder, user goals.Member, owned []goals.Goal) {
	for _, goal := range owned {
		if goal.CreatedBy == "" || goal.CreatedBy == user.ID {
			continue
		}
		created, err := goals.ParseTimestamp(goal.CreatedAt, b.loc)
		if err != nil {
			slog.Debug("skipping goal with bad creation time", "goalId", goal.ID, "createdAt", goal.CreatedAt, "err", err)
			continue
		}
		if !b.withinRecentWindow(created) {
			continue
		}
		assigner, err := s.directory.UserByID(ctx, goal.CreatedBy)
		if err != nil {
			slog.Debug("skipping assignment with unknown assigner", "goalId", goal.ID, "createdBy", goal.CreatedBy, "err", err)
			continue
		}
		b.add(Notification{
			Kind:      KindAssignment,
			Title:     "New Goal Assigned",
			Message:   fmt.Sprintf("%s assigned you goal '%s'", assigner.Name, goal.Title),
			Time:      b.relativeTime(created),
			Timestamp: created,
			Priority:  PriorityHigh,
		})
	}
}

func (s *Service) scanTeam(ctx context.Context, b *feedBuilder, manager goals.Member) {
	members, err := s.directory.TeamMembers(ctx, manager.ID)
	if err != nil {
		slog.Warn("notification team lookup failed", "managerId", manager.ID, "err", err)
		return
	}
	for _, member := range members {
		list, err := s.goals.ListUserGoals(ctx, member.ID)
		if err != nil {
			slog.Warn("notification member goals lookup failed", "memberId", member.ID, "err", err)
			continue
		}
		for _, goal := range list {
			if !goal.IsActive() {
				continue
			}
			end, err := goals.ParseDate(goal.EndDate, b.loc)
			if err != nil {
				continue
			}
			if !b.today.After(end) {
				continue
			}
			progress := goal.Progress()
			if progress >= 100 {
				continue
			}
			b.add(Notification{
				Kind:      KindTeamIncomplete,
				Title:     "Team Goal Incomplete",
				Message:   fmt.Sprintf("%s did not complete '%s' (Progress: %.1f%%)", member.Name, goal.Title, progress),
				Time:      end.Format(displayDate),
				Timestamp: endOfDay(end),
				Priority:  PriorityNormal,
			})
		}
	}
}

func stars(rating int) string {
	return strings.Repeat("⭐", max(rating, 0))
}

func preview(comment string) string {
	runes := []rune(comment)
	if len(runes) > commentPreviewLen {
		runes = runes[:commentPreviewLen]
	}
	return string(runes)
}

func endOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 0, 0, date.Location())
}

func sortFeed(items []Notification) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.After(b.Timestamp)
		}
		return a.Order < b.Order
	})
}
