// Package goalstest provides an in-memory goals.StoreAPI for tests.
package goalstest

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"appraisal/internal/domain/goals"
)

var ErrInjected = errors.New("injected store failure")

type Store struct {
	mu       sync.Mutex
	goals    map[string][]goals.Goal
	users    map[string]goals.Member
	teams    map[string][]string
	feedback map[string][]goals.Feedback

	// FailPeriod makes ListPeriodGoals fail for the given "user/year/month" keys.
	FailPeriod map[string]bool
	// FailUser makes ListUserGoals fail for the given user ids.
	FailUser map[string]bool
	// FailFeedback makes GoalFeedback fail for the given goal ids.
	FailFeedback map[string]bool
	FailTeam     bool
}

func New() *Store {
	return &Store{
		goals:        map[string][]goals.Goal{},
		users:        map[string]goals.Member{},
		teams:        map[string][]string{},
		feedback:     map[string][]goals.Feedback{},
		FailPeriod:   map[string]bool{},
		FailUser:     map[string]bool{},
		FailFeedback: map[string]bool{},
	}
}

func PeriodKey(userID string, year, month int) string {
	return fmt.Sprintf("%s/%d/%d", userID, year, month)
}

func (s *Store) AddUser(m goals.Member) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[m.ID] = m
}

func (s *Store) AddReport(managerID string, m goals.Member) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[m.ID] = m
	s.teams[managerID] = append(s.teams[managerID], m.ID)
}

func (s *Store) AddGoal(g goals.Goal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if g.Quarter == 0 && g.Month > 0 {
		g.Quarter = goals.QuarterOf(g.Month)
	}
	s.goals[g.UserID] = append(s.goals[g.UserID], g)
}

func (s *Store) AddFeedback(fb goals.Feedback) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedback[fb.GoalID] = append(s.feedback[fb.GoalID], fb)
}

func (s *Store) ListUserGoals(ctx context.Context, userID string) ([]goals.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailUser[userID] {
		return nil, ErrInjected
	}
	return append([]goals.Goal(nil), s.goals[userID]...), nil
}

func (s *Store) ListPeriodGoals(ctx context.Context, userID string, year, quarter, month int) ([]goals.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailPeriod[PeriodKey(userID, year, month)] {
		return nil, ErrInjected
	}
	var out []goals.Goal
	for _, g := range s.goals[userID] {
		if g.Year == year && g.Quarter == quarter && g.Month == month {
			out = append(out, g)
		}
	}
	return out, nil
}

func (s *Store) TeamMembers(ctx context.Context, managerID string) ([]goals.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailTeam {
		return nil, ErrInjected
	}
	var out []goals.Member
	for _, id := range s.teams[managerID] {
		out = append(out, s.users[id])
	}
	return out, nil
}

func (s *Store) UserByID(ctx context.Context, userID string) (goals.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.users[userID]
	if !ok {
		return goals.Member{}, goals.ErrUserNotFound
	}
	return m, nil
}

func (s *Store) GoalFeedback(ctx context.Context, goalID string) ([]goals.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailFeedback[goalID] {
		return nil, ErrInjected
	}
	return append([]goals.Feedback(nil), s.feedback[goalID]...), nil
}
