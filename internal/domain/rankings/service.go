package rankings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"appraisal/internal/domain/goals"
	"appraisal/internal/domain/performance"
)

type Service struct {
	directory goals.Directory
	goals     goals.GoalQuery
	store     SnapshotStore

	// Concurrency bounds the per-member goal lookups of one ranking run.
	Concurrency int
	Now         func() time.Time
}

func NewService(directory goals.Directory, goalQuery goals.GoalQuery, store SnapshotStore) *Service {
	return &Service{
		directory:   directory,
		goals:       goalQuery,
		store:       store,
		Concurrency: DefaultConcurrency,
		Now:         time.Now,
	}
}

// CurrentRankings scores every member of the manager's team that has goals
// in the given month and orders them by score, best first. Ties keep team
// order and still receive distinct ranks.
func (s *Service) CurrentRankings(ctx context.Context, managerID string, year, month int) ([]Entry, error) {
	if strings.TrimSpace(managerID) == "" {
		return nil, ErrMissingCohort
	}
	if !goals.ValidPeriod(year, month) {
		return nil, ErrInvalidPeriod
	}
	members, err := s.directory.TeamMembers(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}

	asOf := s.Now()
	quarter := goals.QuarterOf(month)
	scored := make([]*Entry, len(members))

	var g errgroup.Group
	g.SetLimit(max(s.Concurrency, 1))
	for i, member := range members {
		g.Go(func() error {
			list, err := s.goals.ListPeriodGoals(ctx, member.ID, year, quarter, month)
			if err != nil {
				slog.Warn("ranking member goals lookup failed", "managerId", managerID, "memberId", member.ID, "err", err)
				return nil
			}
			if len(list) == 0 {
				return nil
			}
			entry := newEntry(member, performance.Aggregate(list, asOf))
			scored[i] = &entry
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(members))
	for _, entry := range scored {
		if entry != nil {
			entries = append(entries, *entry)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

func newEntry(member goals.Member, m performance.Metrics) Entry {
	return Entry{
		EmployeeID:     member.ID,
		Name:           member.Name,
		Email:          member.Email,
		Designation:    orNotAvailable(member.Designation),
		Department:     orNotAvailable(member.Department),
		TotalGoals:     m.TotalGoals,
		CompletedGoals: m.Completed,
		CompletionRate: m.CompletionRate,
		AvgProgress:    m.AvgProgress,
		OnTimeRate:     m.OnTimeRate,
		Score:          performance.Score(m),
	}
}

func orNotAvailable(value string) string {
	if strings.TrimSpace(value) == "" {
		return notAvailable
	}
	return value
}

// SaveSnapshot recomputes the month's rankings and stores one snapshot per
// ranked member, replacing any earlier snapshot for the same month. It
// reports false when there was nothing to rank.
func (s *Service) SaveSnapshot(ctx context.Context, managerID string, year, month int) (bool, error) {
	entries, err := s.CurrentRankings(ctx, managerID, year, month)
	if err != nil {
		return false, err
	}
	if len(entries) == 0 {
		return false, nil
	}

	saved := 0
	var errs []error
	for _, entry := range entries {
		snap := Snapshot{
			ManagerID:      managerID,
			EmployeeID:     entry.EmployeeID,
			Year:           year,
			Month:          month,
			Rank:           entry.Rank,
			TotalGoals:     entry.TotalGoals,
			CompletedGoals: entry.CompletedGoals,
			CompletionRate: entry.CompletionRate,
			AvgProgress:    entry.AvgProgress,
			OnTimeRate:     entry.OnTimeRate,
			Score:          entry.Score,
		}
		if err := s.store.UpsertRanking(ctx, snap); err != nil {
			slog.Warn("ranking snapshot save failed", "managerId", managerID, "employeeId", entry.EmployeeID, "err", err)
			errs = append(errs, fmt.Errorf("employee %s: %w", entry.EmployeeID, err))
			continue
		}
		saved++
	}
	if saved == 0 {
		return false, errors.Join(errs...)
	}
	return true, nil
}

func (s *Service) HistoricalRankings(ctx context.Context, managerID, employeeID string, limit int) []Snapshot {
	limit = clampMonths(limit)
	history, err := s.store.QueryRankings(ctx, managerID, employeeID, limit)
	if err != nil {
		slog.Warn("ranking history lookup failed", "managerId", managerID, "employeeId", employeeID, "err", err)
		return []Snapshot{}
	}
	if history == nil {
		return []Snapshot{}
	}
	return history
}

// AverageRanking summarises the employee's stored ranks. ok is false when
// the employee has never been ranked.
func (s *Service) AverageRanking(ctx context.Context, managerID, employeeID string, months int) (Average, bool) {
	history := s.HistoricalRankings(ctx, managerID, employeeID, months)
	if len(history) == 0 {
		return Average{}, false
	}
	avg := Average{
		BestRank:      history[0].Rank,
		WorstRank:     history[0].Rank,
		MonthsTracked: len(history),
	}
	total := 0
	for _, snap := range history {
		total += snap.Rank
		avg.BestRank = min(avg.BestRank, snap.Rank)
		avg.WorstRank = max(avg.WorstRank, snap.Rank)
	}
	avg.AvgRank = performance.Round(float64(total)/float64(len(history)), 1)
	return avg, true
}

// ClassifyTrend compares a current rank against the historical average.
// Lower ranks are better.
func ClassifyTrend(currentRank int, avg Average, ok bool) Trend {
	if !ok || avg.MonthsTracked < 2 {
		return TrendNew
	}
	current := float64(currentRank)
	switch {
	case current < avg.AvgRank:
		return TrendImproving
	case current > avg.AvgRank:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func (s *Service) Dashboard(ctx context.Context, managerID string, year, month int) ([]DashboardRow, error) {
	entries, err := s.CurrentRankings(ctx, managerID, year, month)
	if err != nil {
		return nil, err
	}
	rows := make([]DashboardRow, 0, len(entries))
	for _, entry := range entries {
		row := DashboardRow{Entry: entry}
		avg, ok := s.AverageRanking(ctx, managerID, entry.EmployeeID, DefaultHistoryMonths)
		if ok {
			row.Average = &avg
		}
		row.Trend = ClassifyTrend(entry.Rank, avg, ok)
		rows = append(rows, row)
	}
	return rows, nil
}

func clampMonths(months int) int {
	if months <= 0 {
		return DefaultHistoryMonths
	}
	return min(months, MaxHistoryMonths)
}
