package goals

import "context"

type GoalQuery interface {
	ListUserGoals(ctx context.Context, userID string) ([]Goal, error)
	ListPeriodGoals(ctx context.Context, userID string, year, quarter, month int) ([]Goal, error)
}

type Directory interface {
	TeamMembers(ctx context.Context, managerID string) ([]Member, error)
	UserByID(ctx context.Context, userID string) (Member, error)
}

type FeedbackQuery interface {
	GoalFeedback(ctx context.Context, goalID string) ([]Feedback, error)
}

// StoreAPI is everything the scoring and notification engines read.
type StoreAPI interface {
	GoalQuery
	Directory
	FeedbackQuery
}
