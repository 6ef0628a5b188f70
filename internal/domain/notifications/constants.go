package notifications

type Kind string

const (
	KindFeedback       Kind = "feedback"
	KindAssignment     Kind = "assignment"
	KindDeadline       Kind = "deadline"
	KindOverdue        Kind = "overdue"
	KindTeamIncomplete Kind = "team_incomplete"
	KindAchievement    Kind = "achievement"
	// KindTeamOverdue is reserved for clients; no scan emits it yet.
	KindTeamOverdue Kind = "team_overdue"
)

// Lower numbers sort first.
const (
	PriorityUrgent = 0
	PriorityHigh   = 1
	PriorityNormal = 2
	PriorityLow    = 3
)

const (
	MaxFeedItems       = 15
	RecentWindowDays   = 7
	DeadlineWindowDays = 3
	commentPreviewLen  = 50
)
