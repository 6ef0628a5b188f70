package rankings

import "time"

type Entry struct {
	EmployeeID     string  `json:"employeeId"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Designation    string  `json:"designation"`
	Department     string  `json:"department"`
	TotalGoals     int     `json:"totalGoals"`
	CompletedGoals int     `json:"completedGoals"`
	CompletionRate float64 `json:"completionRate"`
	AvgProgress    float64 `json:"avgProgress"`
	OnTimeRate     float64 `json:"onTimeRate"`
	Score          float64 `json:"score"`
	Rank           int     `json:"rank"`
}

// Snapshot is the persisted ranking of one employee in one manager's team
// for one calendar month.
type Snapshot struct {
	ManagerID      string    `json:"managerId"`
	EmployeeID     string    `json:"employeeId"`
	Year           int       `json:"year"`
	Month          int       `json:"month"`
	Rank           int       `json:"rank"`
	TotalGoals     int       `json:"totalGoals"`
	CompletedGoals int       `json:"completedGoals"`
	CompletionRate float64   `json:"completionRate"`
	AvgProgress    float64   `json:"avgProgress"`
	OnTimeRate     float64   `json:"onTimeRate"`
	Score          float64   `json:"score"`
	SavedAt        time.Time `json:"savedAt"`
}

type Average struct {
	AvgRank       float64 `json:"avgRank"`
	BestRank      int     `json:"bestRank"`
	WorstRank     int     `json:"worstRank"`
	MonthsTracked int     `json:"monthsTracked"`
}

type Trend string

const (
	TrendNew       Trend = "new"
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

type DashboardRow struct {
	Entry
	Average *Average `json:"average"`
	Trend   Trend    `json:"trend"`
}
