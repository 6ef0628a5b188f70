package performance

type Metrics struct {
	TotalGoals     int     `json:"totalGoals"`
	Completed      int     `json:"completed"`
	Active         int     `json:"active"`
	OnHold         int     `json:"onHold"`
	Cancelled      int     `json:"cancelled"`
	AvgProgress    float64 `json:"avgProgress"`
	CompletionRate float64 `json:"completionRate"`
	OnTime         int     `json:"onTime"`
	Overdue        int     `json:"overdue"`
	OnTimeRate     float64 `json:"onTimeRate"`
}

// IsEmpty reports whether the metrics were computed over no goals.
func (m Metrics) IsEmpty() bool {
	return m.TotalGoals == 0
}

type TrendPoint struct {
	Month          string  `json:"month"`
	Year           int     `json:"year"`
	MonthNum       int     `json:"monthNum"`
	CompletionRate float64 `json:"completionRate"`
	AvgProgress    float64 `json:"avgProgress"`
	TotalGoals     int     `json:"totalGoals"`
	Completed      int     `json:"completed"`
}

type Summary struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Metrics Metrics `json:"metrics"`
	Score   float64 `json:"score"`
	Band    string  `json:"band"`
}

type WeekProgress struct {
	Week        int     `json:"week"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Target      float64 `json:"target"`
	Achievement float64 `json:"achievement"`
	Progress    float64 `json:"progress"`
}

type GoalProgress struct {
	GoalID   string         `json:"goalId"`
	Title    string         `json:"goalTitle"`
	Status   string         `json:"status"`
	Progress float64        `json:"progress"`
	Band     string         `json:"band"`
	Weeks    []WeekProgress `json:"weeks"`
	// WeeklyDrift is the monthly achievement minus the sum of the weeks.
	WeeklyDrift float64 `json:"weeklyDrift"`
}
