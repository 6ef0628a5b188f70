package goals

type Goal struct {
	ID                 string     `json:"goalId"`
	UserID             string     `json:"userId"`
	CreatedBy          string     `json:"createdBy,omitempty"`
	Title              string     `json:"goalTitle"`
	Year               int        `json:"year"`
	Quarter            int        `json:"quarter"`
	Month              int        `json:"month"`
	MonthlyTarget      float64    `json:"monthlyTarget"`
	MonthlyAchievement float64    `json:"monthlyAchievement"`
	WeeklyTargets      [4]float64 `json:"weeklyTargets"`
	WeeklyAchievements [4]float64 `json:"weeklyAchievements"`
	Status             string     `json:"status"`
	StartDate          string     `json:"startDate,omitempty"`
	EndDate            string     `json:"endDate,omitempty"`
	CreatedAt          string     `json:"createdAt,omitempty"`
	CompletedAt        string     `json:"completedAt,omitempty"`
}

// EffectiveStatus treats a goal stored without a status as Active.
func (g Goal) EffectiveStatus() string {
	if g.Status == "" {
		return StatusActive
	}
	return g.Status
}

func (g Goal) IsActive() bool {
	return g.EffectiveStatus() == StatusActive
}

func (g Goal) Progress() float64 {
	return Progress(g.MonthlyAchievement, g.MonthlyTarget)
}

func (g Goal) WeeklyTotal() float64 {
	var total float64
	for _, v := range g.WeeklyAchievements {
		total += v
	}
	return total
}

type Member struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Designation string `json:"designation,omitempty"`
	Department  string `json:"department,omitempty"`
	Role        string `json:"role,omitempty"`
}

type Feedback struct {
	GoalID         string `json:"goalId"`
	FeedbackBy     string `json:"feedbackBy"`
	FeedbackByName string `json:"feedbackByName"`
	FeedbackType   string `json:"feedbackType"`
	Rating         int    `json:"rating"`
	Comment        string `json:"comment"`
	CreatedAt      string `json:"createdAt"`
}
