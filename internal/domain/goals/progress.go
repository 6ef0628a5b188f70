package goals

// Progress returns achieved as a percentage of target, capped at 100.
// A zero or negative target yields 0.
func Progress(achieved, target float64) float64 {
	if target <= 0 {
		return 0
	}
	progress := achieved / target * 100
	if progress > 100 {
		return 100
	}
	return progress
}

func Band(progress float64) string {
	switch {
	case progress >= 90:
		return BandExcellent
	case progress >= 70:
		return BandGood
	case progress >= 50:
		return BandFair
	default:
		return BandPoor
	}
}

func CompletableGoals(list []Goal) []Goal {
	var out []Goal
	for _, goal := range list {
		if goal.IsActive() && goal.Progress() >= 100 {
			out = append(out, goal)
		}
	}
	return out
}
