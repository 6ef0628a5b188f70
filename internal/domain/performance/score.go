package performance

import "math"

// Composite score weights. They are part of the ranking contract and are
// not configurable.
const (
	CompletionWeight = 0.40
	ProgressWeight   = 0.30
	VolumeWeight     = 0.20
	OnTimeWeight     = 0.10

	// Each goal contributes VolumePerGoal points to the volume term, capped at VolumeCap.
	VolumePerGoal = 5
	VolumeCap     = 100
)

func Score(m Metrics) float64 {
	volume := math.Min(float64(m.TotalGoals*VolumePerGoal), VolumeCap)
	total := m.CompletionRate*CompletionWeight +
		m.AvgProgress*ProgressWeight +
		volume*VolumeWeight +
		m.OnTimeRate*OnTimeWeight
	return Round(total, 2)
}

func Round(value float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(value*pow) / pow
}
