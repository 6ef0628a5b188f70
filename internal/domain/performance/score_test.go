package performance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreWeights(t *testing.T) {
	tests := []struct {
		name    string
		metrics Metrics
		want    float64
	}{
		{name: "empty", metrics: Metrics{}, want: 0},
		{
			name:    "perfect with volume cap",
			metrics: Metrics{TotalGoals: 40, CompletionRate: 100, AvgProgress: 100, OnTimeRate: 100},
			want:    100,
		},
		{
			name:    "volume only",
			metrics: Metrics{TotalGoals: 3},
			want:    3,
		},
		{
			name:    "rounded to two places",
			metrics: Metrics{TotalGoals: 3, Completed: 1, CompletionRate: 100.0 / 3, AvgProgress: 100.0 / 3},
			want:    26.33,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.metrics))
		})
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	m := Metrics{TotalGoals: 7, CompletionRate: 42.857142857, AvgProgress: 61.1111, OnTimeRate: 66.6667}
	first := Score(m)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Score(m))
	}
	assert.Equal(t, first, Round(first, 2))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 1.3, Round(1.26, 1))
	assert.Equal(t, 2.0, Round(1.996, 2))
	assert.Equal(t, 3.0, Round(3.04, 0))
}
