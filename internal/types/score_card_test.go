//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentOf(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
		want     Percent
	}{
		{name: "zero", fraction: 0, want: 0},
		{name: "one", fraction: 1, want: 100},
		{name: "two thirds", fraction: 2.0 / 3.0, want: 66.7},
		{name: "keyword similarity", fraction: 0.6410554, want: 64.1},
		{name: "half rounds up", fraction: 0.0625, want: 6.3},
		{name: "another half", fraction: 0.1875, want: 18.8},
		{name: "negative clamps", fraction: -0.2, want: 0},
		{name: "above one clamps", fraction: 1.5, want: 100},
		{name: "NaN", fraction: math.NaN(), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PercentOf(tt.fraction))
		})
	}
}

func TestScoreCard_JSON(t *testing.T) {
	card := ScoreCard{
		OverallScore:    64.1,
		SkillsScore:     100,
		ExperienceScore: 0,
		EducationScore:  50,
		KeywordsScore:   64.1,
		Suggestions:     []string{"a", "b", "c", "d"},
	}

	data, err := json.Marshal(card)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"overall_score": 64.1,
		"skills_score": 100.0,
		"experience_score": 0.0,
		"education_score": 50.0,
		"keywords_score": 64.1,
		"suggestions": ["a", "b", "c", "d"]
	}`, string(data))
	assert.Contains(t, string(data), `"skills_score":100.0`)
	assert.Contains(t, string(data), `"experience_score":0.0`)
}
