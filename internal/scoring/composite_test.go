package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-fit/internal/types"
)

var (
	lowBand = []string{
		"Your resume needs significant improvement to match this job",
		"Add more relevant skills from the job description",
		"Highlight your most relevant experience first",
		"Consider restructuring your resume to better align with the job requirements",
	}
	fairBand = []string{
		"Your resume is somewhat matched but could be improved",
		"Include more keywords from the job description",
		"Quantify your achievements with specific metrics",
		"Add a skills section that matches the job requirements",
	}
	goodBand = []string{
		"Good match! Consider a few improvements",
		"Tailor your summary to better match the job",
		"Reorder sections to highlight most relevant qualifications",
		"Double-check for any missing keywords",
	}
	excellentBand = []string{
		"Excellent match! Your resume is well-aligned",
		"Consider applying for this position",
		"Ensure your contact info is up to date",
		"Save a PDF version with your name in the filename",
	}
)

func TestSuggestions_Bands(t *testing.T) {
	tests := []struct {
		percent float64
		want    []string
	}{
		{0, lowBand},
		{49.9, lowBand},
		{49.99, lowBand},
		{50.0, fairBand},
		{69.9, fairBand},
		{70.0, goodBand},
		{84.9, goodBand},
		{85.0, excellentBand},
		{100.0, excellentBand},
		{-5, lowBand},
		{120, excellentBand},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Suggestions(tt.percent), "percent %v", tt.percent)
	}
}

func TestSuggestions_TotalOverRange(t *testing.T) {
	bandsSeen := make(map[string]bool)
	for i := 0; i <= 1000; i++ {
		got := Suggestions(float64(i) / 10)
		require.Len(t, got, 4)
		bandsSeen[got[0]] = true
	}
	assert.Len(t, bandsSeen, 4)
}

func TestSuggestions_ReturnsFreshSlice(t *testing.T) {
	first := Suggestions(10)
	first[0] = "mutated"

	assert.Equal(t, lowBand, Suggestions(10))
}

func TestAggregate_RoundsToOneDecimal(t *testing.T) {
	card := Aggregate(0.6410554, 2.0/3.0, 1.0, 0, 0.12345)

	assert.Equal(t, types.Percent(64.1), card.OverallScore)
	assert.Equal(t, types.Percent(66.7), card.SkillsScore)
	assert.Equal(t, types.Percent(100.0), card.ExperienceScore)
	assert.Equal(t, types.Percent(0.0), card.EducationScore)
	assert.Equal(t, types.Percent(12.3), card.KeywordsScore)
	assert.Equal(t, fairBand, card.Suggestions)
}

func TestAggregate_HalfRoundsAwayFromZero(t *testing.T) {
	card := Aggregate(0.0625, 0.1875, 0, 0, 0)

	assert.Equal(t, types.Percent(6.3), card.OverallScore)
	assert.Equal(t, types.Percent(18.8), card.SkillsScore)
}

func TestAggregate_FairBandStartsAtFifty(t *testing.T) {
	assert.Equal(t, lowBand, Aggregate(0.499, 0, 0, 0, 0).Suggestions)
	assert.Equal(t, fairBand, Aggregate(0.5, 0, 0, 0, 0).Suggestions)
}

func TestAggregate_SuggestionsUseUnroundedOverall(t *testing.T) {
	card := Aggregate(0.49996, 0, 0, 0, 0)

	assert.Equal(t, types.Percent(50.0), card.OverallScore)
	assert.Equal(t, lowBand, card.Suggestions)
}
