// Package types provides type definitions for structured data used throughout the resume-fit system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"math"
	"strconv"
)

// Percent is a score in the range 0-100 carried with one decimal place.
// It marshals to JSON with exactly one fractional digit (e.g. 100.0, 66.7).
type Percent float64

// MarshalJSON renders the percentage with a single fractional digit.
func (p Percent) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(p), 'f', 1, 64)), nil
}

// PercentOf scales a fraction in [0,1] to a percentage rounded to one decimal.
// Halves round away from zero; the result is clamped to [0,100].
func PercentOf(fraction float64) Percent {
	if math.IsNaN(fraction) {
		return 0
	}
	p := math.Round(fraction*100*10) / 10
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return Percent(p)
}

// ScoreCard is the result of scoring one resume against one job description.
type ScoreCard struct {
	OverallScore    Percent  `json:"overall_score"`
	SkillsScore     Percent  `json:"skills_score"`
	ExperienceScore Percent  `json:"experience_score"`
	EducationScore  Percent  `json:"education_score"`
	KeywordsScore   Percent  `json:"keywords_score"`
	Suggestions     []string `json:"suggestions"`
}
