package scoring

import (
	"math"

	"github.com/jonathan/resume-fit/internal/types"
)

// band is one half-open range [lower, upper) of the overall percentage and
// the advice that goes with it.
type band struct {
	lower, upper float64
	advice       [4]string
}

var bands = []band{
	{0, 50, [4]string{
		"Your resume needs significant improvement to match this job",
		"Add more relevant skills from the job description",
		"Highlight your most relevant experience first",
		"Consider restructuring your resume to better align with the job requirements",
	}},
	{50, 70, [4]string{
		"Your resume is somewhat matched but could be improved",
		"Include more keywords from the job description",
		"Quantify your achievements with specific metrics",
		"Add a skills section that matches the job requirements",
	}},
	{70, 85, [4]string{
		"Good match! Consider a few improvements",
		"Tailor your summary to better match the job",
		"Reorder sections to highlight most relevant qualifications",
		"Double-check for any missing keywords",
	}},
	{85, math.Inf(1), [4]string{
		"Excellent match! Your resume is well-aligned",
		"Consider applying for this position",
		"Ensure your contact info is up to date",
		"Save a PDF version with your name in the filename",
	}},
}

// Suggestions maps an overall percentage to its band's four suggestions.
// Values below 0 (and NaN) get the lowest band, values above 100 the highest.
func Suggestions(overallPercent float64) []string {
	chosen := bands[0]
	for _, b := range bands {
		if overallPercent >= b.lower && overallPercent < b.upper {
			chosen = b
			break
		}
	}
	out := make([]string, len(chosen.advice))
	copy(out, chosen.advice[:])
	return out
}

// Aggregate converts the five metric fractions into a ScoreCard.
// Suggestions are picked from the unrounded overall percentage.
func Aggregate(overall, skills, experience, education, keywords float64) types.ScoreCard {
	return types.ScoreCard{
		OverallScore:    types.PercentOf(overall),
		SkillsScore:     types.PercentOf(skills),
		ExperienceScore: types.PercentOf(experience),
		EducationScore:  types.PercentOf(education),
		KeywordsScore:   types.PercentOf(keywords),
		Suggestions:     Suggestions(overall * 100),
	}
}
