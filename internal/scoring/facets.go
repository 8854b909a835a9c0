package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/resume-fit/internal/nlp"
)

const educationMarker = "university"

// SkillsScore returns the fraction of distinct job-description SKILL entities
// (compared lower-cased) that also appear in the resume.
// A job description without skills scores 0.
func SkillsScore(resume, jd []nlp.Entity) float64 {
	required := lowerSet(nlp.FilterLabel(jd, nlp.LabelSkill))
	if len(required) == 0 {
		return 0.0
	}
	have := lowerSet(nlp.FilterLabel(resume, nlp.LabelSkill))
	return overlap(have, required)
}

// ExperienceScore compares the number of DATE mentions on each side.
// Duplicates count; the ratio is capped at 1.
func ExperienceScore(resume, jd []nlp.Entity) float64 {
	required := len(nlp.FilterLabel(jd, nlp.LabelDate))
	if required == 0 {
		return 0.0
	}
	have := len(nlp.FilterLabel(resume, nlp.LabelDate))
	return math.Min(1.0, float64(have)/float64(max(1, required)))
}

// EducationScore returns the fraction of distinct university ORG entities in
// the job description that the resume names too.
func EducationScore(resume, jd []nlp.Entity) float64 {
	required := universities(jd)
	if len(required) == 0 {
		return 0.0
	}
	return overlap(universities(resume), required)
}

func universities(entities []nlp.Entity) map[string]struct{} {
	set := make(map[string]struct{})
	for _, org := range nlp.FilterLabel(entities, nlp.LabelOrg) {
		lower := strings.ToLower(org)
		if strings.Contains(lower, educationMarker) {
			set[lower] = struct{}{}
		}
	}
	return set
}

func lowerSet(texts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(texts))
	for _, t := range texts {
		set[strings.ToLower(t)] = struct{}{}
	}
	return set
}

// overlap is |have ∩ required| / |required|; required must be non-empty.
func overlap(have, required map[string]struct{}) float64 {
	matched := 0
	for k := range required {
		if _, ok := have[k]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(required))
}
