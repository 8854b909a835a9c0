package scoring

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-fit/internal/nlp"
	"github.com/jonathan/resume-fit/internal/types"
)

func score(t *testing.T, scorer *Scorer, resume, jd string) types.ScoreCard {
	t.Helper()
	card, err := scorer.Score(context.Background(), resume, jd)
	require.NoError(t, err)
	return card
}

func TestScore_PartialVocabularyOverlap(t *testing.T) {
	card := score(t, NewScorer(newFakeModel()), "python developer", "python developer senior")

	assert.Equal(t, types.Percent(64.1), card.OverallScore)
	assert.Greater(t, float64(card.OverallScore), 50.0)
	assert.Less(t, float64(card.OverallScore), 90.0)
	assert.Equal(t, types.Percent(64.1), card.KeywordsScore)
	assert.Equal(t, fairBand, card.Suggestions)
}

func TestScore_SkillsCoverageOfJobDescription(t *testing.T) {
	resume, jd := "resume text", "job text"
	model := newFakeModel().
		with(resume, skill("Python"), skill("SQL")).
		with(jd, skill("python"), skill("sql"), skill("aws"))

	card := score(t, NewScorer(model), resume, jd)

	assert.Equal(t, types.Percent(66.7), card.SkillsScore)
}

func TestScore_ExperienceCappedAtFull(t *testing.T) {
	resume, jd := "resume text", "job text"
	model := newFakeModel().
		with(resume, date("2015"), date("2017"), date("2019"), date("2021")).
		with(jd, date("2020"), date("3 years"))

	card := score(t, NewScorer(model), resume, jd)

	assert.Equal(t, types.Percent(100.0), card.ExperienceScore)
}

func TestScore_Education(t *testing.T) {
	resume, jd := "resume text", "job text"
	model := newFakeModel().
		with(resume, org("Stanford University")).
		with(jd, org("stanford university"), org("Acme Corp"))

	card := score(t, NewScorer(model), resume, jd)

	assert.Equal(t, types.Percent(100.0), card.EducationScore)
}

func TestScore_EmptyInputs(t *testing.T) {
	card := score(t, NewScorer(newFakeModel()), "", "")

	assert.Equal(t, types.Percent(0), card.OverallScore)
	assert.Equal(t, types.Percent(0), card.KeywordsScore)
	assert.Equal(t, types.Percent(0), card.SkillsScore)
	assert.Equal(t, types.Percent(0), card.ExperienceScore)
	assert.Equal(t, types.Percent(0), card.EducationScore)
	assert.Equal(t, lowBand, card.Suggestions)
}

func TestScore_EmptyJobDescriptionSkills(t *testing.T) {
	resume, jd := "python sql", "python sql"
	model := newFakeModel().with(resume, skill("python"), skill("sql"))

	card := score(t, NewScorer(model), resume, jd)

	assert.Equal(t, types.Percent(0), card.SkillsScore)
	assert.Equal(t, types.Percent(100), card.OverallScore)
}

func TestScore_Idempotent(t *testing.T) {
	scorer := NewScorer(nlp.NewEnglish())
	resume := "Senior Python developer since 2016. Built SQL pipelines on AWS. B.S., Stanford University."
	jd := "We want a Python developer with 5+ years of SQL, AWS and Docker. Degree from Stanford University preferred."

	first := score(t, scorer, resume, jd)
	second := score(t, scorer, resume, jd)

	assert.Equal(t, first, second)
}

func TestScore_FacetsSwapChangesScores(t *testing.T) {
	a, b := "short resume", "long job description"
	model := newFakeModel().
		with(a, skill("python")).
		with(b, skill("python"), skill("go"))
	scorer := NewScorer(model)

	forward := score(t, scorer, a, b)
	backward := score(t, scorer, b, a)

	assert.Equal(t, types.Percent(50.0), forward.SkillsScore)
	assert.Equal(t, types.Percent(100.0), backward.SkillsScore)
	assert.Equal(t, forward.OverallScore, backward.OverallScore)
	assert.Equal(t, forward.KeywordsScore, backward.KeywordsScore)
}

func TestScore_EnglishModel(t *testing.T) {
	card := score(t, NewScorer(nlp.NewEnglish()),
		"Python developer. Skills: Python, SQL.",
		"Senior Python developer. Python, SQL and AWS required.")

	require.Len(t, card.Suggestions, 4)
	assert.Equal(t, types.Percent(66.7), card.SkillsScore)
	assert.Greater(t, float64(card.OverallScore), 0.0)
	assert.Greater(t, float64(card.KeywordsScore), 0.0)
}

func TestScore_EnglishEducationUnderSectionHeading(t *testing.T) {
	scorer := NewScorer(nlp.NewEnglish())

	tests := []struct {
		name   string
		resume string
		jd     string
	}{
		{
			name:   "all-caps heading",
			resume: "Jane Doe\nSoftware Engineer\n\nEDUCATION\nStanford University\nB.S. Computer Science, 2015",
			jd:     "We need a Software Engineer. A degree from Stanford University is preferred.",
		},
		{
			name:   "heading and acronym lines",
			resume: "Jane Doe\n\nEducation\nMIT\nUniversity of Michigan\nB.S. 2012",
			jd:     "Graduates of the University of Michigan are encouraged to apply.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := score(t, scorer, tt.resume, tt.jd)

			assert.Equal(t, types.Percent(100.0), card.EducationScore)
		})
	}
}

func TestScore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewScorer(newFakeModel()).Score(ctx, "python developer", "python developer")

	assert.ErrorIs(t, err, context.Canceled)
}
