package scoring

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-fit/internal/nlp"
	"github.com/jonathan/resume-fit/internal/types"
)

// Scorer scores a resume against a job description with an injected NLP model.
// A Scorer holds no per-request state and is safe for concurrent use as long
// as its model is.
type Scorer struct {
	model nlp.Model
}

// NewScorer creates a Scorer backed by model.
func NewScorer(model nlp.Model) *Scorer {
	return &Scorer{model: model}
}

// Score computes the full ScoreCard for one resume/job-description pair.
// Empty texts score 0 on every metric. The only error is ctx's, when it ends
// before scoring finishes; ctx also bounds context-aware recognizers.
func (s *Scorer) Score(ctx context.Context, resume, jd string) (types.ScoreCard, error) {
	var (
		overall, keywords          float64
		resumeEntities, jdEntities []nlp.Entity
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		overall = CosineSimilarity(Normalize(s.model, resume), Normalize(s.model, jd))
		return gctx.Err()
	})
	g.Go(func() error {
		keywords = CosineSimilarity(resume, jd)
		return gctx.Err()
	})
	g.Go(func() error {
		resumeEntities = nlp.EntitiesContext(gctx, s.model, resume)
		return gctx.Err()
	})
	g.Go(func() error {
		jdEntities = nlp.EntitiesContext(gctx, s.model, jd)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return types.ScoreCard{}, err
	}

	return Aggregate(
		overall,
		SkillsScore(resumeEntities, jdEntities),
		ExperienceScore(resumeEntities, jdEntities),
		EducationScore(resumeEntities, jdEntities),
		keywords,
	), nil
}
