// Package analysis validates an analysis request, decodes its documents and
// scores the resume against the job description.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/resume-fit/internal/ingestion"
	"github.com/jonathan/resume-fit/internal/types"
)

// Scorer produces a ScoreCard from two decoded texts.
type Scorer interface {
	Score(ctx context.Context, resume, jd string) (types.ScoreCard, error)
}

// Service runs analyses. It keeps no per-request state.
type Service struct {
	decoder ingestion.Decoder
	scorer  Scorer
	logger  *zap.Logger
}

// NewService creates a Service.
func NewService(decoder ingestion.Decoder, scorer Scorer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{decoder: decoder, scorer: scorer, logger: logger}
}

// Analyze scores req's resume against its job description. A job description
// file takes precedence over job description text. Errors are
// *InputMissingError, *ingestion.UnsupportedFileTypeError or wrap
// *ingestion.DecodeError.
func (s *Service) Analyze(ctx context.Context, req *types.AnalysisRequest) (*types.ScoreCard, error) {
	start := time.Now()

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	resumeFormat, err := ingestion.CheckFilename(req.Resume.Filename)
	if err != nil {
		return nil, err
	}
	var jdFormat ingestion.Format
	if req.JobDescriptionFile != nil {
		if jdFormat, err = ingestion.CheckFilename(req.JobDescriptionFile.Filename); err != nil {
			return nil, err
		}
	}

	resumeText, err := s.decoder.Decode(ctx, req.Resume.Data, resumeFormat)
	if err != nil {
		return nil, fmt.Errorf("resume %q: %w", req.Resume.Filename, err)
	}

	var jdText string
	if req.JobDescriptionFile != nil {
		jdText, err = s.decoder.Decode(ctx, req.JobDescriptionFile.Data, jdFormat)
		if err != nil {
			return nil, fmt.Errorf("job description %q: %w", req.JobDescriptionFile.Filename, err)
		}
	} else {
		jdText = ingestion.CleanText(req.JobDescriptionText)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	card, err := s.scorer.Score(ctx, resumeText, jdText)
	if err != nil {
		return nil, fmt.Errorf("scoring: %w", err)
	}

	s.logger.Info("analysis complete",
		zap.String("resume", req.Resume.Filename),
		zap.Bool("jd_file", req.JobDescriptionFile != nil),
		zap.Int("resume_chars", len(resumeText)),
		zap.Int("jd_chars", len(jdText)),
		zap.Float64("overall_score", float64(card.OverallScore)),
		zap.Duration("duration", time.Since(start)),
	)
	return &card, nil
}

func validateRequest(req *types.AnalysisRequest) error {
	if req == nil {
		return &InputMissingError{Field: FieldResume}
	}
	if err := req.Validate(); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return &InputMissingError{Field: fieldFor(fieldErrs[0].StructNamespace())}
		}
		return &InputMissingError{Field: FieldResume, Message: err.Error()}
	}
	if req.JobDescriptionFile == nil && strings.TrimSpace(req.JobDescriptionText) == "" {
		return &InputMissingError{
			Field:   FieldJobDescription,
			Message: "provide a job description file or " + FieldJobText,
		}
	}
	return nil
}

func fieldFor(namespace string) string {
	if strings.Contains(namespace, "JobDescriptionFile") {
		return FieldJobDescription
	}
	return FieldResume
}
