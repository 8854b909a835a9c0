package main

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/resume-fit/internal/analysis"
	"github.com/jonathan/resume-fit/internal/config"
	"github.com/jonathan/resume-fit/internal/ingestion"
	"github.com/jonathan/resume-fit/internal/llm"
	"github.com/jonathan/resume-fit/internal/logger"
	"github.com/jonathan/resume-fit/internal/nlp"
	"github.com/jonathan/resume-fit/internal/scoring"
)

// app is the wired analysis stack for one command invocation.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *analysis.Service
	closers []func() error
}

// newApp loads configuration and builds the logger, NLP model and analysis
// service. Callers must Close the result.
func (o *rootOptions) newApp(ctx context.Context) (*app, error) {
	cfg, err := o.loader.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	a := &app{cfg: cfg, logger: log}

	model, err := a.buildModel(ctx)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	decoder := ingestion.NewFileDecoder(cfg.UploadDir, cfg.AntiwordPath, log)
	a.service = analysis.NewService(decoder, scoring.NewScorer(model), log)
	return a, nil
}

// buildModel returns the built-in English model, with entity recognition
// delegated to Gemini when that provider is configured.
func (a *app) buildModel(ctx context.Context) (nlp.Model, error) {
	var extra []string
	if a.cfg.NLP.SkillsFile != "" {
		skills, err := nlp.ReadSkillsFile(a.cfg.NLP.SkillsFile)
		if err != nil {
			return nil, err
		}
		extra = skills
		a.logger.Debug("loaded extra skills", zap.Int("count", len(skills)))
	}
	english := nlp.NewEnglish(extra...)

	if a.cfg.NLP.Provider != config.ProviderGemini {
		return english, nil
	}

	tier, err := llm.ParseTier(a.cfg.NLP.Gemini.Tier)
	if err != nil {
		return nil, err
	}
	client, err := llm.NewGeminiClient(ctx, nil, a.cfg.NLP.Gemini.APIKey)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, client.Close)

	a.logger.Info("using gemini entity recognizer", zap.String("tier", string(tier)))
	recognizer := nlp.NewLLMRecognizer(client, tier, a.cfg.NLP.Gemini.Timeout, english, a.logger)
	return nlp.Compose(english, recognizer), nil
}

// Close releases the LLM client and flushes the logger.
func (a *app) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	_ = a.logger.Sync()
	return errors.Join(errs...)
}
