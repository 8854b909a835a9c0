package nlp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-fit/internal/llm"
	"github.com/jonathan/resume-fit/internal/logger"
	"github.com/jonathan/resume-fit/internal/prompts"
)

// LLMRecognizer recognizes entities by asking a language model, falling back
// to another Recognizer when the call fails or returns unusable output.
type LLMRecognizer struct {
	client   llm.Client
	tier     llm.ModelTier
	timeout  time.Duration
	fallback Recognizer
	logger   *zap.Logger
}

// NewLLMRecognizer builds an LLM-backed recognizer. fallback must not be nil.
func NewLLMRecognizer(client llm.Client, tier llm.ModelTier, timeout time.Duration, fallback Recognizer, logger *zap.Logger) *LLMRecognizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLMRecognizer{
		client:   client,
		tier:     tier,
		timeout:  timeout,
		fallback: fallback,
		logger:   logger,
	}
}

type llmEntities struct {
	Entities []Entity `json:"entities"`
}

// Entities returns the model's entities for text, or the fallback's on error.
// The call is bounded by the recognizer's timeout only.
func (r *LLMRecognizer) Entities(text string) []Entity {
	return r.EntitiesContext(context.Background(), text)
}

// EntitiesContext is Entities bounded by ctx as well as the recognizer's
// timeout, whichever ends first.
func (r *LLMRecognizer) EntitiesContext(ctx context.Context, text string) []Entity {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	entities, err := r.extract(ctx, text)
	if err != nil {
		r.logger.Warn("llm entity extraction failed, using rule recognizer", zap.Error(err))
		return r.fallback.Entities(text)
	}
	return entities
}

func (r *LLMRecognizer) extract(ctx context.Context, text string) ([]Entity, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	prompt := prompts.Format(prompts.MustGet("nlp.json", "extract-entities"), map[string]string{
		"Text": text,
	})

	resp, err := r.client.GenerateJSON(ctx, prompt, r.tier)
	if err != nil {
		return nil, err
	}

	var parsed llmEntities
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(resp)), &parsed); err != nil {
		r.logger.Debug("unparseable entity response", zap.String("response", logger.Truncate(resp, 200)))
		return nil, fmt.Errorf("failed to parse entity response: %w", err)
	}

	entities := make([]Entity, 0, len(parsed.Entities))
	for _, e := range parsed.Entities {
		label := Label(strings.ToUpper(strings.TrimSpace(string(e.Label))))
		entityText := strings.TrimSpace(e.Text)
		if entityText == "" {
			continue
		}
		entities = append(entities, Entity{Text: entityText, Label: label})
	}
	return entities, nil
}
