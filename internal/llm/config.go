// Package llm wraps the Gemini API behind a small client interface used by
// the LLM-backed entity recognizer.
package llm

import "fmt"

// ModelTier represents the capability level of a model.
type ModelTier string

const (
	// TierLite is for extraction and classification.
	TierLite ModelTier = "lite"
	// TierStandard is for structured output that needs some reasoning.
	TierStandard ModelTier = "standard"
)

// Config maps model tiers to concrete Gemini model names.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model mapping.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// GetModel returns the model name for a tier, falling back to the standard
// then the lite model. It returns "" when nothing is configured.
func (c *Config) GetModel(tier ModelTier) string {
	for _, t := range []ModelTier{tier, TierStandard, TierLite} {
		if model, ok := c.Models[t]; ok && model != "" {
			return model
		}
	}
	return ""
}

// ParseTier converts a configuration string into a ModelTier.
func ParseTier(s string) (ModelTier, error) {
	switch ModelTier(s) {
	case TierLite, TierStandard:
		return ModelTier(s), nil
	case "":
		return TierLite, nil
	default:
		return "", fmt.Errorf("unknown model tier %q", s)
	}
}
