package nlp

import (
	"fmt"
	"os"
	"strings"
)

// English is the built-in deterministic English model: a rule tokenizer with
// stop-word, punctuation and alphabetic flags, a dictionary lemmatizer, and a
// RuleRecognizer for entities. It holds no mutable state and is safe for
// concurrent use.
type English struct {
	*RuleRecognizer
}

// NewEnglish builds the English model. Extra skills extend the built-in
// SKILL gazetteer.
func NewEnglish(extraSkills ...string) *English {
	return &English{RuleRecognizer: NewRuleRecognizer(extraSkills...)}
}

// Tokenize splits text into flagged, lemmatized tokens in original order.
func (e *English) Tokenize(text string) []Token {
	raw := tokenize(text)
	tokens := make([]Token, 0, len(raw))
	for _, surface := range raw {
		tokens = append(tokens, newToken(surface))
	}
	return tokens
}

// ReadSkillsFile reads an extra skill gazetteer: one skill per line, blank
// lines and lines starting with '#' ignored.
func ReadSkillsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skills file: %w", err)
	}
	var skills []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		skills = append(skills, line)
	}
	return skills, nil
}
