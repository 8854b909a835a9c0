// Package scoring implements the resume/job-description fit engine: text
// normalization, two-document TF-IDF cosine similarity, entity facet scores,
// and aggregation into a ScoreCard with suggestions.
package scoring

import (
	"strings"

	"github.com/jonathan/resume-fit/internal/nlp"
)

// Normalize lower-cases text, tokenizes it, and keeps the lemmas of tokens
// that are alphabetic, not stop words and not punctuation, joined by single
// spaces in original order. Text with no qualifying tokens yields "".
func Normalize(tokenizer nlp.Tokenizer, text string) string {
	tokens := tokenizer.Tokenize(strings.ToLower(text))

	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok.IsAlpha && !tok.IsStop && !tok.IsPunct {
			kept = append(kept, tok.Lemma)
		}
	}
	return strings.Join(kept, " ")
}
