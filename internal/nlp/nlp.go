// Package nlp defines the natural-language capability the scorer depends on
// (tokenization with per-token flags, and entity recognition) and ships a
// deterministic English implementation plus an optional LLM-backed recognizer.
package nlp

import "context"

// Label classifies a recognized entity.
type Label string

// Entity labels produced by the recognizers in this package.
const (
	LabelSkill Label = "SKILL"
	LabelDate  Label = "DATE"
	LabelOrg   Label = "ORG"
)

// Token is one token of a tokenized text.
type Token struct {
	Surface string
	Lemma   string
	IsStop  bool
	IsPunct bool
	IsAlpha bool
}

// Entity is a span of text tagged with a label.
type Entity struct {
	Text  string `json:"text"`
	Label Label  `json:"label"`
}

// Tokenizer splits text into flagged, lemmatized tokens.
type Tokenizer interface {
	Tokenize(text string) []Token
}

// Recognizer extracts labeled entities from text.
type Recognizer interface {
	Entities(text string) []Entity
}

// ContextRecognizer is a Recognizer whose extraction can be bounded by a
// context, typically because it calls a remote service.
type ContextRecognizer interface {
	Recognizer
	EntitiesContext(ctx context.Context, text string) []Entity
}

// EntitiesContext extracts entities from text with r, passing ctx through
// when r supports it.
func EntitiesContext(ctx context.Context, r Recognizer, text string) []Entity {
	if cr, ok := r.(ContextRecognizer); ok {
		return cr.EntitiesContext(ctx, text)
	}
	return r.Entities(text)
}

// Model is the full capability: tokenization plus entity recognition.
type Model interface {
	Tokenizer
	Recognizer
}

type composite struct {
	Tokenizer
	Recognizer
}

func (c composite) EntitiesContext(ctx context.Context, text string) []Entity {
	return EntitiesContext(ctx, c.Recognizer, text)
}

// Compose builds a Model from a tokenizer and a recognizer.
func Compose(t Tokenizer, r Recognizer) Model {
	return composite{Tokenizer: t, Recognizer: r}
}

// FilterLabel returns the texts of entities carrying the given label, in order.
func FilterLabel(entities []Entity, label Label) []string {
	var texts []string
	for _, e := range entities {
		if e.Label == label {
			texts = append(texts, e.Text)
		}
	}
	return texts
}
