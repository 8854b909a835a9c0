package scoring

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-fit/internal/nlp"
)

// fakeModel splits on whitespace, flags a fixed stop list, and returns
// entities registered per input text.
type fakeModel struct {
	stop     map[string]bool
	entities map[string][]nlp.Entity
}

func newFakeModel() *fakeModel {
	return &fakeModel{
		stop:     map[string]bool{"the": true, "a": true, "and": true, "with": true},
		entities: make(map[string][]nlp.Entity),
	}
}

func (m *fakeModel) Tokenize(text string) []nlp.Token {
	var tokens []nlp.Token
	for _, field := range strings.Fields(text) {
		alpha := strings.IndexFunc(field, func(r rune) bool { return !unicode.IsLetter(r) }) < 0
		punct := strings.IndexFunc(field, func(r rune) bool { return !unicode.IsPunct(r) }) < 0
		tokens = append(tokens, nlp.Token{
			Surface: field,
			Lemma:   strings.TrimSuffix(field, "s"),
			IsStop:  m.stop[field],
			IsPunct: punct,
			IsAlpha: alpha,
		})
	}
	return tokens
}

func (m *fakeModel) Entities(text string) []nlp.Entity {
	return m.entities[text]
}

func (m *fakeModel) with(text string, entities ...nlp.Entity) *fakeModel {
	m.entities[text] = entities
	return m
}

func skill(text string) nlp.Entity { return nlp.Entity{Text: text, Label: nlp.LabelSkill} }
func date(text string) nlp.Entity  { return nlp.Entity{Text: text, Label: nlp.LabelDate} }
func org(text string) nlp.Entity   { return nlp.Entity{Text: text, Label: nlp.LabelOrg} }
