package nlp

import (
	"fmt"
	"sync"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// lemmatizer loads the English lemma dictionary on first use. The dictionary
// is embedded, so a load failure is a build defect.
var lemmatizer = sync.OnceValue(func() *golem.Lemmatizer {
	l, err := golem.New(en.New())
	if err != nil {
		panic(fmt.Sprintf("failed to load english lemma dictionary: %v", err))
	}
	return l
})

// Lemmatize returns the dictionary base form of a lower-cased English word.
// Words missing from the dictionary (most product and tool names) are
// returned unchanged.
func Lemmatize(word string) string {
	if word == "" {
		return word
	}
	return lemmatizer().Lemma(word)
}
