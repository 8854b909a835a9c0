package nlp

import (
	_ "embed"
	"strings"
)

//go:embed stopwords.txt
var stopWordsText string

var stopWords = func() map[string]struct{} {
	words := strings.Fields(stopWordsText)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}()

// IsStopWord reports whether the lower-cased word is an English stop word.
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}
