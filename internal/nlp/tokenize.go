package nlp

import (
	"strings"
	"unicode"
)

// tokenize splits text into word runs and single punctuation/symbol tokens.
// A word run is letters and digits, optionally joined by an apostrophe that is
// followed by another letter ("don't", "o'neil").
func tokenize(text string) []string {
	runes := []rune(text)
	var tokens []string

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case isWordRune(r):
			start := i
			for i < len(runes) {
				if isWordRune(runes[i]) {
					i++
					continue
				}
				if isApostrophe(runes[i]) && i+1 < len(runes) && unicode.IsLetter(runes[i+1]) && i > start {
					i++
					continue
				}
				break
			}
			tokens = append(tokens, string(runes[start:i]))
		default:
			tokens = append(tokens, string(r))
			i++
		}
	}

	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func isPunct(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}

// newToken flags and lemmatizes a raw token.
func newToken(surface string) Token {
	lower := strings.ToLower(surface)
	tok := Token{
		Surface: surface,
		Lemma:   lower,
		IsStop:  IsStopWord(lower),
		IsPunct: isPunct(surface),
		IsAlpha: isAlpha(surface),
	}
	if tok.IsAlpha {
		tok.Lemma = Lemmatize(lower)
	}
	return tok
}
