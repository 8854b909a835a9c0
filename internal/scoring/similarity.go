package scoring

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// Terms extracts vectorizer terms from text: lower-cased maximal runs of
// letters, digits and underscores that are at least two runes long.
func Terms(text string) []string {
	var terms []string
	for _, field := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isTermRune(r)
	}) {
		if len([]rune(field)) >= 2 {
			terms = append(terms, field)
		}
	}
	return terms
}

func isTermRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// CosineSimilarity builds a TF-IDF vector space whose corpus is exactly the
// two input texts and returns the cosine similarity of their vectors.
//
// tf is the raw term count and idf(t) = ln(2/df(t)) + 1, so a term shared by
// both texts weighs 1 and a term unique to one text weighs 1 + ln 2. When
// either text has no terms the similarity is 0.
func CosineSimilarity(a, b string) float64 {
	countsA := termCounts(Terms(a))
	countsB := termCounts(Terms(b))
	if len(countsA) == 0 || len(countsB) == 0 {
		return 0
	}

	vocabulary := make([]string, 0, len(countsA)+len(countsB))
	for term := range countsA {
		vocabulary = append(vocabulary, term)
	}
	for term := range countsB {
		if _, ok := countsA[term]; !ok {
			vocabulary = append(vocabulary, term)
		}
	}
	sort.Strings(vocabulary)

	vecA := make([]float64, len(vocabulary))
	vecB := make([]float64, len(vocabulary))
	for i, term := range vocabulary {
		idf := inverseDocumentFrequency(term, countsA, countsB)
		vecA[i] = float64(countsA[term]) * idf
		vecB[i] = float64(countsB[term]) * idf
	}

	normA, normB := l2Norm(vecA), l2Norm(vecB)
	if normA == 0 || normB == 0 {
		return 0
	}

	dot := 0.0
	for i := range vecA {
		dot += (vecA[i] / normA) * (vecB[i] / normB)
	}
	return math.Max(0, math.Min(1, dot))
}

func termCounts(terms []string) map[string]int {
	counts := make(map[string]int, len(terms))
	for _, t := range terms {
		counts[t]++
	}
	return counts
}

// inverseDocumentFrequency weighs term against the corpus {a, b}.
func inverseDocumentFrequency(term string, a, b map[string]int) float64 {
	const corpusSize = 2.0
	df := 0.0
	if a[term] > 0 {
		df++
	}
	if b[term] > 0 {
		df++
	}
	return math.Log(corpusSize/df) + 1
}

func l2Norm(v []float64) float64 {
	sum := 0.0
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}
