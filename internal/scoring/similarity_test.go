package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerms(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"lowercases", "Python Developer", []string{"python", "developer"}},
		{"drops single runes", "C++ and Go, a b", []string{"and", "go"}},
		{"keeps digits and underscores", "web_dev 2019 k8s", []string{"web_dev", "2019", "k8s"}},
		{"unicode letters", "Café résumé", []string{"café", "résumé"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Terms(tt.text))
		})
	}
}

func TestCosineSimilarity_SelfIsOne(t *testing.T) {
	for _, text := range []string{
		"python developer",
		"go go go kubernetes",
		"Senior Backend Engineer with AWS and SQL experience",
	} {
		assert.InDelta(t, 1.0, CosineSimilarity(text, text), 1e-9, text)
	}
}

func TestCosineSimilarity_DisjointIsZero(t *testing.T) {
	assert.Equal(t, 0.0, CosineSimilarity("python developer", "accountant payroll"))
}

func TestCosineSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"python developer", "python developer senior"},
		{"go go sql", "sql docker aws go"},
		{"alpha beta", "gamma"},
	}
	for _, p := range pairs {
		assert.Equal(t, CosineSimilarity(p[0], p[1]), CosineSimilarity(p[1], p[0]))
	}
}

func TestCosineSimilarity_TwoDocumentIDF(t *testing.T) {
	// Shared terms weigh 1; terms unique to one side weigh 1 + ln 2.
	unique := 1 + math.Log(2)
	want := 2 / (math.Sqrt(2) * math.Sqrt(2+unique*unique))

	got := CosineSimilarity("python developer", "python developer senior")

	assert.InDelta(t, want, got, 1e-12)
	assert.InDelta(t, 0.6410554, got, 1e-6)
}

func TestCosineSimilarity_RawCounts(t *testing.T) {
	// a = (2, 1+ln2), b = (1, 0) over {go, sql}
	unique := 1 + math.Log(2)
	want := 2 / math.Sqrt(4+unique*unique)

	assert.InDelta(t, want, CosineSimilarity("go go sql", "go"), 1e-12)
}

func TestCosineSimilarity_EmptyVocabulary(t *testing.T) {
	assert.Equal(t, 0.0, CosineSimilarity("", ""))
	assert.Equal(t, 0.0, CosineSimilarity("python", ""))
	assert.Equal(t, 0.0, CosineSimilarity("", "python"))
	assert.Equal(t, 0.0, CosineSimilarity("a b c", "! ?"))
}
