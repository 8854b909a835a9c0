package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLemmatize(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"skills", "skill"},
		{"developers", "developer"},
		{"technologies", "technology"},
		{"caches", "cache"},
		{"boxes", "box"},
		{"managed", "manage"},
		{"applied", "apply"},
		{"was", "be"},
		{"went", "go"},
		{"children", "child"},
		{"python", "python"},
		{"kubernetes", "kubernetes"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, Lemmatize(tt.word))
		})
	}
}

func TestLemmatize_Deterministic(t *testing.T) {
	for _, word := range []string{"leaves", "data", "building", "running"} {
		assert.Equal(t, Lemmatize(word), Lemmatize(word), word)
	}
}
