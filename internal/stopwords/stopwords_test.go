package stopwords_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"textanalyzer/internal/stopwords"
)

func TestContains(t *testing.T) {
	tests := []struct {
		name     string
		word     string
		expected bool
	}{
		{name: "article", word: "the", expected: true},
		{name: "copula", word: "is", expected: true},
		{name: "contraction", word: "don't", expected: true},
		{name: "content word", word: "language", expected: false},
		{name: "upper case not normalized by the set", word: "The", expected: false},
		{name: "empty string", word: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stopwords.Contains(tt.word))
		})
	}
}

func TestWordsReturnsCopy(t *testing.T) {
	first := stopwords.Words()
	first[0] = "mutated"

	second := stopwords.Words()
	assert.Equal(t, "i", second[0])
	assert.True(t, stopwords.Contains("i"))
}
