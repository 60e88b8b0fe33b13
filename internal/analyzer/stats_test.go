package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"textanalyzer/internal/analyzer"
)

func TestStats(t *testing.T) {
	words := []string{"The", "quick", "fox", "jumps"}

	got := analyzer.Stats(words, 2)

	assert.Equal(t, 4, got.WordCount)
	assert.Equal(t, 2, got.SentenceCount)
	assert.Equal(t, 16, got.CharacterCount)
	assert.Equal(t, 2.0, got.AvgSentenceLength)
	assert.Equal(t, 4.0, got.AvgWordLength)
}

func TestStatsRoundsAverages(t *testing.T) {
	// 5 words over 3 sentences: 5/3 rounds to 1.7.
	words := []string{"a", "bb", "ccc", "dd", "e"}

	got := analyzer.Stats(words, 3)

	assert.Equal(t, 1.7, got.AvgSentenceLength)
	assert.Equal(t, 1.8, got.AvgWordLength)
}

func TestStatsEmptyInput(t *testing.T) {
	got := analyzer.Stats(nil, 0)

	assert.Equal(t, 0, got.WordCount)
	assert.Equal(t, 0.0, got.AvgSentenceLength)
	assert.Equal(t, 0.0, got.AvgWordLength)
	assert.Equal(t, 0, got.CharacterCount)
}
