package analyzer

import (
	"textanalyzer/internal/domain/entity"
	"textanalyzer/internal/utils/text"
)

// Stats computes basic corpus statistics over the alphabetic words of the
// text. Character count sums the rune lengths of alphabetic words only.
// Averages are 0 when their denominator is 0.
func Stats(words []string, sentenceCount int) entity.TextStats {
	wordCount := len(words)

	charCount := 0
	for _, w := range words {
		charCount += text.CountRunes(w)
	}

	stats := entity.TextStats{
		WordCount:      wordCount,
		SentenceCount:  sentenceCount,
		CharacterCount: charCount,
	}
	if sentenceCount > 0 {
		stats.AvgSentenceLength = roundTo1(float64(wordCount) / float64(sentenceCount))
	}
	if wordCount > 0 {
		stats.AvgWordLength = roundTo1(float64(charCount) / float64(wordCount))
	}
	return stats
}
