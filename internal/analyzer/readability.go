package analyzer

import (
	"math"
	"strings"

	"textanalyzer/internal/domain/entity"
)

// readingLevel maps a grade ceiling to its label and description. The
// table is scanned in ascending threshold order; the last entry catches
// everything above college level.
type readingLevel struct {
	threshold   float64
	level       string
	description string
}

var readingLevels = []readingLevel{
	{5, "Elementary", "Very easy to read. Easily understood by 5th graders."},
	{8, "Middle School", "Easy to read. Conversational English for consumers."},
	{12, "High School", "Fairly difficult to read. Best understood by high schoolers."},
	{16, "College", "Difficult to read. Best understood by college graduates."},
	{math.Inf(1), "Graduate", "Very difficult to read. Best understood by university graduates."},
}

// Readability computes the Flesch-Kincaid grade for the given alphabetic
// words and sentence count, mapping the grade to a reading level.
// Zero words or zero sentences yields grade 0 and level "Unknown" rather
// than dividing by zero.
func Readability(words []string, sentenceCount int) entity.ReadabilityScore {
	wordCount := len(words)
	if wordCount == 0 || sentenceCount == 0 {
		return entity.ReadabilityScore{
			FleschKincaidGrade: 0,
			ReadingLevel:       "Unknown",
			Description:        "Not enough text to analyze",
		}
	}

	syllableCount := 0
	for _, w := range words {
		syllableCount += CountSyllables(w)
	}

	grade := 0.39*(float64(wordCount)/float64(sentenceCount)) +
		11.8*(float64(syllableCount)/float64(wordCount)) - 15.59
	grade = roundTo1(math.Max(0, grade))

	for _, rl := range readingLevels {
		if grade <= rl.threshold {
			return entity.ReadabilityScore{
				FleschKincaidGrade: grade,
				ReadingLevel:       rl.level,
				Description:        rl.description,
			}
		}
	}
	// Unreachable: the last threshold is +Inf.
	last := readingLevels[len(readingLevels)-1]
	return entity.ReadabilityScore{
		FleschKincaidGrade: grade,
		ReadingLevel:       last.level,
		Description:        last.description,
	}
}

// CountSyllables estimates the syllable count of a word by counting vowel
// group starts (y counts as a vowel). A trailing silent "e" is discounted
// when more than one group was found. The result is never below 1.
func CountSyllables(word string) int {
	word = strings.ToLower(word)

	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := isVowel(r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}

	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// roundTo1 rounds to one decimal place, half away from zero.
func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
