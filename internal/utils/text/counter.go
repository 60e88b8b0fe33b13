// Package text provides utilities for text measurement shared across the
// analysis and summarization features.
package text

import "strings"

// CountRunes counts the number of Unicode characters (runes) in the given
// text. Counting runes instead of bytes keeps length checks correct for
// multi-byte characters such as accented letters and emoji.
//
// Examples:
//
//	CountRunes("hello")    // returns 5
//	CountRunes("naïve")    // returns 5
//	CountRunes("")         // returns 0
func CountRunes(text string) int {
	return len([]rune(text))
}

// CountWords counts whitespace-separated words. This is the counting rule
// used for summary reduction percentages: it intentionally includes
// numbers and punctuation-attached tokens, unlike the alphabetic-only word
// count used in text statistics.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// NormalizeWhitespace collapses all whitespace runs to single spaces and
// trims leading and trailing whitespace.
func NormalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
