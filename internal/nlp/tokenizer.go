// Package nlp defines the tokenization interface consumed by the analysis
// core, along with small token classification helpers shared by the
// analyzers and summarizers.
package nlp

import "unicode"

// TaggedWord is a single token of the source text paired with its
// part-of-speech tag. Tags follow the Penn Treebank tagset; the core only
// inspects the prefixes documented in the analyzer package.
type TaggedWord struct {
	Text string
	Tag  string
}

// Tokenizer supplies sentence segmentation and POS-tagged word tokens.
// This abstraction allows switching the underlying NLP backend without
// changing the analysis logic. Implementations must preserve original text
// order: many heuristics rely on positional adjacency of tokens.
type Tokenizer interface {
	// Sentences splits raw text into an ordered sequence of sentences.
	Sentences(text string) ([]string, error)

	// TaggedWords splits text into ordered word tokens with POS tags,
	// preserving punctuation as separate tokens.
	TaggedWords(text string) ([]TaggedWord, error)
}

// IsAlphabetic reports whether s is non-empty and consists entirely of
// letters. Tokens that are punctuation, numbers, or symbols are excluded
// from word counts, syllable totals, and readability scoring.
func IsAlphabetic(s string) bool {
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

// IsAlphanumeric reports whether s is non-empty and consists entirely of
// letters and digits. Used for key-phrase extraction, which keeps numeric
// terms that the alphabetic-only filters drop.
func IsAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
