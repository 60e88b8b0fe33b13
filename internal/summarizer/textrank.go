package summarizer

import (
	"fmt"
	"strings"

	textrank "github.com/DavidBelicza/TextRank/v2"

	"textanalyzer/internal/nlp"
)

// TextRank delegates sentence selection to the TextRank library's
// relation-weight ranking (PageRank over the word co-occurrence graph).
// The library returns sentences in importance order; the adapter restores
// document order afterwards.
type TextRank struct {
	tokenizer nlp.Tokenizer
}

// NewTextRank creates the TextRank-backed summarizer.
func NewTextRank(tokenizer nlp.Tokenizer) *TextRank {
	return &TextRank{tokenizer: tokenizer}
}

// Summarize returns up to sentenceCount sentences in document order.
func (t *TextRank) Summarize(input string, sentenceCount int) (string, error) {
	sentences, err := t.tokenizer.Sentences(input)
	if err != nil {
		return "", fmt.Errorf("textrank summarization: %w", err)
	}
	if len(sentences) == 0 {
		return strings.TrimSpace(input), nil
	}
	if len(sentences) <= sentenceCount {
		return strings.Join(sentences, " "), nil
	}

	tr := textrank.NewTextRank()
	tr.Populate(input, textrank.NewDefaultLanguage(), textrank.NewDefaultRule())
	tr.Ranking(textrank.NewDefaultAlgorithm())

	ranked := textrank.FindSentencesByRelationWeight(tr, sentenceCount)
	selected := make([]string, 0, len(ranked))
	for _, s := range ranked {
		selected = append(selected, s.Value)
	}

	return joinInDocumentOrder(sentences, selected), nil
}
