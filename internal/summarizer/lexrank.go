package summarizer

import (
	"fmt"
	"strings"

	"github.com/ramenjuniti/lexrankmmr"

	"textanalyzer/internal/nlp"
)

// maxSummaryCharacters bounds the character budget handed to the LexRank
// ranker; selection is driven by the sentence limit, not this cap.
const maxSummaryCharacters = 100000

// LexRank delegates sentence selection to the lexrankmmr graph ranker
// (eigenvector centrality over the sentence similarity graph). The ranker
// consumes newline-separated sentences, so the document is pre-segmented
// with our own tokenizer; that also makes its output match our sentence
// strings when restoring document order.
type LexRank struct {
	tokenizer nlp.Tokenizer
}

// NewLexRank creates the LexRank-backed summarizer.
func NewLexRank(tokenizer nlp.Tokenizer) *LexRank {
	return &LexRank{tokenizer: tokenizer}
}

// Summarize returns up to sentenceCount sentences in document order.
func (l *LexRank) Summarize(input string, sentenceCount int) (string, error) {
	sentences, err := l.tokenizer.Sentences(input)
	if err != nil {
		return "", fmt.Errorf("lexrank summarization: %w", err)
	}
	if len(sentences) == 0 {
		return strings.TrimSpace(input), nil
	}
	if len(sentences) <= sentenceCount {
		return strings.Join(sentences, " "), nil
	}

	ranker, err := lexrankmmr.New(
		lexrankmmr.MaxLines(sentenceCount),
		lexrankmmr.MaxCharacters(maxSummaryCharacters),
	)
	if err != nil {
		return "", fmt.Errorf("initialize lexrank: %w", err)
	}

	if err := ranker.Summarize(strings.Join(sentences, "\n")); err != nil {
		return "", fmt.Errorf("lexrank summarization: %w", err)
	}

	selected := make([]string, 0, len(ranker.LineLimitedSummary))
	for _, line := range ranker.LineLimitedSummary {
		selected = append(selected, line.Sentence)
	}

	return joinInDocumentOrder(sentences, selected), nil
}
