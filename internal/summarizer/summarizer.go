// Package summarizer implements extractive summarization. The "smart"
// method scores sentences with transparent heuristics; the remaining
// methods delegate sentence selection to external ranking libraries and
// normalize their output back to document order.
package summarizer

import (
	"strings"

	"textanalyzer/internal/nlp"
)

// Supported summarization methods.
const (
	MethodSmart    = "smart"
	MethodLSA      = "lsa"
	MethodLexRank  = "lexrank"
	MethodTextRank = "textrank"
)

// Summarizer produces an extractive summary of at most sentenceCount
// sentences. Implementations must emit selected sentences in original
// document order, never ranked order.
type Summarizer interface {
	Summarize(text string, sentenceCount int) (string, error)
}

// ForMethod returns the summarizer registered under the given method name.
// The second return value is false for unknown methods; mapping that to an
// error is the caller's concern.
func ForMethod(method string, tokenizer nlp.Tokenizer, keyPhraseCount int) (Summarizer, bool) {
	switch method {
	case MethodSmart:
		return NewSmart(tokenizer, keyPhraseCount), true
	case MethodLSA:
		return NewLSA(tokenizer), true
	case MethodLexRank:
		return NewLexRank(tokenizer), true
	case MethodTextRank:
		return NewTextRank(tokenizer), true
	}
	return nil, false
}

// Methods lists the supported method names in a stable order.
func Methods() []string {
	return []string{MethodSmart, MethodLSA, MethodLexRank, MethodTextRank}
}

// joinInDocumentOrder keeps the original sentences whose text matches one
// of the library-selected sentences, joined in document order. If nothing
// matches (the library rewrote or re-segmented its input), the selection
// is joined in the order the library returned it.
func joinInDocumentOrder(original, selected []string) string {
	chosen := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		chosen[strings.TrimSpace(s)] = struct{}{}
	}

	var ordered []string
	for _, s := range original {
		if _, ok := chosen[strings.TrimSpace(s)]; ok {
			ordered = append(ordered, s)
		}
	}

	if len(ordered) == 0 {
		return strings.Join(selected, " ")
	}
	return strings.Join(ordered, " ")
}
