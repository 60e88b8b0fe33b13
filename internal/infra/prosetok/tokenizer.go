// Package prosetok adapts the prose NLP library to the nlp.Tokenizer
// interface. It provides English sentence segmentation, word tokenization,
// and Penn Treebank POS tagging backed by prose's bundled models.
package prosetok

import (
	"fmt"

	"github.com/jdkato/prose/v2"

	"textanalyzer/internal/nlp"
)

// Tokenizer is a stateless nlp.Tokenizer backed by prose. It is safe for
// concurrent use: each call builds an independent document and the prose
// models are read-only after load.
type Tokenizer struct{}

// New creates a prose-backed tokenizer.
func New() *Tokenizer {
	return &Tokenizer{}
}

// Sentences splits text into ordered sentences using prose's segmenter.
// Named-entity extraction and tagging are disabled for this pass.
func (t *Tokenizer) Sentences(text string) ([]string, error) {
	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithTagging(false))
	if err != nil {
		return nil, fmt.Errorf("sentence segmentation failed: %w", err)
	}

	sentences := doc.Sentences()
	out := make([]string, len(sentences))
	for i, s := range sentences {
		out[i] = s.Text
	}
	return out, nil
}

// TaggedWords tokenizes text and tags each token, preserving punctuation
// tokens and original order. Sentence segmentation is skipped; tagging in
// prose operates on the flat token stream.
func (t *Tokenizer) TaggedWords(text string) ([]nlp.TaggedWord, error) {
	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("tokenization failed: %w", err)
	}

	tokens := doc.Tokens()
	out := make([]nlp.TaggedWord, len(tokens))
	for i, tok := range tokens {
		out[i] = nlp.TaggedWord{Text: tok.Text, Tag: tok.Tag}
	}
	return out, nil
}
