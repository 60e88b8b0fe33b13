// Package analyzer implements the text analysis heuristics: readability
// scoring, grammatical classification, passive-voice detection, tense
// classification, and word-frequency ranking. All functions are pure and
// total over well-formed input; only the tokenizer can fail.
package analyzer

import (
	"fmt"

	"textanalyzer/internal/domain/entity"
	"textanalyzer/internal/nlp"
)

// Options tunes the heuristic constants of the analyzers. The lookahead
// windows are heuristics, not derived invariants, so they are kept
// configurable.
type Options struct {
	// PassiveLookahead is the number of tokens scanned after a copula
	// for a past participle.
	PassiveLookahead int

	// FutureLookahead is the number of tokens scanned after "will" or
	// "shall" for the future-tense verb.
	FutureLookahead int

	// TopWords is the number of entries in the frequency ranking.
	TopWords int
}

// DefaultOptions returns the standard heuristic constants.
func DefaultOptions() Options {
	return Options{
		PassiveLookahead: 3,
		FutureLookahead:  1,
		TopWords:         10,
	}
}

// Processor holds the shared tokenization of one document. It performs
// exactly one tokenization and tagging pass at construction and fans the
// result out to every analysis facet; only passive-voice detection
// re-tokenizes, at sentence granularity, because its lookahead window must
// stay within sentence boundaries.
type Processor struct {
	tokenizer nlp.Tokenizer
	opts      Options

	sentences  []string
	tagged     []nlp.TaggedWord
	alphaWords []string
}

// NewProcessor tokenizes and tags text once and prepares all analysis
// facets. The returned processor is immutable and safe for concurrent
// reads.
func NewProcessor(tokenizer nlp.Tokenizer, text string, opts Options) (*Processor, error) {
	sentences, err := tokenizer.Sentences(text)
	if err != nil {
		return nil, fmt.Errorf("tokenize sentences: %w", err)
	}

	tagged, err := tokenizer.TaggedWords(text)
	if err != nil {
		return nil, fmt.Errorf("tokenize words: %w", err)
	}

	var alphaWords []string
	for _, tw := range tagged {
		if nlp.IsAlphabetic(tw.Text) {
			alphaWords = append(alphaWords, tw.Text)
		}
	}

	return &Processor{
		tokenizer:  tokenizer,
		opts:       opts,
		sentences:  sentences,
		tagged:     tagged,
		alphaWords: alphaWords,
	}, nil
}

// Stats returns basic text statistics.
func (p *Processor) Stats() entity.TextStats {
	return Stats(p.alphaWords, len(p.sentences))
}

// Readability returns the Flesch-Kincaid readability score.
func (p *Processor) Readability() entity.ReadabilityScore {
	return Readability(p.alphaWords, len(p.sentences))
}

// PartsOfSpeech returns the grammatical category buckets.
func (p *Processor) PartsOfSpeech() entity.PartsOfSpeech {
	return CategorizeWords(p.tagged)
}

// PassiveSentences returns the passive-voice sentences in document order.
func (p *Processor) PassiveSentences() ([]string, error) {
	return DetectPassive(p.sentences, p.tokenizer, p.opts.PassiveLookahead)
}

// Tenses returns the per-tense word sets.
func (p *Processor) Tenses() entity.TenseAnalysis {
	return ClassifyTenses(p.tagged, p.opts.FutureLookahead)
}

// WordFrequency returns the most frequent content words.
func (p *Processor) WordFrequency() []entity.WordFrequency {
	return TopWords(p.alphaWords, p.opts.TopWords)
}

// Analyze assembles the combined result of all facets. Any facet error
// invalidates the whole result; there is no partial-success mode.
func (p *Processor) Analyze() (*entity.AnalysisResult, error) {
	passive, err := p.PassiveSentences()
	if err != nil {
		return nil, fmt.Errorf("passive detection: %w", err)
	}

	return &entity.AnalysisResult{
		TextStats:        p.Stats(),
		Readability:      p.Readability(),
		PartsOfSpeech:    p.PartsOfSpeech(),
		PassiveSentences: passive,
		TenseAnalysis:    p.Tenses(),
		WordFrequency:    p.WordFrequency(),
	}, nil
}
