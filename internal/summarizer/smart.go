package summarizer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"textanalyzer/internal/nlp"
	"textanalyzer/internal/stopwords"
	"textanalyzer/internal/utils/text"
)

// defaultKeyPhraseCount is the number of high-frequency terms used as key
// phrases when scoring sentences.
const defaultKeyPhraseCount = 15

// discourseMarkers signal concluding or consequential sentences.
var discourseMarkers = map[string]struct{}{
	"therefore": {}, "thus": {}, "hence": {}, "consequently": {},
	"conclusion": {}, "overall": {}, "finally": {},
}

// significanceMarkers signal sentences the author flagged as central.
var significanceMarkers = map[string]struct{}{
	"important": {}, "significant": {}, "key": {}, "main": {},
	"primary": {}, "essential": {}, "critical": {},
}

var (
	whitespaceRun    = regexp.MustCompile(`\s+`)
	spaceBeforePunct = regexp.MustCompile(`\s+([.,!?;:])`)
)

// Smart is the heuristic extractive summarizer. It scores each sentence by
// key-phrase density, position, and marker-word presence, then returns the
// top-scored sentences restored to document order. Scoring is fully
// deterministic: ties resolve to the earlier sentence.
type Smart struct {
	tokenizer      nlp.Tokenizer
	keyPhraseCount int
}

// NewSmart creates the heuristic summarizer. A non-positive keyPhraseCount
// selects the default of 15.
func NewSmart(tokenizer nlp.Tokenizer, keyPhraseCount int) *Smart {
	if keyPhraseCount <= 0 {
		keyPhraseCount = defaultKeyPhraseCount
	}
	return &Smart{tokenizer: tokenizer, keyPhraseCount: keyPhraseCount}
}

type scoredSentence struct {
	index    int
	sentence string
	score    int
}

// Summarize selects up to sentenceCount sentences. Documents at or below
// the target length are returned unchanged.
func (s *Smart) Summarize(input string, sentenceCount int) (string, error) {
	sentences, err := s.tokenizer.Sentences(input)
	if err != nil {
		return "", fmt.Errorf("smart summarization: %w", err)
	}
	if len(sentences) <= sentenceCount {
		return input, nil
	}

	keyPhrases, err := s.keyPhrases(input)
	if err != nil {
		return "", fmt.Errorf("smart summarization: %w", err)
	}

	scored := make([]scoredSentence, len(sentences))
	for i, sentence := range sentences {
		words := make(map[string]struct{})
		for _, w := range strings.Fields(strings.ToLower(sentence)) {
			words[w] = struct{}{}
		}

		score := 0
		for kp := range keyPhrases {
			if _, ok := words[kp]; ok {
				score += 2
			}
		}
		switch i {
		case 0:
			score += 3
		case len(sentences) - 1:
			score++
		}
		if containsAny(words, discourseMarkers) {
			score += 2
		}
		if containsAny(words, significanceMarkers) {
			score++
		}

		scored[i] = scoredSentence{index: i, sentence: sentence, score: score}
	}

	// Stable sort by score keeps earlier sentences ahead on ties, which
	// makes the selection reproducible.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	selected := scored[:sentenceCount]

	// Summaries must read in document order, never ranked order.
	sort.Slice(selected, func(i, j int) bool {
		return selected[i].index < selected[j].index
	})

	parts := make([]string, len(selected))
	for i, sc := range selected {
		parts[i] = sc.sentence
	}
	return cleanSummary(strings.Join(parts, " ")), nil
}

// keyPhrases extracts the most frequent alphanumeric, non-stopword terms
// of length > 2. Ties at the cutoff keep first-encountered order.
func (s *Smart) keyPhrases(input string) (map[string]struct{}, error) {
	tokens, err := s.tokenizer.TaggedWords(input)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	var order []string
	for _, tok := range tokens {
		if !nlp.IsAlphanumeric(tok.Text) {
			continue
		}
		lower := strings.ToLower(tok.Text)
		if stopwords.Contains(lower) || text.CountRunes(tok.Text) <= 2 {
			continue
		}
		if _, seen := counts[lower]; !seen {
			order = append(order, lower)
		}
		counts[lower]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > s.keyPhraseCount {
		order = order[:s.keyPhraseCount]
	}

	phrases := make(map[string]struct{}, len(order))
	for _, w := range order {
		phrases[w] = struct{}{}
	}
	return phrases, nil
}

func containsAny(words, markers map[string]struct{}) bool {
	for m := range markers {
		if _, ok := words[m]; ok {
			return true
		}
	}
	return false
}

// cleanSummary collapses whitespace runs, removes whitespace before
// punctuation, and guarantees terminal punctuation.
func cleanSummary(summary string) string {
	summary = whitespaceRun.ReplaceAllString(summary, " ")
	summary = spaceBeforePunct.ReplaceAllString(summary, "$1")
	summary = strings.TrimSpace(summary)

	if summary != "" && !strings.HasSuffix(summary, ".") &&
		!strings.HasSuffix(summary, "!") && !strings.HasSuffix(summary, "?") {
		summary += "."
	}
	return summary
}
