package summarizer

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
	"gonum.org/v1/gonum/mat"

	"textanalyzer/internal/nlp"
	"textanalyzer/internal/stopwords"
)

// LSA is the latent-semantic summarizer: it builds a stemmed term-sentence
// frequency matrix, factorizes it with a thin SVD, and scores each
// sentence by its weighted length in concept space (the Steinberger-Jezek
// refinement of LSA sentence selection). Terms are Snowball-stemmed and
// stopword-filtered before counting.
type LSA struct {
	tokenizer nlp.Tokenizer
}

// NewLSA creates the LSA-backed summarizer.
func NewLSA(tokenizer nlp.Tokenizer) *LSA {
	return &LSA{tokenizer: tokenizer}
}

// Summarize returns up to sentenceCount sentences in document order.
func (l *LSA) Summarize(input string, sentenceCount int) (string, error) {
	sentences, err := l.tokenizer.Sentences(input)
	if err != nil {
		return "", fmt.Errorf("lsa summarization: %w", err)
	}
	if len(sentences) == 0 {
		return strings.TrimSpace(input), nil
	}
	if len(sentences) <= sentenceCount {
		return strings.Join(sentences, " "), nil
	}

	terms, sentenceTerms := buildVocabulary(sentences)
	if len(terms) == 0 {
		// No content terms at all; fall back to the leading sentences.
		return strings.Join(sentences[:sentenceCount], " "), nil
	}

	a := mat.NewDense(len(terms), len(sentences), nil)
	for j, stems := range sentenceTerms {
		for _, stem := range stems {
			i := terms[stem]
			a.Set(i, j, a.At(i, j)+1)
		}
	}

	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return "", fmt.Errorf("lsa summarization: SVD did not converge")
	}

	var v mat.Dense
	svd.VTo(&v)
	sigma := svd.Values(nil)

	concepts := sentenceCount
	if concepts > len(sigma) {
		concepts = len(sigma)
	}

	type ranked struct {
		index int
		score float64
	}
	scores := make([]ranked, len(sentences))
	for j := range sentences {
		sum := 0.0
		for c := 0; c < concepts; c++ {
			w := sigma[c] * v.At(j, c)
			sum += w * w
		}
		scores[j] = ranked{index: j, score: math.Sqrt(sum)}
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})

	indexes := make([]int, sentenceCount)
	for i := 0; i < sentenceCount; i++ {
		indexes[i] = scores[i].index
	}
	sort.Ints(indexes)

	parts := make([]string, len(indexes))
	for i, idx := range indexes {
		parts[i] = sentences[idx]
	}
	return strings.Join(parts, " "), nil
}

// buildVocabulary maps each stemmed content term to a row index and
// returns the per-sentence stem sequences.
func buildVocabulary(sentences []string) (map[string]int, [][]string) {
	terms := make(map[string]int)
	sentenceTerms := make([][]string, len(sentences))

	for j, sentence := range sentences {
		words := strings.FieldsFunc(strings.ToLower(sentence), func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		for _, w := range words {
			if stopwords.Contains(w) {
				continue
			}
			stem := english.Stem(w, false)
			if stem == "" {
				continue
			}
			if _, ok := terms[stem]; !ok {
				terms[stem] = len(terms)
			}
			sentenceTerms[j] = append(sentenceTerms[j], stem)
		}
	}
	return terms, sentenceTerms
}
