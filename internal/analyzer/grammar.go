package analyzer

import (
	"strings"

	"textanalyzer/internal/domain/entity"
	"textanalyzer/internal/nlp"
)

// posCategory pairs a grammatical category with the POS tag prefixes that
// place a word in it. The table order is significant: the first matching
// category wins, so e.g. "WP" pronouns are never re-tested as nouns.
type posCategory struct {
	name     string
	prefixes []string
}

var posCategories = []posCategory{
	{"nouns", []string{"NN"}},
	{"verbs", []string{"VB"}},
	{"adjectives", []string{"JJ"}},
	{"adverbs", []string{"RB"}},
	{"pronouns", []string{"PRP", "WP"}},
	{"prepositions", []string{"IN"}},
	{"conjunctions", []string{"CC"}},
}

// copulaForms are the forms of "to be" that can open a passive
// construction.
var copulaForms = map[string]struct{}{
	"am": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"be": {}, "been": {}, "being": {},
}

// pastParticipleTag marks verb forms used in passive constructions.
const pastParticipleTag = "VBN"

// CategorizeWords buckets the distinct alphabetic words of the tagged
// stream by grammatical category. A tag matches a category when it equals
// one of the category's prefixes or starts with it; each occurrence is
// assigned to at most one category.
func CategorizeWords(tagged []nlp.TaggedWord) entity.PartsOfSpeech {
	buckets := make(map[string]map[string]struct{}, len(posCategories))
	for _, cat := range posCategories {
		buckets[cat.name] = make(map[string]struct{})
	}

	for _, tw := range tagged {
		if !nlp.IsAlphabetic(tw.Text) {
			continue
		}
		lower := strings.ToLower(tw.Text)

		for _, cat := range posCategories {
			if matchesCategory(tw.Tag, cat.prefixes) {
				buckets[cat.name][lower] = struct{}{}
				break
			}
		}
	}

	return entity.PartsOfSpeech{
		Nouns:        setToSlice(buckets["nouns"]),
		Verbs:        setToSlice(buckets["verbs"]),
		Adjectives:   setToSlice(buckets["adjectives"]),
		Adverbs:      setToSlice(buckets["adverbs"]),
		Pronouns:     setToSlice(buckets["pronouns"]),
		Prepositions: setToSlice(buckets["prepositions"]),
		Conjunctions: setToSlice(buckets["conjunctions"]),
	}
}

func matchesCategory(tag string, prefixes []string) bool {
	for _, p := range prefixes {
		if tag == p || strings.HasPrefix(tag, p) {
			return true
		}
	}
	return false
}

// DetectPassive returns, in document order, the sentences containing a
// passive construction: a copula followed within lookahead tokens by a
// past participle. Each sentence is re-tokenized independently because the
// lookahead window must not cross sentence boundaries. A sentence is
// reported at most once no matter how many constructions it contains.
func DetectPassive(sentences []string, tok nlp.Tokenizer, lookahead int) ([]string, error) {
	var passive []string

	for _, sentence := range sentences {
		tagged, err := tok.TaggedWords(sentence)
		if err != nil {
			return nil, err
		}

		for i, tw := range tagged {
			if _, ok := copulaForms[strings.ToLower(tw.Text)]; !ok {
				continue
			}

			end := i + 1 + lookahead
			if end > len(tagged) {
				end = len(tagged)
			}
			found := false
			for j := i + 1; j < end; j++ {
				if tagged[j].Tag == pastParticipleTag {
					found = true
					break
				}
			}
			if found {
				passive = append(passive, sentence)
				break
			}
		}
	}

	return passive, nil
}

// ClassifyTenses groups distinct verb occurrences by tense using the
// document-level tagged stream. Future tense is detected through the
// modals "will" and "shall": the first alphabetic token tagged VB or RB
// within lookahead tokens after the modal is recorded, not the modal
// itself.
func ClassifyTenses(tagged []nlp.TaggedWord, lookahead int) entity.TenseAnalysis {
	past := make(map[string]struct{})
	present := make(map[string]struct{})
	future := make(map[string]struct{})

	for i, tw := range tagged {
		if !nlp.IsAlphabetic(tw.Text) {
			continue
		}
		lower := strings.ToLower(tw.Text)

		switch {
		case tw.Tag == "VBD":
			past[lower] = struct{}{}
		case tw.Tag == "VBP" || tw.Tag == "VBZ":
			present[lower] = struct{}{}
		case lower == "will" || lower == "shall":
			end := i + 1 + lookahead
			if end > len(tagged) {
				end = len(tagged)
			}
			for j := i + 1; j < end; j++ {
				next := tagged[j]
				if (next.Tag == "VB" || next.Tag == "RB") && nlp.IsAlphabetic(next.Text) {
					future[strings.ToLower(next.Text)] = struct{}{}
					break
				}
			}
		}
	}

	return entity.TenseAnalysis{
		Past:    setToSlice(past),
		Present: setToSlice(present),
		Future:  setToSlice(future),
	}
}

// setToSlice materializes a word set. Iteration order is unspecified,
// which is part of the contract for category and tense lists.
func setToSlice(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	return out
}
