package analyzer

import (
	"sort"
	"strings"

	"textanalyzer/internal/domain/entity"
	"textanalyzer/internal/stopwords"
	"textanalyzer/internal/utils/text"
)

// TopWords ranks the given alphabetic words by occurrence, lower-cased,
// with stopwords and words of length <= 2 excluded. The top n entries are
// returned by descending count; ties keep first-encountered order (stable
// sort over insertion order).
func TopWords(words []string, n int) []entity.WordFrequency {
	counts := make(map[string]int)
	var order []string

	for _, w := range words {
		lower := strings.ToLower(w)
		if stopwords.Contains(lower) || text.CountRunes(w) <= 2 {
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

	if n > len(order) {
		n = len(order)
	}
	if n < 0 {
		n = 0
	}

	out := make([]entity.WordFrequency, 0, n)
	for _, w := range order[:n] {
		out = append(out, entity.WordFrequency{Word: w, Count: counts[w]})
	}
	return out
}
