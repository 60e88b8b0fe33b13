// Package entity defines the core domain entities for text analysis and
// summarization. These are read-only result aggregates: they are produced
// once per request and have no lifecycle beyond it.
package entity

// TextStats holds basic corpus statistics for a block of text.
// Word and character counts cover alphabetic tokens only; punctuation,
// numbers, and symbols are excluded.
type TextStats struct {
	WordCount         int     `json:"word_count"`
	SentenceCount     int     `json:"sentence_count"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	AvgWordLength     float64 `json:"avg_word_length"`
	CharacterCount    int     `json:"character_count"`
}

// ReadabilityScore is the Flesch-Kincaid grade with its mapped reading
// level and description.
type ReadabilityScore struct {
	FleschKincaidGrade float64 `json:"flesch_kincaid_grade"`
	ReadingLevel       string  `json:"reading_level"`
	Description        string  `json:"description"`
}

// PartsOfSpeech buckets the distinct words of the text by grammatical
// category. Each word appears at most once per category; element order is
// unspecified and must not be relied on by consumers.
type PartsOfSpeech struct {
	Nouns        []string `json:"nouns"`
	Verbs        []string `json:"verbs"`
	Adjectives   []string `json:"adjectives"`
	Adverbs      []string `json:"adverbs"`
	Pronouns     []string `json:"pronouns"`
	Prepositions []string `json:"prepositions"`
	Conjunctions []string `json:"conjunctions"`
}

// TenseAnalysis groups distinct verb occurrences by tense. Element order
// is unspecified, matching the set semantics of the classification.
type TenseAnalysis struct {
	Past    []string `json:"past"`
	Present []string `json:"present"`
	Future  []string `json:"future"`
}

// WordFrequency is a single entry of the frequency ranking.
type WordFrequency struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// AnalysisResult aggregates all analysis facets for one request.
// PassiveSentences preserves original document order.
type AnalysisResult struct {
	TextStats        TextStats        `json:"text_stats"`
	Readability      ReadabilityScore `json:"readability"`
	PartsOfSpeech    PartsOfSpeech    `json:"parts_of_speech"`
	PassiveSentences []string         `json:"passive_sentences"`
	TenseAnalysis    TenseAnalysis    `json:"tense_analysis"`
	WordFrequency    []WordFrequency  `json:"word_frequency"`
}

// SummaryResult carries an extractive summary together with its size
// reduction statistics. Word counts here are whitespace-split counts over
// the raw text, deliberately distinct from the alphabetic-only counts used
// in TextStats.
type SummaryResult struct {
	Summary             string  `json:"summary"`
	OriginalWordCount   int     `json:"original_word_count"`
	SummaryWordCount    int     `json:"summary_word_count"`
	ReductionPercentage float64 `json:"reduction_percentage"`
}
