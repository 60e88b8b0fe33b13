package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textanalyzer/internal/config"
	"textanalyzer/internal/nlp"
)

// mockTokenizer implements nlp.Tokenizer for testing.
type mockTokenizer struct {
	sentencesFn   func(text string) ([]string, error)
	taggedWordsFn func(text string) ([]nlp.TaggedWord, error)
}

func (m *mockTokenizer) Sentences(text string) ([]string, error) {
	if m.sentencesFn != nil {
		return m.sentencesFn(text)
	}
	return nil, nil
}

func (m *mockTokenizer) TaggedWords(text string) ([]nlp.TaggedWord, error) {
	if m.taggedWordsFn != nil {
		return m.taggedWordsFn(text)
	}
	return nil, nil
}

func testConfig(t *testing.T) *config.AnalysisConfig {
	t.Helper()
	cfg, warnings := config.LoadAnalysisConfig()
	require.Empty(t, warnings)
	return cfg
}

func docTokenizer(sentences []string, tagged map[string][]nlp.TaggedWord, doc []nlp.TaggedWord) *mockTokenizer {
	return &mockTokenizer{
		sentencesFn: func(string) ([]string, error) {
			return sentences, nil
		},
		taggedWordsFn: func(text string) ([]nlp.TaggedWord, error) {
			if tw, ok := tagged[text]; ok {
				return tw, nil
			}
			return doc, nil
		},
	}
}

func TestAnalyzeRejectsShortText(t *testing.T) {
	service := NewService(&mockTokenizer{}, testConfig(t))

	_, err := service.Analyze(context.Background(), "short")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTextTooShort)
}

func TestAnalyzeNormalizesWhitespaceBeforeLengthCheck(t *testing.T) {
	service := NewService(&mockTokenizer{}, testConfig(t))

	// 12 raw characters collapse below the minimum of 10.
	_, err := service.Analyze(context.Background(), "  a   b   c ")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTextTooShort)
}

func TestAnalyzeHappyPath(t *testing.T) {
	sentences := []string{"The ball was thrown.", "Dogs run fast."}
	docTagged := []nlp.TaggedWord{
		{Text: "The", Tag: "DT"}, {Text: "ball", Tag: "NN"},
		{Text: "was", Tag: "VBD"}, {Text: "thrown", Tag: "VBN"},
		{Text: ".", Tag: "."},
		{Text: "Dogs", Tag: "NNS"}, {Text: "run", Tag: "VBP"},
		{Text: "fast", Tag: "RB"}, {Text: ".", Tag: "."},
	}
	perSentence := map[string][]nlp.TaggedWord{
		sentences[0]: {
			{Text: "The", Tag: "DT"}, {Text: "ball", Tag: "NN"},
			{Text: "was", Tag: "VBD"}, {Text: "thrown", Tag: "VBN"},
			{Text: ".", Tag: "."},
		},
		sentences[1]: {
			{Text: "Dogs", Tag: "NNS"}, {Text: "run", Tag: "VBP"},
			{Text: "fast", Tag: "RB"}, {Text: ".", Tag: "."},
		},
	}

	service := NewService(docTokenizer(sentences, perSentence, docTagged), testConfig(t))

	result, err := service.Analyze(context.Background(), "The ball was thrown. Dogs run fast.")
	require.NoError(t, err)

	assert.Equal(t, 7, result.TextStats.WordCount)
	assert.Equal(t, 2, result.TextStats.SentenceCount)
	assert.Equal(t, []string{"The ball was thrown."}, result.PassiveSentences)
	assert.ElementsMatch(t, []string{"ball", "dogs"}, result.PartsOfSpeech.Nouns)
}

func TestSummarizeValidation(t *testing.T) {
	service := NewService(&mockTokenizer{}, testConfig(t))
	longEnough := "This input text is long enough to pass validation."

	tests := []struct {
		name          string
		text          string
		sentenceCount int
		method        string
		expectedErr   error
	}{
		{
			name:          "short text rejected",
			text:          "tiny",
			sentenceCount: 3,
			method:        "smart",
			expectedErr:   ErrTextTooShort,
		},
		{
			name:          "negative sentence count",
			text:          longEnough,
			sentenceCount: -1,
			method:        "smart",
			expectedErr:   ErrInvalidSentenceCount,
		},
		{
			name:          "sentence count above maximum",
			text:          longEnough,
			sentenceCount: 11,
			method:        "smart",
			expectedErr:   ErrInvalidSentenceCount,
		},
		{
			name:          "unknown method",
			text:          longEnough,
			sentenceCount: 3,
			method:        "eigenvibe",
			expectedErr:   ErrUnknownMethod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Summarize(context.Background(), tt.text, tt.sentenceCount, tt.method)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestSummarizeDefaultsApplied(t *testing.T) {
	// Two sentences with the default target of 3 hits the fast path, so
	// the summary equals the normalized input.
	input := "The first sentence stands here. The second sentence follows."
	sentences := []string{"The first sentence stands here.", "The second sentence follows."}

	service := NewService(docTokenizer(sentences, nil, nil), testConfig(t))

	result, err := service.Summarize(context.Background(), input, 0, "")
	require.NoError(t, err)

	assert.Equal(t, input, result.Summary)
	assert.Equal(t, 9, result.OriginalWordCount)
	assert.Equal(t, 9, result.SummaryWordCount)
	assert.Equal(t, 0.0, result.ReductionPercentage)
}

func TestSummarizeReductionPercentage(t *testing.T) {
	sentences := []string{
		"Alpha bravo charlie delta.",
		"Echo foxtrot golf hotel.",
		"India juliett kilo lima.",
	}
	input := "Alpha bravo charlie delta. Echo foxtrot golf hotel. India juliett kilo lima."

	service := NewService(docTokenizer(sentences, nil, nil), testConfig(t))

	result, err := service.Summarize(context.Background(), input, 1, "smart")
	require.NoError(t, err)

	// 12 words reduced to 4: 66.7% reduction.
	assert.Equal(t, 12, result.OriginalWordCount)
	assert.Equal(t, 4, result.SummaryWordCount)
	assert.Equal(t, 66.7, result.ReductionPercentage)
}

func TestSummarizeDeterminism(t *testing.T) {
	sentences := []string{
		"Alpha bravo charlie delta.",
		"Echo foxtrot golf hotel.",
		"India juliett kilo lima.",
	}
	input := "Alpha bravo charlie delta. Echo foxtrot golf hotel. India juliett kilo lima."

	service := NewService(docTokenizer(sentences, nil, nil), testConfig(t))

	first, err := service.Summarize(context.Background(), input, 2, "smart")
	require.NoError(t, err)
	second, err := service.Summarize(context.Background(), input, 2, "smart")
	require.NoError(t, err)

	assert.Equal(t, first.Summary, second.Summary)
	assert.Equal(t, first.ReductionPercentage, second.ReductionPercentage)
}

func TestBuildSummaryResultZeroWords(t *testing.T) {
	result := buildSummaryResult("", "")

	assert.Equal(t, 0, result.OriginalWordCount)
	assert.Equal(t, 0.0, result.ReductionPercentage, "no division by zero")
}
