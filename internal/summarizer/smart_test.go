package summarizer_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textanalyzer/internal/nlp"
	"textanalyzer/internal/summarizer"
)

// mockTokenizer implements nlp.Tokenizer for testing with canned outputs.
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

func sentenceMock(sentences []string, tokens []nlp.TaggedWord) *mockTokenizer {
	return &mockTokenizer{
		sentencesFn: func(string) ([]string, error) {
			return sentences, nil
		},
		taggedWordsFn: func(string) ([]nlp.TaggedWord, error) {
			return tokens, nil
		},
	}
}

func words(ws ...string) []nlp.TaggedWord {
	out := make([]nlp.TaggedWord, len(ws))
	for i, w := range ws {
		out[i] = nlp.TaggedWord{Text: w, Tag: "NN"}
	}
	return out
}

func TestSmartFastPathReturnsInputUnchanged(t *testing.T) {
	input := "One sentence. Two sentences."
	tok := sentenceMock([]string{"One sentence.", "Two sentences."}, nil)

	s := summarizer.NewSmart(tok, 0)

	got, err := s.Summarize(input, 3)
	require.NoError(t, err)
	assert.Equal(t, input, got)

	got, err = s.Summarize(input, 2)
	require.NoError(t, err)
	assert.Equal(t, input, got)
}

func TestSmartPositionalAndMarkerScoring(t *testing.T) {
	sentences := []string{
		"Go is a language.",         // first: +3
		"Cats sleep.",               // 0
		"The conclusion is clear.",  // discourse marker: +2
		"Nothing here.",             // 0
		"It is critical that we act.", // significance marker: +1
		"The end.",                  // last: +1
	}
	tok := sentenceMock(sentences, nil)
	s := summarizer.NewSmart(tok, 0)

	got, err := s.Summarize(strings.Join(sentences, " "), 3)
	require.NoError(t, err)

	// Ties between the significance sentence and the last sentence go to
	// the earlier one; output stays in document order.
	assert.Equal(t,
		"Go is a language. The conclusion is clear. It is critical that we act.",
		got)
}

func TestSmartKeyPhraseScoring(t *testing.T) {
	sentences := []string{
		"Alpha beta.",
		"The rocket engine fired.",
		"Birds fly.",
		"End.",
	}
	tokens := words("rocket", "rocket", "rocket", "engine", "engine")
	tok := sentenceMock(sentences, tokens)
	s := summarizer.NewSmart(tok, 0)

	got, err := s.Summarize(strings.Join(sentences, " "), 2)
	require.NoError(t, err)

	// Key-phrase density (+4) beats the first-sentence bonus (+3), but
	// the selection is re-sorted into document order.
	assert.Equal(t, "Alpha beta. The rocket engine fired.", got)
}

func TestSmartDeterminism(t *testing.T) {
	sentences := []string{
		"The main result is significant.",
		"Some filler sentence follows here.",
		"More filler sentences pad the text.",
		"Overall the approach works.",
		"A closing remark ends the document.",
	}
	tokens := words("result", "result", "filler", "filler", "approach")
	input := strings.Join(sentences, " ")

	s := summarizer.NewSmart(sentenceMock(sentences, tokens), 0)

	first, err := s.Summarize(input, 2)
	require.NoError(t, err)
	second, err := s.Summarize(input, 2)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical input and parameters must give byte-identical output")
}

func TestSmartCleansJoinedOutput(t *testing.T) {
	sentences := []string{"First thing", "x", "Last , bit"}
	s := summarizer.NewSmart(sentenceMock(sentences, nil), 0)

	got, err := s.Summarize(strings.Join(sentences, " "), 2)
	require.NoError(t, err)

	assert.Equal(t, "First thing Last, bit.", got,
		"space before punctuation removed and terminal period appended")
}

func TestSmartRoundTrip(t *testing.T) {
	sentences := []string{
		"The study examined reading habits across generations.",
		"Participants reported daily screen time.",
		"Books remain popular with older readers.",
		"Younger readers prefer short articles.",
		"Therefore the key finding is a generational split.",
		"Future work will widen the sample.",
	}
	tokens := words("readers", "readers", "reading", "articles", "books")
	input := strings.Join(sentences, " ")

	s := summarizer.NewSmart(sentenceMock(sentences, tokens), 0)

	got, err := s.Summarize(input, 3)
	require.NoError(t, err)

	// Exactly 3 of the original 6 sentences, in original relative order,
	// each ending with terminal punctuation.
	var selected []string
	rest := got
	for _, sentence := range sentences {
		if strings.HasPrefix(rest, sentence) {
			selected = append(selected, sentence)
			rest = strings.TrimPrefix(rest, sentence)
			rest = strings.TrimPrefix(rest, " ")
		}
	}
	assert.Empty(t, rest, "summary must consist only of original sentences")
	assert.Len(t, selected, 3)
	assert.True(t, strings.HasSuffix(got, ".") || strings.HasSuffix(got, "!") || strings.HasSuffix(got, "?"))
}

func TestSmartPropagatesTokenizerErrors(t *testing.T) {
	tokErr := errors.New("segmenter failed")
	tok := &mockTokenizer{
		sentencesFn: func(string) ([]string, error) {
			return nil, tokErr
		},
	}

	_, err := summarizer.NewSmart(tok, 0).Summarize("some text", 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, tokErr)
}
