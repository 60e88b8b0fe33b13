// Package config holds the application-level configuration for the text
// analyzer. Values are loaded from environment variables with validated
// fallbacks; the loaded struct is immutable afterwards and safe to share
// across concurrent requests.
package config

import (
	"fmt"

	pkgconfig "textanalyzer/internal/pkg/config"
	"textanalyzer/internal/summarizer"
)

// AnalysisConfig holds the tunable constants of the analysis and
// summarization heuristics. The lookahead windows are heuristics rather
// than derived invariants, which is why they are configuration and not
// hard-coded.
type AnalysisConfig struct {
	// MinTextLength is the minimum input length in runes after
	// whitespace normalization. Default: 10
	MinTextLength int

	// TopWords is the number of entries in the word-frequency ranking.
	// Default: 10
	TopWords int

	// KeyPhraseCount is the number of high-frequency terms the heuristic
	// summarizer scores sentences against. Default: 15
	KeyPhraseCount int

	// PassiveLookahead is the number of tokens scanned after a copula
	// for a past participle. Default: 3
	PassiveLookahead int

	// FutureLookahead is the number of tokens scanned after "will" or
	// "shall" for the future-tense verb. Default: 1
	FutureLookahead int

	// Summary configures summarization parameters.
	Summary SummaryConfig
}

// SummaryConfig holds summarization defaults and bounds.
type SummaryConfig struct {
	// DefaultSentences is the summary length used when the caller does
	// not specify one. Default: 3
	DefaultSentences int

	// MaxSentences bounds the requested summary length. Default: 10
	MaxSentences int

	// DefaultMethod is used when the caller does not name a method.
	// Default: "smart"
	DefaultMethod string
}

// LoadAnalysisConfig loads the configuration from environment variables.
// Invalid values fall back to defaults; the returned warnings describe
// every fallback applied and should be logged by the caller.
func LoadAnalysisConfig() (*AnalysisConfig, []string) {
	var warnings []string

	loadInt := func(key string, def int, validator func(int) error) int {
		result := pkgconfig.LoadEnvInt(key, def, validator)
		warnings = append(warnings, result.Warnings...)
		return result.Value.(int)
	}

	methodResult := pkgconfig.LoadEnvWithFallback(
		"SUMMARY_DEFAULT_METHOD",
		summarizer.MethodSmart,
		validateMethod,
	)
	warnings = append(warnings, methodResult.Warnings...)

	cfg := &AnalysisConfig{
		MinTextLength:    loadInt("ANALYZER_MIN_TEXT_LENGTH", 10, pkgconfig.ValidatePositiveInt),
		TopWords:         loadInt("ANALYZER_TOP_WORDS", 10, pkgconfig.ValidatePositiveInt),
		KeyPhraseCount:   loadInt("ANALYZER_KEY_PHRASES", 15, pkgconfig.ValidatePositiveInt),
		PassiveLookahead: loadInt("ANALYZER_PASSIVE_LOOKAHEAD", 3, pkgconfig.ValidatePositiveInt),
		FutureLookahead:  loadInt("ANALYZER_FUTURE_LOOKAHEAD", 1, pkgconfig.ValidatePositiveInt),
		Summary: SummaryConfig{
			DefaultSentences: loadInt("SUMMARY_DEFAULT_SENTENCES", 3, pkgconfig.IntRangeValidator(1, 10)),
			MaxSentences:     loadInt("SUMMARY_MAX_SENTENCES", 10, pkgconfig.ValidatePositiveInt),
			DefaultMethod:    methodResult.Value.(string),
		},
	}

	return cfg, warnings
}

// Validate checks cross-field invariants of the configuration.
func (c *AnalysisConfig) Validate() error {
	if c.Summary.DefaultSentences > c.Summary.MaxSentences {
		return fmt.Errorf(
			"default summary length %d exceeds maximum %d",
			c.Summary.DefaultSentences, c.Summary.MaxSentences,
		)
	}
	return validateMethod(c.Summary.DefaultMethod)
}

func validateMethod(method string) error {
	for _, m := range summarizer.Methods() {
		if method == m {
			return nil
		}
	}
	return fmt.Errorf("unknown summarization method %q", method)
}
