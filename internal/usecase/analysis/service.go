// Package analysis provides the application-level operations for text
// analysis and summarization. It validates input, orchestrates the
// analyzer and summarizer packages with a shared tokenizer, and records
// logging, metrics, and tracing for every request.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"textanalyzer/internal/analyzer"
	"textanalyzer/internal/config"
	"textanalyzer/internal/domain/entity"
	"textanalyzer/internal/nlp"
	"textanalyzer/internal/observability/metrics"
	"textanalyzer/internal/observability/tracing"
	"textanalyzer/internal/summarizer"
	textutil "textanalyzer/internal/utils/text"
)

var (
	// ErrTextTooShort is returned when the input is below the configured
	// minimum length after whitespace normalization.
	ErrTextTooShort = errors.New("text is too short to analyze")
	// ErrUnknownMethod is returned when the summarization method is not
	// registered.
	ErrUnknownMethod = errors.New("unknown summarization method")
	// ErrInvalidSentenceCount is returned when the requested summary
	// length is outside the configured bounds.
	ErrInvalidSentenceCount = errors.New("sentence count out of range")
)

// Service provides text analysis and summarization operations.
// It is stateless across requests: the tokenizer and configuration are
// read-only, so a single Service may serve concurrent callers.
type Service struct {
	tokenizer nlp.Tokenizer
	cfg       *config.AnalysisConfig
}

// NewService creates an analysis service with the given tokenizer and
// configuration.
func NewService(tokenizer nlp.Tokenizer, cfg *config.AnalysisConfig) *Service {
	return &Service{
		tokenizer: tokenizer,
		cfg:       cfg,
	}
}

// Analyze runs every analysis facet over the text and returns the
// combined result. The text is tokenized and tagged exactly once; any
// facet failure invalidates the whole request.
//
// Returns ErrTextTooShort for inputs below the configured minimum, or a
// wrapped tokenizer error for backend failures.
func (s *Service) Analyze(ctx context.Context, text string) (*entity.AnalysisResult, error) {
	requestID := s.getOrCreateRequestID(ctx)

	_, span := tracing.GetTracer().Start(ctx, "analysis.Analyze")
	defer span.End()

	cleaned, err := s.validateText(text)
	if err != nil {
		slog.Warn("Rejected analysis input",
			slog.String("request_id", requestID),
			slog.Any("error", err))
		return nil, err
	}

	inputRunes := textutil.CountRunes(cleaned)
	metrics.RecordAnalysisInputSize(inputRunes)
	slog.Info("Analyzing text",
		slog.String("request_id", requestID),
		slog.Int("input_runes", inputRunes))

	start := time.Now()

	processor, err := analyzer.NewProcessor(s.tokenizer, cleaned, s.analyzerOptions())
	if err != nil {
		metrics.RecordAnalysis(false, time.Since(start))
		slog.Error("Tokenization failed",
			slog.String("request_id", requestID),
			slog.Any("error", err))
		return nil, fmt.Errorf("analysis failed: %w", err)
	}

	result, err := processor.Analyze()
	if err != nil {
		metrics.RecordAnalysis(false, time.Since(start))
		slog.Error("Analysis failed",
			slog.String("request_id", requestID),
			slog.Any("error", err))
		return nil, fmt.Errorf("analysis failed: %w", err)
	}

	metrics.RecordAnalysis(true, time.Since(start))
	slog.Info("Analysis completed",
		slog.String("request_id", requestID),
		slog.Int("word_count", result.TextStats.WordCount),
		slog.Int("sentence_count", result.TextStats.SentenceCount),
		slog.Float64("grade", result.Readability.FleschKincaidGrade))

	return result, nil
}

// Summarize produces an extractive summary of the text. A zero
// sentenceCount selects the configured default; an empty method selects
// the configured default method.
//
// Returns ErrTextTooShort, ErrInvalidSentenceCount, or ErrUnknownMethod
// for invalid requests, or a wrapped summarizer error for backend
// failures.
func (s *Service) Summarize(ctx context.Context, text string, sentenceCount int, method string) (*entity.SummaryResult, error) {
	requestID := s.getOrCreateRequestID(ctx)

	_, span := tracing.GetTracer().Start(ctx, "analysis.Summarize")
	defer span.End()

	cleaned, err := s.validateText(text)
	if err != nil {
		slog.Warn("Rejected summarization input",
			slog.String("request_id", requestID),
			slog.Any("error", err))
		return nil, err
	}

	if method == "" {
		method = s.cfg.Summary.DefaultMethod
	}
	if sentenceCount == 0 {
		sentenceCount = s.cfg.Summary.DefaultSentences
	}
	if sentenceCount < 1 || sentenceCount > s.cfg.Summary.MaxSentences {
		return nil, fmt.Errorf("%w: must be between 1 and %d, got %d",
			ErrInvalidSentenceCount, s.cfg.Summary.MaxSentences, sentenceCount)
	}

	summ, ok := summarizer.ForMethod(method, s.tokenizer, s.cfg.KeyPhraseCount)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}

	slog.Info("Summarizing text",
		slog.String("request_id", requestID),
		slog.String("method", method),
		slog.Int("sentence_count", sentenceCount))

	start := time.Now()

	summary, err := summ.Summarize(cleaned, sentenceCount)
	if err != nil {
		metrics.RecordSummarization(method, false, time.Since(start))
		slog.Error("Summarization failed",
			slog.String("request_id", requestID),
			slog.String("method", method),
			slog.Any("error", err))
		return nil, fmt.Errorf("summarization failed: %w", err)
	}

	result := buildSummaryResult(cleaned, summary)
	metrics.RecordSummarization(method, true, time.Since(start))
	metrics.RecordSummaryReduction(result.ReductionPercentage)
	slog.Info("Summarization completed",
		slog.String("request_id", requestID),
		slog.String("method", method),
		slog.Float64("reduction_percent", result.ReductionPercentage))

	return result, nil
}

// validateText normalizes whitespace and enforces the minimum length in
// runes. The normalized text is what all downstream processing sees.
func (s *Service) validateText(text string) (string, error) {
	cleaned := textutil.NormalizeWhitespace(text)
	if textutil.CountRunes(cleaned) < s.cfg.MinTextLength {
		return "", fmt.Errorf("%w: minimum length is %d characters",
			ErrTextTooShort, s.cfg.MinTextLength)
	}
	return cleaned, nil
}

func (s *Service) analyzerOptions() analyzer.Options {
	return analyzer.Options{
		PassiveLookahead: s.cfg.PassiveLookahead,
		FutureLookahead:  s.cfg.FutureLookahead,
		TopWords:         s.cfg.TopWords,
	}
}

// buildSummaryResult computes the reduction statistics. Word counts are
// whitespace-split counts over the raw strings; the reduction percentage
// is 0 when the original has no words.
func buildSummaryResult(original, summary string) *entity.SummaryResult {
	originalWords := textutil.CountWords(original)
	summaryWords := textutil.CountWords(summary)

	reduction := 0.0
	if originalWords > 0 {
		reduction = (1 - float64(summaryWords)/float64(originalWords)) * 100
		reduction = math.Round(reduction*10) / 10
	}

	return &entity.SummaryResult{
		Summary:             summary,
		OriginalWordCount:   originalWords,
		SummaryWordCount:    summaryWords,
		ReductionPercentage: reduction,
	}
}

func (s *Service) getOrCreateRequestID(ctx context.Context) string {
	// Try to get request ID from context
	if requestID, ok := ctx.Value("request_id").(string); ok && requestID != "" {
		return requestID
	}

	// Generate new request ID
	return uuid.New().String()
}
