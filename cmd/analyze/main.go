// Package main provides a CLI command for analyzing text.
// Usage: textanalyzer-analyze [--file path] [--output json|text]
// Text is read from --file, or from stdin when no file is given.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"textanalyzer/internal/config"
	"textanalyzer/internal/domain/entity"
	"textanalyzer/internal/infra/prosetok"
	"textanalyzer/internal/observability/logging"
	"textanalyzer/internal/usecase/analysis"
)

func main() {
	var (
		filePath     string
		outputFormat string
	)

	flag.StringVar(&filePath, "file", "", "Path of the text file to analyze (default: stdin)")
	flag.StringVar(&outputFormat, "output", "text", "Output format: text or json")
	flag.Parse()

	logger := initLogger()

	input, err := readInput(filePath)
	if err != nil {
		logger.Error("failed to read input", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: Failed to read input: %v\n", err)
		os.Exit(1)
	}

	cfg, warnings := config.LoadAnalysisConfig()
	for _, warning := range warnings {
		logger.Warn("configuration fallback", slog.String("warning", warning))
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	service := analysis.NewService(prosetok.New(), cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	result, err := service.Analyze(ctx, input)
	if err != nil {
		logger.Error("analysis failed", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: Analysis failed: %v\n", err)
		os.Exit(1)
	}

	if outputFormat == "json" {
		outputJSON(result)
	} else {
		outputText(result)
	}
}

// readInput reads the text to analyze from a file or stdin.
func readInput(filePath string) (string, error) {
	if filePath == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", filePath, err)
	}
	return string(data), nil
}

// outputText prints the analysis in human-readable format.
func outputText(result *entity.AnalysisResult) {
	stats := result.TextStats
	fmt.Printf("Words: %d  Sentences: %d  Characters: %d\n",
		stats.WordCount, stats.SentenceCount, stats.CharacterCount)
	fmt.Printf("Avg sentence length: %.1f  Avg word length: %.1f\n\n",
		stats.AvgSentenceLength, stats.AvgWordLength)

	fmt.Printf("Readability: grade %.1f (%s)\n", result.Readability.FleschKincaidGrade,
		result.Readability.ReadingLevel)
	fmt.Printf("  %s\n\n", result.Readability.Description)

	fmt.Printf("Parts of speech:\n")
	fmt.Printf("  Nouns:        %s\n", strings.Join(result.PartsOfSpeech.Nouns, ", "))
	fmt.Printf("  Verbs:        %s\n", strings.Join(result.PartsOfSpeech.Verbs, ", "))
	fmt.Printf("  Adjectives:   %s\n", strings.Join(result.PartsOfSpeech.Adjectives, ", "))
	fmt.Printf("  Adverbs:      %s\n", strings.Join(result.PartsOfSpeech.Adverbs, ", "))
	fmt.Printf("  Pronouns:     %s\n", strings.Join(result.PartsOfSpeech.Pronouns, ", "))
	fmt.Printf("  Prepositions: %s\n", strings.Join(result.PartsOfSpeech.Prepositions, ", "))
	fmt.Printf("  Conjunctions: %s\n\n", strings.Join(result.PartsOfSpeech.Conjunctions, ", "))

	if len(result.PassiveSentences) > 0 {
		fmt.Printf("Passive sentences:\n")
		for _, s := range result.PassiveSentences {
			fmt.Printf("  - %s\n", s)
		}
		fmt.Println()
	}

	fmt.Printf("Tenses:\n")
	fmt.Printf("  Past:    %s\n", strings.Join(result.TenseAnalysis.Past, ", "))
	fmt.Printf("  Present: %s\n", strings.Join(result.TenseAnalysis.Present, ", "))
	fmt.Printf("  Future:  %s\n\n", strings.Join(result.TenseAnalysis.Future, ", "))

	if len(result.WordFrequency) > 0 {
		fmt.Printf("Top words:\n")
		for _, wf := range result.WordFrequency {
			fmt.Printf("  %-20s %d\n", wf.Word, wf.Count)
		}
	}
}

// outputJSON prints the analysis in JSON format.
func outputJSON(result *entity.AnalysisResult) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to encode JSON: %v\n", err)
		os.Exit(1)
	}
}

// initLogger initializes the structured logger and installs it as the
// process default.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}
