// Package main provides a CLI command for extractive text summarization.
// Usage: textanalyzer-summarize [--file path] [--sentences N] [--method smart|lsa|lexrank|textrank] [--output json]
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
	"textanalyzer/internal/summarizer"
	"textanalyzer/internal/usecase/analysis"
)

func main() {
	var (
		filePath      string
		sentenceCount int
		method        string
		outputFormat  string
	)

	flag.StringVar(&filePath, "file", "", "Path of the text file to summarize (default: stdin)")
	flag.IntVar(&sentenceCount, "sentences", 0, "Number of sentences in the summary (default: configured value)")
	flag.StringVar(&method, "method", "", "Summarization method: smart, lsa, lexrank, or textrank")
	flag.StringVar(&outputFormat, "output", "text", "Output format: text or json")
	flag.Parse()

	if method != "" && !knownMethod(method) {
		fmt.Fprintf(os.Stderr, "Error: Invalid method '%s' (must be one of: %s)\n",
			method, strings.Join(summarizer.Methods(), ", "))
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage: textanalyzer-summarize [--file path] [--sentences N] [--method smart|lsa|lexrank|textrank]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Examples:")
		fmt.Fprintln(os.Stderr, "  textanalyzer-summarize --file article.txt")
		fmt.Fprintln(os.Stderr, "  textanalyzer-summarize --file article.txt --sentences 5")
		fmt.Fprintln(os.Stderr, "  textanalyzer-summarize --method lexrank < article.txt")
		fmt.Fprintln(os.Stderr, "  textanalyzer-summarize --output json < article.txt")
		os.Exit(1)
	}

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

	result, err := service.Summarize(ctx, input, sentenceCount, method)
	if err != nil {
		logger.Error("summarization failed", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: Summarization failed: %v\n", err)
		os.Exit(1)
	}

	if outputFormat == "json" {
		outputJSON(result)
	} else {
		outputText(result)
	}
}

func knownMethod(method string) bool {
	for _, m := range summarizer.Methods() {
		if method == m {
			return true
		}
	}
	return false
}

// readInput reads the text to summarize from a file or stdin.
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

// outputText prints the summary in human-readable format.
func outputText(result *entity.SummaryResult) {
	fmt.Println(result.Summary)
	fmt.Println()
	fmt.Printf("Words: %d -> %d (%.1f%% reduction)\n",
		result.OriginalWordCount, result.SummaryWordCount, result.ReductionPercentage)
}

// outputJSON prints the summary in JSON format.
func outputJSON(result *entity.SummaryResult) {
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
