// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Analysis metrics track text analysis request patterns and performance
var (
	// AnalysesTotal counts analysis requests by status
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "text_analyses_total",
			Help: "Total number of text analysis requests",
		},
		[]string{"status"},
	)

	// AnalysisDuration measures analysis duration in seconds
	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "text_analysis_duration_seconds",
			Help:    "Text analysis duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// AnalysisInputSize measures analyzed input size in runes
	AnalysisInputSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "text_analysis_input_runes",
			Help:    "Size of analyzed input in runes",
			Buckets: prometheus.ExponentialBuckets(10, 10, 6),
		},
	)
)

// Summarization metrics track summarization requests per method
var (
	// SummariesTotal counts summarization requests by method and status
	SummariesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "text_summaries_total",
			Help: "Total number of summarization requests",
		},
		[]string{"method", "status"},
	)

	// SummarizationDuration measures summarization duration in seconds by method
	SummarizationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "text_summarization_duration_seconds",
			Help:    "Summarization duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// SummaryReduction measures the reduction percentage of produced summaries
	SummaryReduction = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "text_summary_reduction_percent",
			Help:    "Word count reduction percentage of produced summaries",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)
)
