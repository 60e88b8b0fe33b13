// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - Analysis metrics (request count, duration, input size)
//   - Summarization metrics (per-method count and duration, reduction)
//
// All metrics are automatically registered with the Prometheus default
// registry.
//
// Example usage:
//
//	import "textanalyzer/internal/observability/metrics"
//
//	func analyze(text string) {
//	    start := time.Now()
//	    // ... run analysis ...
//	    metrics.RecordAnalysis(true, time.Since(start))
//	}
package metrics
