// Package observability provides the observability infrastructure for the
// text analyzer: structured logging, Prometheus metrics, and OpenTelemetry
// tracing.
//
// Subpackages:
//   - logging: structured logging utilities with slog
//   - metrics: Prometheus metrics registry and recorders
//   - tracing: OpenTelemetry tracer access
//
// Example usage:
//
//	import (
//	    "textanalyzer/internal/observability/logging"
//	    "textanalyzer/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger()
//	    logger.Info("analyzer started")
//
//	    metrics.RecordAnalysis(true, time.Since(start))
//	}
package observability
