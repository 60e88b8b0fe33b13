package metrics

import "time"

// RecordAnalysis records the result of a text analysis request.
func RecordAnalysis(success bool, duration time.Duration) {
	AnalysesTotal.WithLabelValues(statusLabel(success)).Inc()
	AnalysisDuration.Observe(duration.Seconds())
}

// RecordAnalysisInputSize records the size of an analyzed input in runes.
func RecordAnalysisInputSize(runes int) {
	AnalysisInputSize.Observe(float64(runes))
}

// RecordSummarization records the result of a summarization request for
// the given method.
func RecordSummarization(method string, success bool, duration time.Duration) {
	SummariesTotal.WithLabelValues(method, statusLabel(success)).Inc()
	SummarizationDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordSummaryReduction records the word-count reduction percentage of a
// produced summary.
func RecordSummaryReduction(percent float64) {
	SummaryReduction.Observe(percent)
}

func statusLabel(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
