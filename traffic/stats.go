package traffic

import "sync"

// RunStats accumulates counters across every request of a run. It is shared
// by all scenarios of an invocation and never reset mid-run. The mutex keeps
// the multi-field fold atomic during the concurrent spike burst.
type RunStats struct {
	mu             sync.Mutex
	total          int
	success        int
	errors         int
	totalLatencyMS float64
	totalTokens    int64
	totalCost      float64
}

// RecordSuccess folds one successful response into the counters. Token and
// cost contributions are zero when the response carried no usage fields.
func (s *RunStats) RecordSuccess(latencyMS float64, tokens int64, costUSD float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.total++
	s.success++
	s.totalLatencyMS += latencyMS
	s.totalTokens += tokens
	s.totalCost += costUSD
}

// RecordError folds one failed request attempt into the counters. The
// latency up to the failure still counts toward the mean.
func (s *RunStats) RecordError(latencyMS float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.total++
	s.errors++
	s.totalLatencyMS += latencyMS
}

// Summary holds the derived rates computed once at the end of a run.
type Summary struct {
	Total        int
	Success      int
	Errors       int
	SuccessRate  float64 // percent
	ErrorRate    float64 // percent
	AvgLatencyMS float64
	TotalTokens  int64
	TotalCost    float64
}

// Summary derives the final rates. A run with zero requests reports zero
// rates rather than dividing by zero.
func (s *RunStats) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := Summary{
		Total:       s.total,
		Success:     s.success,
		Errors:      s.errors,
		TotalTokens: s.totalTokens,
		TotalCost:   s.totalCost,
	}
	if s.total > 0 {
		sum.SuccessRate = float64(s.success) / float64(s.total) * 100
		sum.ErrorRate = float64(s.errors) / float64(s.total) * 100
		sum.AvgLatencyMS = s.totalLatencyMS / float64(s.total)
	}
	return sum
}
