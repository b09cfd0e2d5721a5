package metrics

import (
	"fmt"
	"sort"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/relaykit/relay/core/metrics"
)

// SummarySink aggregates publish delivery durations in memory and renders a
// one-line statistical report. It is meant for short-lived processes (the
// demo service, benchmarks) that want a shutdown summary without running a
// metrics backend.
type SummarySink struct {
	mu        sync.Mutex
	durations []float64 // milliseconds
	publishes int
	rejected  int
	quantiles []float64
}

// NewSummarySink creates a sink reporting the mean and the given quantiles.
// Without arguments it reports p50 and p95.
func NewSummarySink(quantiles ...float64) *SummarySink {
	if len(quantiles) == 0 {
		quantiles = []float64{0.5, 0.95}
	}
	sort.Float64s(quantiles)
	return &SummarySink{quantiles: quantiles}
}

// RecordPublish accumulates the records.
func (s *SummarySink) RecordPublish(recs []metrics.PublishRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range recs {
		s.publishes++
		if r.Rejected {
			s.rejected++
			continue
		}
		s.durations = append(s.durations, float64(r.Duration.Nanoseconds())/1e6)
	}
	return nil
}

// Summary renders the aggregate report.
func (s *SummarySink) Summary() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.durations) == 0 {
		return fmt.Sprintf("publishes=%d rejected=%d", s.publishes, s.rejected)
	}
	d := make([]float64, len(s.durations))
	copy(d, s.durations)
	sort.Float64s(d)
	out := fmt.Sprintf("publishes=%d rejected=%d mean=%.3fms", s.publishes, s.rejected, stat.Mean(d, nil))
	for _, q := range s.quantiles {
		out += fmt.Sprintf(" p%.0f=%.3fms", q*100, stat.Quantile(q, stat.Empirical, d, nil))
	}
	return out
}
