package metrics

import "strings"

// MultiSink fans records out to multiple sinks.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordPublish forwards the records to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordPublish(recs []PublishRecord) error {
	for _, s := range m.Sinks {
		if err := s.RecordPublish(recs); err != nil {
			return err
		}
	}
	return nil
}

// Summary concatenates the reports of all sinks that support one.
func (m *MultiSink) Summary() string {
	var parts []string
	for _, s := range m.Sinks {
		if r, ok := s.(SummaryReporter); ok {
			if rep := r.Summary(); rep != "" {
				parts = append(parts, rep)
			}
		}
	}
	return strings.Join(parts, "; ")
}
