package metrics

import "time"

// PublishRecord captures one publish call for observability purposes.
type PublishRecord struct {
	// Event is the event type name, e.g. "model.Alert".
	Event string
	// Subscribers is the live handle count in the snapshot that was served.
	Subscribers int
	// Duration is the total synchronous delivery time.
	Duration time.Duration
	// Rejected is true when the subject refused the publish.
	Rejected bool
	Time     time.Time
}

// Sink records publish outcomes.
type Sink interface {
	RecordPublish(records []PublishRecord) error
}

// SummaryReporter is implemented by sinks that can render an aggregate
// report, such as the latency summary.
type SummaryReporter interface {
	Summary() string
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordPublish([]PublishRecord) error { return nil }
