// Package metrics defines interfaces and implementations for collecting
// publish observability data. Sinks like PromSink, InfluxSink and SummarySink
// record each publish call (event type, subscriber count, delivery duration)
// and can be combined with NewMultiSink. The factory helpers return a
// MultiSink automatically when multiple sinks are configured.
package metrics
