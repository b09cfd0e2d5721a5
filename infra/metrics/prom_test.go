package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	coremetrics "github.com/relaykit/relay/core/metrics"
)

func TestPromSink_RecordPublish(t *testing.T) {
	reg := prometheus.NewRegistry()
	sinkIf, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	sink, ok := sinkIf.(*PromSink)
	if !ok {
		t.Fatalf("expected PromSink")
	}
	rec := coremetrics.PublishRecord{
		Event:       "model.Alert",
		Subscribers: 3,
		Duration:    150 * time.Millisecond,
		Time:        time.Now(),
	}
	if err := sink.RecordPublish([]coremetrics.PublishRecord{rec}); err != nil {
		t.Fatalf("record error: %v", err)
	}

	expected := `
# HELP relay_publish_total Total number of publish calls
# TYPE relay_publish_total counter
relay_publish_total{event="model.Alert",rejected="false"} 1
`
	if err := testutil.CollectAndCompare(sink.publishes, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}

	if c := testutil.CollectAndCount(sink.duration); c == 0 {
		t.Errorf("duration not recorded")
	}

	expectedGauge := `
# HELP relay_subscribers Live subscriber handles observed at the last publish
# TYPE relay_subscribers gauge
relay_subscribers{event="model.Alert"} 3
`
	if err := testutil.CollectAndCompare(sink.subscribers, strings.NewReader(expectedGauge)); err != nil {
		t.Errorf("unexpected gauge: %v", err)
	}
}

// Registering twice against the same registry must reuse the existing
// collectors instead of failing.
func TestPromSink_AlreadyRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPromSinkWithRegistry(reg); err != nil {
		t.Fatalf("first sink: %v", err)
	}
	if _, err := NewPromSinkWithRegistry(reg); err != nil {
		t.Fatalf("second sink: %v", err)
	}
}
