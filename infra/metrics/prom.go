package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/relaykit/relay/core/metrics"
)

// PromSink records publish calls in Prometheus metrics.
type PromSink struct {
	publishes   *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	subscribers *prometheus.GaugeVec
}

// NewPromSink registers publish metrics on the default Prometheus registerer.
// The metrics HTTP server is started separately via StartPromServer.
func NewPromSink() (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer. If the
// collectors are already registered, the existing ones are reused.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	publishes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "relay_publish_total",
		Help: "Total number of publish calls",
	}, []string{"event", "rejected"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "relay_publish_duration_seconds",
		Help:    "Synchronous delivery time of one publish call",
		Buckets: prometheus.DefBuckets,
	}, []string{"event"})
	subscribers := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "relay_subscribers",
		Help: "Live subscriber handles observed at the last publish",
	}, []string{"event"})

	if err := reg.Register(publishes); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			publishes = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(subscribers); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			subscribers = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{publishes: publishes, duration: duration, subscribers: subscribers}, nil
}

// RecordPublish increments the counters for each publish record.
func (s *PromSink) RecordPublish(recs []coremetrics.PublishRecord) error {
	for _, r := range recs {
		s.publishes.WithLabelValues(r.Event, strconv.FormatBool(r.Rejected)).Inc()
		s.duration.WithLabelValues(r.Event).Observe(r.Duration.Seconds())
		s.subscribers.WithLabelValues(r.Event).Set(float64(r.Subscribers))
	}
	return nil
}
