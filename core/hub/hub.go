// Package hub is the type-keyed façade over per-event-type subjects. The
// first caller to touch an event type creates its Subject; all later callers
// share it. Publishing and subscribing are package-level generic functions
// because Go methods cannot carry their own type parameters.
package hub

import (
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/relaykit/relay/core/logger"
	"github.com/relaykit/relay/core/metrics"
	"github.com/relaykit/relay/core/subject"
)

// Hub holds one Subject per event type, created lazily. Hubs typically live
// for the whole process; Close exists for scoped uses such as tests and the
// demo service.
type Hub struct {
	subjects sync.Map // reflect.Type -> *subject.Subject[T]
	log      logger.Logger
	sink     metrics.Sink
}

// Option configures a Hub.
type Option func(*Hub)

// WithLogger sets the logger used by the publish path.
func WithLogger(l logger.Logger) Option {
	return func(h *Hub) {
		if l != nil {
			h.log = l
		}
	}
}

// WithSink sets the metrics sink fed by the publish path.
func WithSink(s metrics.Sink) Option {
	return func(h *Hub) {
		if s != nil {
			h.sink = s
		}
	}
}

// New creates a Hub. Without options it neither logs nor records metrics.
func New(opts ...Option) *Hub {
	h := &Hub{log: logger.Nop{}, sink: metrics.NopSink{}}
	for _, o := range opts {
		o(h)
	}
	return h
}

// Close disposes every subject created so far.
func (h *Hub) Close() {
	h.subjects.Range(func(_, v any) bool {
		if d, ok := v.(subject.Disposable); ok {
			d.Dispose()
		}
		return true
	})
}

func typeKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Of returns the hub's subject for event type T, creating it on first use.
// Under concurrent first use the first stored subject wins and the others are
// discarded unused.
func Of[T any](h *Hub) *subject.Subject[T] {
	key := typeKey[T]()
	if v, ok := h.subjects.Load(key); ok {
		return v.(*subject.Subject[T])
	}
	created := subject.New[T]()
	v, loaded := h.subjects.LoadOrStore(key, created)
	if !loaded {
		h.log.Debugf("subject created for %s", key)
	}
	return v.(*subject.Subject[T])
}

// Publish delivers evt by reference to every subscriber of T, records the
// outcome on the hub's metrics sink and returns the subject's error, if any.
func Publish[T any](h *Hub, evt *T) error {
	s := Of[T](h)
	key := typeKey[T]()
	start := time.Now()
	n := s.Subscribers()
	err := s.Publish(evt)
	rec := metrics.PublishRecord{
		Event:       key.String(),
		Subscribers: n,
		Duration:    time.Since(start),
		Rejected:    err != nil,
		Time:        start,
	}
	if serr := h.sink.RecordPublish([]metrics.PublishRecord{rec}); serr != nil {
		h.log.Errorf("record publish: %v", serr)
	}
	if err != nil {
		return fmt.Errorf("publish %s: %w", key, err)
	}
	return nil
}

// PublishValue publishes a mutable copy of evt; handlers in the chain may
// mutate the copy but the caller's value is untouched.
func PublishValue[T any](h *Hub, evt T) error {
	return Publish(h, &evt)
}

// Subscribe registers a by-reference handler for events of type T.
func Subscribe[T any](h *Hub, fn func(*T)) (subject.Disposable, error) {
	return Of[T](h).SubscribeFunc(fn)
}

// SubscribeValue registers a by-value handler; mutations on the received copy
// never reach the in-flight publish.
func SubscribeValue[T any](h *Hub, fn func(T)) (subject.Disposable, error) {
	return Of[T](h).SubscribeValue(fn)
}

// Complete terminates the subject for T normally.
func Complete[T any](h *Hub) error {
	return Of[T](h).Complete()
}

// Fail terminates the subject for T with err.
func Fail[T any](h *Hub, err error) error {
	return Of[T](h).Fail(err)
}
