package subject

import (
	"errors"
	"testing"
)

type countingDisposable struct {
	calls int
}

func (c *countingDisposable) Dispose() { c.calls++ }

type recordingObserver struct {
	next      int
	errs      []error
	completed int
}

func (r *recordingObserver) OnNext(*event)     { r.next++ }
func (r *recordingObserver) OnError(err error) { r.errs = append(r.errs, err) }
func (r *recordingObserver) OnCompleted()      { r.completed++ }

func TestSafeObserver_AtMostOneTerminal(t *testing.T) {
	rec := &recordingObserver{}
	res := &countingDisposable{}
	safe := NewSafeObserver[event](rec, res)

	safe.OnError(errors.New("boom"))
	safe.OnCompleted()
	safe.OnError(errors.New("again"))

	if len(rec.errs) != 1 {
		t.Fatalf("expected exactly one error, got %d", len(rec.errs))
	}
	if rec.completed != 0 {
		t.Fatalf("completion delivered after error")
	}
	if res.calls != 1 {
		t.Fatalf("resource disposed %d times, want 1", res.calls)
	}
}

func TestSafeObserver_OnNextSuppressedAfterStop(t *testing.T) {
	rec := &recordingObserver{}
	safe := NewSafeObserver[event](rec, nil)
	safe.OnCompleted()
	safe.OnNext(&event{})
	if rec.next != 0 {
		t.Fatalf("OnNext delivered after terminal notification")
	}
	if rec.completed != 1 {
		t.Fatalf("expected one completion, got %d", rec.completed)
	}
}

// A panicking handler must not leak its own subscription: the attached
// resource is released before the panic continues to the publisher.
func TestSafeObserver_PanicReleasesResource(t *testing.T) {
	res := &countingDisposable{}
	safe := NewSafeObserver[event](NewObserver[event](func(*event) { panic("handler") }, nil, nil), res)
	func() {
		defer func() {
			if recover() == nil {
				t.Errorf("expected panic to propagate")
			}
		}()
		safe.OnNext(&event{})
	}()
	if res.calls != 1 {
		t.Fatalf("resource disposed %d times, want 1", res.calls)
	}
}

// Release happens before the terminal callback, so a panicking callback
// cannot skip cleanup.
func TestSafeObserver_TerminalPanicStillReleases(t *testing.T) {
	res := &countingDisposable{}
	safe := NewSafeObserver[event](NewObserver[event](nil, func(error) { panic("on-error") }, nil), res)
	func() {
		defer func() { _ = recover() }()
		safe.OnError(errors.New("boom"))
	}()
	if res.calls != 1 {
		t.Fatalf("resource disposed %d times, want 1", res.calls)
	}
}

// End to end: a panicking subscriber is removed from the subject while the
// other subscribers stay subscribed.
func TestSafeObserver_PanickingSubscriberUnsubscribed(t *testing.T) {
	s := New[event]()
	if _, err := s.SubscribeFunc(func(*event) { panic("bad handler") }); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	var healthy int
	if _, err := s.SubscribeFunc(func(*event) { healthy++ }); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	func() {
		defer func() { _ = recover() }()
		_ = s.Publish(&event{})
	}()
	if n := s.Subscribers(); n != 1 {
		t.Fatalf("expected panicking subscriber removed, %d live handles", n)
	}
	if err := s.Publish(&event{}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if healthy != 1 {
		t.Fatalf("healthy subscriber saw %d deliveries after the panic, want 1", healthy)
	}
}
