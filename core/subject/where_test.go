package subject

import (
	"errors"
	"testing"
)

// Where with !handled, chained after a subscriber that marks events handled,
// never invokes its downstream subscriber for those events.
func TestWhere_SkipsHandledEvents(t *testing.T) {
	s := New[event]()
	if _, err := s.SubscribeFunc(func(e *event) {
		if e.seq%2 == 0 {
			e.handled = true
		}
	}); err != nil {
		t.Fatalf("subscribe handler: %v", err)
	}

	unhandled, err := Where[event](s, func(e *event) bool { return !e.handled })
	if err != nil {
		t.Fatalf("where: %v", err)
	}
	var seen []int
	if _, err := SubscribeFunc(unhandled, func(e *event) { seen = append(seen, e.seq) }); err != nil {
		t.Fatalf("subscribe downstream: %v", err)
	}

	for i := 0; i < 4; i++ {
		if err := s.Publish(&event{seq: i}); err != nil {
			t.Fatalf("publish %d: %v", i, err)
		}
	}
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 3 {
		t.Fatalf("unexpected downstream deliveries: %v", seen)
	}
}

// The filter forwards the same pointer: a downstream mutation is visible to
// a later subscriber of the upstream subject.
func TestWhere_PreservesMutationVisibility(t *testing.T) {
	s := New[event]()
	filtered, err := Where[event](s, func(*event) bool { return true })
	if err != nil {
		t.Fatalf("where: %v", err)
	}
	if _, err := SubscribeFunc(filtered, func(e *event) { e.handled = true }); err != nil {
		t.Fatalf("subscribe filtered: %v", err)
	}
	var saw bool
	if _, err := s.SubscribeFunc(func(e *event) { saw = e.handled }); err != nil {
		t.Fatalf("subscribe upstream: %v", err)
	}
	if err := s.Publish(&event{}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !saw {
		t.Errorf("downstream mutation not visible through the filter")
	}
}

func TestWhere_TerminalPassthrough(t *testing.T) {
	s := New[event]()
	filtered, err := Where[event](s, func(*event) bool { return false })
	if err != nil {
		t.Fatalf("where: %v", err)
	}
	var done int
	var got error
	if _, err := filtered.Subscribe(NewObserver[event](nil, func(e error) { got = e }, func() { done++ })); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	boom := errors.New("boom")
	if err := s.Fail(boom); err != nil {
		t.Fatalf("fail: %v", err)
	}
	if got != boom {
		t.Fatalf("error not passed through, got %v", got)
	}

	s2 := New[event]()
	filtered2, err := Where[event](s2, func(*event) bool { return false })
	if err != nil {
		t.Fatalf("where: %v", err)
	}
	if _, err := filtered2.Subscribe(NewObserver[event](nil, nil, func() { done++ })); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if err := s2.Complete(); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if done != 1 {
		t.Fatalf("expected completion passthrough, got %d", done)
	}
}

func TestWhere_InvalidArguments(t *testing.T) {
	s := New[event]()
	if _, err := Where[event](nil, func(*event) bool { return true }); !errors.Is(err, ErrNilSource) {
		t.Errorf("expected ErrNilSource, got %v", err)
	}
	if _, err := Where[event](s, nil); !errors.Is(err, ErrNilPredicate) {
		t.Errorf("expected ErrNilPredicate, got %v", err)
	}
	filtered, err := Where[event](s, func(*event) bool { return true })
	if err != nil {
		t.Fatalf("where: %v", err)
	}
	if _, err := filtered.Subscribe(nil); !errors.Is(err, ErrNilObserver) {
		t.Errorf("expected ErrNilObserver, got %v", err)
	}
}
