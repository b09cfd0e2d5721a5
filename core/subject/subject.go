package subject

import "sync/atomic"

// phase tags the registry state. Once a subject leaves phaseActive it never
// returns; phaseDisposed is terminal above all others.
type phase uint8

const (
	phaseActive phase = iota
	phaseCompleted
	phaseFaulted
	phaseDisposed
)

// state is one immutable snapshot of the registry. Mutations replace the
// whole value through a CAS on Subject.state; a published state is never
// edited in place.
type state[T any] struct {
	phase phase
	subs  []*Subscription[T] // live handles in insertion order, phaseActive only
	err   error              // phaseFaulted only
}

// Observable is anything that can be subscribed to with the Subject contract.
type Observable[T any] interface {
	Subscribe(Observer[T]) (Disposable, error)
}

// Subject is the multicast registry. Every operation is synchronous on the
// caller's goroutine.
type Subject[T any] struct {
	state atomic.Pointer[state[T]]
}

// New returns an empty, active Subject.
func New[T any]() *Subject[T] {
	s := &Subject[T]{}
	s.state.Store(&state[T]{phase: phaseActive})
	return s
}

// Subscribe appends o to the live set. If the subject already completed or
// faulted, o receives the terminal notification synchronously, is never added
// and the returned handle is inert. Subscribing to a disposed subject fails
// with ErrDisposed.
func (s *Subject[T]) Subscribe(o Observer[T]) (Disposable, error) {
	if o == nil {
		return nil, ErrNilObserver
	}
	sub := newSubscription(s, o)
	for {
		st := s.state.Load()
		switch st.phase {
		case phaseDisposed:
			return nil, ErrDisposed
		case phaseCompleted:
			o.OnCompleted()
			return nopDisposable{}, nil
		case phaseFaulted:
			o.OnError(st.err)
			return nopDisposable{}, nil
		}
		next := make([]*Subscription[T], len(st.subs)+1)
		copy(next, st.subs)
		next[len(st.subs)] = sub
		if s.state.CompareAndSwap(st, &state[T]{phase: phaseActive, subs: next}) {
			return sub, nil
		}
	}
}

// SubscribeFunc subscribes a by-reference callback wrapped in a SafeObserver
// whose attached resource is the subscription itself.
func (s *Subject[T]) SubscribeFunc(next func(*T)) (Disposable, error) {
	if next == nil {
		return nil, ErrNilObserver
	}
	return subscribeSafe[T](s, NewObserver[T](next, nil, nil))
}

// SubscribeValue subscribes a by-value callback; each event is copied before
// the callback runs, so mutations never reach the in-flight publish.
func (s *Subject[T]) SubscribeValue(next func(T)) (Disposable, error) {
	if next == nil {
		return nil, ErrNilObserver
	}
	return subscribeSafe[T](s, NewValueObserver[T](next, nil, nil))
}

// SubscribeFunc subscribes a by-reference callback to any Observable, wrapped
// in a SafeObserver tied to its own subscription.
func SubscribeFunc[T any](src Observable[T], next func(*T)) (Disposable, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if next == nil {
		return nil, ErrNilObserver
	}
	return subscribeSafe[T](src, NewObserver[T](next, nil, nil))
}

func subscribeSafe[T any](src Observable[T], o Observer[T]) (Disposable, error) {
	res := &SingleAssignment{}
	d, err := src.Subscribe(NewSafeObserver(o, res))
	if err != nil {
		return nil, err
	}
	// The slot is fresh, so Set cannot report ErrAlreadyAssigned; if a
	// terminal replay disposed it already, Set disposes d for us.
	if err := res.Set(d); err != nil {
		return nil, err
	}
	return res, nil
}

// Publish delivers v to every handle in the current snapshot, sequentially
// and in subscription order, on the caller's goroutine. All handles see the
// same pointer, so a mutation made by an earlier handle is visible to later
// ones. A panic in a handler propagates to the caller and aborts the
// remaining deliveries of this call. Publishing after Complete or Fail is a
// silent no-op; after Dispose it fails with ErrDisposed.
func (s *Subject[T]) Publish(v *T) error {
	st := s.state.Load()
	switch st.phase {
	case phaseDisposed:
		return ErrDisposed
	case phaseCompleted, phaseFaulted:
		return nil
	}
	for _, sub := range st.subs {
		if o := sub.observer(); o != nil {
			o.OnNext(v)
		}
	}
	return nil
}

// PublishValue publishes a mutable local copy of v. Handlers in the chain may
// mutate the copy, but the caller's value is untouched.
func (s *Subject[T]) PublishValue(v T) error {
	return s.Publish(&v)
}

// Complete transitions the subject to the completed state and notifies every
// handle live at the transition instant exactly once. Completing an already
// terminated subject is a no-op; completing a disposed one fails with
// ErrDisposed.
func (s *Subject[T]) Complete() error {
	for {
		st := s.state.Load()
		switch st.phase {
		case phaseDisposed:
			return ErrDisposed
		case phaseCompleted, phaseFaulted:
			return nil
		}
		if s.state.CompareAndSwap(st, &state[T]{phase: phaseCompleted}) {
			for _, sub := range st.subs {
				if o := sub.observer(); o != nil {
					o.OnCompleted()
				}
			}
			return nil
		}
	}
}

// Fail transitions the subject to the faulted state, delivers err once to
// every handle live at the transition and retains it for replay to later
// subscribers. Failing an already terminated subject is a no-op; failing a
// disposed one fails with ErrDisposed.
func (s *Subject[T]) Fail(err error) error {
	if err == nil {
		return ErrNilError
	}
	for {
		st := s.state.Load()
		switch st.phase {
		case phaseDisposed:
			return ErrDisposed
		case phaseCompleted, phaseFaulted:
			return nil
		}
		if s.state.CompareAndSwap(st, &state[T]{phase: phaseFaulted, err: err}) {
			for _, sub := range st.subs {
				if o := sub.observer(); o != nil {
					o.OnError(err)
				}
			}
			return nil
		}
	}
}

// Dispose drops the subject unconditionally, discarding any stored error.
// Afterwards Publish, Subscribe, Complete and Fail all fail with ErrDisposed.
// Disposing twice is a no-op.
func (s *Subject[T]) Dispose() {
	s.state.Store(&state[T]{phase: phaseDisposed})
}

// Subscribers reports the number of live handles.
func (s *Subject[T]) Subscribers() int {
	st := s.state.Load()
	if st.phase != phaseActive {
		return 0
	}
	return len(st.subs)
}

// unsubscribe removes sub from the live set by identity. Terminal snapshots
// are replaced outright, never edited, so a non-active state makes this a
// no-op.
func (s *Subject[T]) unsubscribe(sub *Subscription[T]) {
	for {
		st := s.state.Load()
		if st.phase != phaseActive {
			return
		}
		idx := -1
		for i, c := range st.subs {
			if c == sub {
				idx = i
				break
			}
		}
		if idx < 0 {
			return
		}
		next := make([]*Subscription[T], 0, len(st.subs)-1)
		next = append(next, st.subs[:idx]...)
		next = append(next, st.subs[idx+1:]...)
		if s.state.CompareAndSwap(st, &state[T]{phase: phaseActive, subs: next}) {
			return
		}
	}
}
