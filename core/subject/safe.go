package subject

import "sync/atomic"

// SafeObserver shields the registry from user callbacks: at most one terminal
// notification reaches the inner observer, and the attached resource
// (typically the observer's own subscription) is released no matter how the
// callbacks behave.
type SafeObserver[T any] struct {
	inner   Observer[T]
	res     Disposable
	stopped atomic.Bool
}

// NewSafeObserver wraps inner, tying the release of res to callback outcome.
// res may be nil.
func NewSafeObserver[T any](inner Observer[T], res Disposable) *SafeObserver[T] {
	return &SafeObserver[T]{inner: inner, res: res}
}

// OnNext forwards the event unless a terminal notification was already seen.
// A panic in the inner callback disposes the attached resource before
// propagating, so a misbehaving handler cannot leak its own subscription.
func (s *SafeObserver[T]) OnNext(v *T) {
	if s.stopped.Load() {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			s.release()
			panic(r)
		}
	}()
	s.inner.OnNext(v)
}

// OnError delivers the terminal error once. The resource is released before
// the callback runs, so release happens even if the callback panics.
func (s *SafeObserver[T]) OnError(err error) {
	if !s.stopped.CompareAndSwap(false, true) {
		return
	}
	s.release()
	s.inner.OnError(err)
}

// OnCompleted mirrors OnError for normal completion.
func (s *SafeObserver[T]) OnCompleted() {
	if !s.stopped.CompareAndSwap(false, true) {
		return
	}
	s.release()
	s.inner.OnCompleted()
}

func (s *SafeObserver[T]) release() {
	if s.res != nil {
		s.res.Dispose()
	}
}
