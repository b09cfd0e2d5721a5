package subject

import "sync/atomic"

// Subscription couples one observer to its parent subject. Disposing removes
// the observer from the parent's live set exactly once; afterwards the parent
// reference is dropped so the handle cannot be reused. The parent reference
// is only used for removal and never extends the subject's lifetime.
type Subscription[T any] struct {
	parent atomic.Pointer[Subject[T]]
	obs    atomic.Pointer[Observer[T]]
}

func newSubscription[T any](parent *Subject[T], o Observer[T]) *Subscription[T] {
	sub := &Subscription[T]{}
	sub.parent.Store(parent)
	sub.obs.Store(&o)
	return sub
}

// observer returns the live observer, or nil once the handle is disposed.
func (s *Subscription[T]) observer() Observer[T] {
	if p := s.obs.Load(); p != nil {
		return *p
	}
	return nil
}

// Dispose removes the subscription from its subject. Only the caller that
// claims the observer slot performs the removal, so repeated or racing
// Dispose calls are no-ops.
func (s *Subscription[T]) Dispose() {
	if s.obs.Swap(nil) == nil {
		return
	}
	if parent := s.parent.Swap(nil); parent != nil {
		parent.unsubscribe(s)
	}
}
