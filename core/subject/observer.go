package subject

// Observer receives notifications from a Subject. OnNext borrows the event
// mutably for the duration of the call; implementations must not retain the
// pointer past their return.
type Observer[T any] interface {
	OnNext(*T)
	OnError(error)
	OnCompleted()
}

// funcObserver adapts plain callbacks to the Observer interface.
type funcObserver[T any] struct {
	next func(*T)
	err  func(error)
	done func()
}

// NewObserver builds an Observer from callbacks. Nil callbacks are skipped.
func NewObserver[T any](next func(*T), onErr func(error), onDone func()) Observer[T] {
	return &funcObserver[T]{next: next, err: onErr, done: onDone}
}

// NewValueObserver builds an Observer whose next callback receives each event
// by value. The event is copied before the callback runs, so mutations never
// reach the in-flight publish.
func NewValueObserver[T any](next func(T), onErr func(error), onDone func()) Observer[T] {
	var fn func(*T)
	if next != nil {
		fn = func(v *T) { next(*v) }
	}
	return NewObserver[T](fn, onErr, onDone)
}

func (o *funcObserver[T]) OnNext(v *T) {
	if o.next != nil {
		o.next(v)
	}
}

func (o *funcObserver[T]) OnError(err error) {
	if o.err != nil {
		o.err(err)
	}
}

func (o *funcObserver[T]) OnCompleted() {
	if o.done != nil {
		o.done()
	}
}
