package subject

// Where returns an observable that forwards only events for which pred holds.
// The proxy keeps no registry of its own: Subscribe delegates to src with a
// wrapping observer, and the same event pointer flows through, so upstream
// mutations stay visible downstream. Completion and error notifications pass
// through unconditionally and untransformed.
func Where[T any](src Observable[T], pred func(*T) bool) (Observable[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if pred == nil {
		return nil, ErrNilPredicate
	}
	return &whereObservable[T]{src: src, pred: pred}, nil
}

type whereObservable[T any] struct {
	src  Observable[T]
	pred func(*T) bool
}

func (w *whereObservable[T]) Subscribe(o Observer[T]) (Disposable, error) {
	if o == nil {
		return nil, ErrNilObserver
	}
	return w.src.Subscribe(&filterObserver[T]{next: o, pred: w.pred})
}

type filterObserver[T any] struct {
	next Observer[T]
	pred func(*T) bool
}

func (f *filterObserver[T]) OnNext(v *T) {
	if f.pred(v) {
		f.next.OnNext(v)
	}
}

func (f *filterObserver[T]) OnError(err error) { f.next.OnError(err) }

func (f *filterObserver[T]) OnCompleted() { f.next.OnCompleted() }
