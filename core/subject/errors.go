package subject

import "errors"

var (
	// ErrDisposed is returned by any operation invoked after Dispose.
	ErrDisposed = errors.New("subject: disposed")
	// ErrNilObserver rejects a nil observer or callback.
	ErrNilObserver = errors.New("subject: nil observer")
	// ErrNilPredicate rejects a nil Where predicate.
	ErrNilPredicate = errors.New("subject: nil predicate")
	// ErrNilSource rejects a nil upstream observable.
	ErrNilSource = errors.New("subject: nil source")
	// ErrNilError rejects Fail(nil).
	ErrNilError = errors.New("subject: nil error")
	// ErrAlreadyAssigned is returned when a SingleAssignment slot is set twice.
	ErrAlreadyAssigned = errors.New("subject: disposable already assigned")
)
