package subject

import "sync/atomic"

// Disposable releases a resource. Dispose is idempotent.
type Disposable interface {
	Dispose()
}

// nopDisposable is returned when a subscription never joined the live set
// (terminal replay at subscribe time).
type nopDisposable struct{}

func (nopDisposable) Dispose() {}

// slot wraps the held disposable so the empty, assigned and disposed states
// stay distinct under a single atomic pointer.
type slot struct {
	d Disposable
}

// disposedSlot marks a SingleAssignment whose Dispose already ran.
var disposedSlot = &slot{}

// SingleAssignment is a disposal slot that can be assigned at most once.
// Disposing before assignment releases the resource as soon as it is set;
// racing Dispose calls release the held resource exactly once.
type SingleAssignment struct {
	state atomic.Pointer[slot]
}

// Set assigns the resource. A second assignment fails with ErrAlreadyAssigned.
// If the slot was already disposed, d is disposed immediately and Set reports
// no error.
func (s *SingleAssignment) Set(d Disposable) error {
	for {
		cur := s.state.Load()
		if cur == disposedSlot {
			if d != nil {
				d.Dispose()
			}
			return nil
		}
		if cur != nil {
			return ErrAlreadyAssigned
		}
		if s.state.CompareAndSwap(nil, &slot{d: d}) {
			return nil
		}
	}
}

// IsDisposed reports whether Dispose has run.
func (s *SingleAssignment) IsDisposed() bool {
	return s.state.Load() == disposedSlot
}

// Dispose releases the held resource, if any. Only the caller that wins the
// swap performs the release; later calls are no-ops.
func (s *SingleAssignment) Dispose() {
	old := s.state.Swap(disposedSlot)
	if old != nil && old != disposedSlot && old.d != nil {
		old.d.Dispose()
	}
}
