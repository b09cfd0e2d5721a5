// Package subject implements a lock-free in-process multicast primitive: a
// Subject is simultaneously an event sink (Publish) and an event source
// (Subscribe). One mutable event instance is delivered, by reference, to an
// ordered list of subscribers on the publisher's goroutine, so earlier
// subscribers can mark the event handled and later subscribers (or a Where
// filter) can skip it.
//
// The registry is a copy-on-write snapshot behind an atomic pointer. Writers
// (Subscribe, handle disposal, Complete, Fail, Dispose) retry optimistically
// on compare-and-swap contention; Publish reads a single torn-free snapshot
// and never blocks. There is no mutex, no background goroutine and no queue
// anywhere in this package.
//
// Key components:
//   - Subject: the multicast registry with terminal-state semantics
//     (completed, faulted, disposed).
//   - Subscription: couples one observer to its subject; disposal removes it
//     exactly once, even under racing Dispose calls.
//   - SafeObserver: guarantees at most one terminal notification reaches user
//     code and ties resource release to callback outcome.
//   - SingleAssignment: an idempotent, exactly-once disposal slot.
//   - Where: stateless predicate filtering over any Observable.
//
// Usage example:
//
//	s := subject.New[Alert]()
//	sub, err := s.SubscribeFunc(func(a *Alert) {
//	        a.Handled = true
//	})
//	if err != nil {
//	        log.Fatalf("subscribe: %v", err)
//	}
//	defer sub.Dispose()
//	alert := Alert{Message: "disk full"}
//	if err := s.Publish(&alert); err != nil {
//	        log.Fatalf("publish: %v", err)
//	}
package subject
