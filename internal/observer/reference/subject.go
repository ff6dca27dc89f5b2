package reference

import "github.com/nginx/observer-bench/internal/observer"

// Subject holds the attached Observers and broadcasts notifications to them.
// The zero value is an empty, uninstrumented Subject ready for use.
// A Subject is not safe for concurrent use.
type Subject[S any, T observer.Tag] struct {
	observers observer.Registry[Observer[S, T]]
}

// NewSubject creates a new Subject with the given instrumentation options.
func NewSubject[S any, T observer.Tag](opts ...observer.Option) *Subject[S, T] {
	return &Subject[S, T]{
		observers: observer.NewRegistry[Observer[S, T]](opts...),
	}
}

// AttachObserver attaches the observer. Attaching an attached observer or a nil observer has no effect.
func (s *Subject[S, T]) AttachObserver(o Observer[S, T]) {
	if o == nil {
		return
	}

	s.observers.Add(o)
}

// DetachObserver detaches the observer. Detaching an observer that is not attached has no effect.
// Once DetachObserver returns, the observer is not notified anymore, including by a broadcast in progress.
func (s *Subject[S, T]) DetachObserver(o Observer[S, T]) {
	if o == nil {
		return
	}

	s.observers.Remove(o)
}

// HasObserver tells if the observer is attached.
func (s *Subject[S, T]) HasObserver(o Observer[S, T]) bool {
	return o != nil && s.observers.Has(o)
}

// ObserverCount returns the number of attached observers.
func (s *Subject[S, T]) ObserverCount() int {
	return s.observers.Len()
}

// SendNotification notifies every attached observer of the change of the tagged part of subject.
// It is meant to be called by the type owning the Subject right after it changed its state.
// Observers attached during the broadcast are not notified by it.
func (s *Subject[S, T]) SendNotification(subject S, tag T) {
	s.observers.Broadcast(tag, func(o Observer[S, T]) {
		o.OnNotification(subject, tag)
	})
}
