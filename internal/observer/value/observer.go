package value

import "github.com/nginx/observer-bench/internal/observer"

// NotificationFunc is called for every notification delivered to an Observer.
type NotificationFunc[S any, T observer.Tag] func(subject S, tag T)

// Observer forwards the notifications of a Subject to the function it wraps.
// A Subject identifies an Observer by its address: copies of an Observer are distinct observers
// sharing the same function.
// The zero value ignores all notifications.
type Observer[S any, T observer.Tag] struct {
	onNotification NotificationFunc[S, T]
}

// NewObserver creates a new Observer wrapping fn.
func NewObserver[S any, T observer.Tag](fn func(subject S, tag T)) *Observer[S, T] {
	return &Observer[S, T]{
		onNotification: fn,
	}
}

// OnNotification calls the wrapped function.
func (o *Observer[S, T]) OnNotification(subject S, tag T) {
	if o.onNotification != nil {
		o.onNotification(subject, tag)
	}
}

// Clone returns a new Observer wrapping the same function as o.
func (o *Observer[S, T]) Clone() *Observer[S, T] {
	c := *o
	return &c
}
