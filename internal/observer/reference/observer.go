package reference

import "github.com/nginx/observer-bench/internal/observer"

// Observer receives the notifications of a Subject.
//
// Observers are attached by identity, so implementations must be pointer types.
// Attaching a value of a non-comparable type panics.
type Observer[S any, T observer.Tag] interface {
	// OnNotification is called synchronously for every broadcast of the Subject.
	// subject is a read-only view of the state of the Subject; tag tells which part of it changed.
	OnNotification(subject S, tag T)
}
