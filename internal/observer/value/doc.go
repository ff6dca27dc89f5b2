// Package value implements the observer pattern with value semantics:
// an Observer is a concrete type wrapping any function with the notification signature,
// such as a plain function, a closure or a method value. No observer interface has to be implemented.
package value
