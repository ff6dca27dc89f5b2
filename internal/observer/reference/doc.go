// Package reference implements the observer pattern with reference semantics:
// observers implement the Observer interface and the Subject dispatches notifications to them dynamically.
package reference
