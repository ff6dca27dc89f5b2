package metrics

import "time"

// Namespace is the namespace of all metrics exposed by observer-bench.
const Namespace = "observer_bench"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . SubjectCollector

// SubjectCollector is an interface for the metrics of a Subject.
type SubjectCollector interface {
	// ObserverAttached records that an observer was attached. total is the number of attached observers afterwards.
	ObserverAttached(total int)
	// ObserverDetached records that an observer was detached. total is the number of attached observers afterwards.
	ObserverDetached(total int)
	// ObserveBroadcast records a finished broadcast of the given tag that reached delivered observers.
	ObserveBroadcast(tag string, delivered int, duration time.Duration)
}
