package observer

import (
	"fmt"
	"time"

	"k8s.io/apimachinery/pkg/util/sets"
)

// Registry is the set of observer handles attached to a Subject.
// Handles are compared with ==, so a handle is identified by its address for pointer types.
//
// Broadcasts iterate over a snapshot of the set taken when the broadcast starts:
// - A handle added during a broadcast is first called by the next broadcast.
// - A handle removed during a broadcast is no longer called, even if it was part of the snapshot.
// The snapshot is cached until the set changes, so broadcasts over a stable set do not allocate.
//
// The zero value is an empty, uninstrumented Registry ready for use.
// A Registry is not safe for concurrent use.
type Registry[H comparable] struct {
	handles  sets.Set[H]
	snapshot []H
	// removals counts the removed handles. A broadcast compares it to the value it started with
	// to find out if it has to check the membership of the handles of its snapshot.
	removals uint64

	cfg        config
	configured bool
}

// NewRegistry creates a new Registry with the given instrumentation options.
func NewRegistry[H comparable](opts ...Option) Registry[H] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return Registry[H]{
		handles:    sets.New[H](),
		cfg:        cfg,
		configured: true,
	}
}

// Add adds the handle to the set. It returns false if the handle was already in the set.
func (r *Registry[H]) Add(handle H) bool {
	if r.handles.Has(handle) {
		return false
	}

	if r.handles == nil {
		r.handles = sets.New[H]()
	}

	r.handles.Insert(handle)
	r.snapshot = nil

	if r.configured {
		r.cfg.collector.ObserverAttached(r.handles.Len())

		if logger := r.cfg.logger.V(1); logger.Enabled() {
			logger.Info("Attached observer", "observers", r.handles.Len())
		}
	}

	return true
}

// Remove removes the handle from the set. It returns false if the handle was not in the set.
func (r *Registry[H]) Remove(handle H) bool {
	if !r.handles.Has(handle) {
		return false
	}

	r.handles.Delete(handle)
	r.snapshot = nil
	r.removals++

	if r.configured {
		r.cfg.collector.ObserverDetached(r.handles.Len())

		if logger := r.cfg.logger.V(1); logger.Enabled() {
			logger.Info("Detached observer", "observers", r.handles.Len())
		}
	}

	return true
}

// Has tells if the handle is in the set.
func (r *Registry[H]) Has(handle H) bool {
	return r.handles.Has(handle)
}

// Len returns the number of handles in the set.
func (r *Registry[H]) Len() int {
	return r.handles.Len()
}

// Broadcast calls notify for every handle of the set. The order of the calls is unspecified.
// It returns the number of handles notify was called for.
func (r *Registry[H]) Broadcast(tag fmt.Stringer, notify func(H)) int {
	var start time.Time
	if r.configured {
		start = time.Now()
	}

	if r.snapshot == nil && r.handles.Len() > 0 {
		r.snapshot = r.handles.UnsortedList()
	}

	snapshot := r.snapshot
	removals := r.removals
	delivered := 0

	for _, handle := range snapshot {
		if r.removals != removals && !r.handles.Has(handle) {
			continue
		}

		notify(handle)
		delivered++
	}

	if r.configured {
		r.cfg.collector.ObserveBroadcast(tag.String(), delivered, time.Since(start))

		if logger := r.cfg.logger.V(2); logger.Enabled() {
			logger.Info("Sent notification", "tag", tag.String(), "delivered", delivered)
		}
	}

	return delivered
}
