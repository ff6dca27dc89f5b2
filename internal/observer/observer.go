// Package observer contains the parts of the observer pattern shared by the reference semantics
// (package reference) and the value semantics (package value) implementations: the Tag constraint,
// the Registry of observer handles and the instrumentation options of a Subject.
package observer

import (
	"github.com/go-logr/logr"

	"github.com/nginx/observer-bench/internal/metrics"
	"github.com/nginx/observer-bench/internal/metrics/collectors"
)

// Tag identifies which part of a subject's state changed.
// Tags are small closed enumerations, compared by value.
type Tag interface {
	comparable
	String() string
}

type config struct {
	logger    logr.Logger
	collector metrics.SubjectCollector
}

// Option defines an instrumentation option of a Subject.
type Option func(*config)

// WithLogger makes the Subject log attach and detach operations at V(1) and broadcasts at V(2).
func WithLogger(logger logr.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithMetricsCollector makes the Subject report its activity to the collector.
func WithMetricsCollector(collector metrics.SubjectCollector) Option {
	return func(cfg *config) {
		cfg.collector = collector
	}
}

func defaultConfig() config {
	return config{
		logger:    logr.Discard(),
		collector: collectors.NewSubjectNoopCollector(),
	}
}
