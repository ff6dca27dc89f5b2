package collectors

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nginx/observer-bench/internal/metrics"
)

// SubjectCollector implements metrics.SubjectCollector interface and prometheus.Collector interface.
type SubjectCollector struct {
	// Metrics
	attachedTotal     prometheus.Counter
	detachedTotal     prometheus.Counter
	observers         prometheus.Gauge
	notificationTotal *prometheus.CounterVec
	broadcastDuration *prometheus.HistogramVec
}

// NewSubjectCollector creates a new SubjectCollector.
func NewSubjectCollector(constLabels map[string]string) *SubjectCollector {
	return &SubjectCollector{
		attachedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name:        "observers_attached_total",
				Namespace:   metrics.Namespace,
				Help:        "Number of observers attached to the subject",
				ConstLabels: constLabels,
			},
		),
		detachedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name:        "observers_detached_total",
				Namespace:   metrics.Namespace,
				Help:        "Number of observers detached from the subject",
				ConstLabels: constLabels,
			},
		),
		observers: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "observers",
				Namespace:   metrics.Namespace,
				Help:        "Number of observers currently attached to the subject",
				ConstLabels: constLabels,
			},
		),
		notificationTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "notifications_total",
				Namespace:   metrics.Namespace,
				Help:        "Number of notifications delivered to observers",
				ConstLabels: constLabels,
			},
			[]string{"tag"},
		),
		broadcastDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "broadcast_milliseconds",
				Namespace:   metrics.Namespace,
				Help:        "Duration in milliseconds of a broadcast to all attached observers",
				ConstLabels: constLabels,
				Buckets:     []float64{0.01, 0.1, 1, 10, 100, 1000},
			},
			[]string{"tag"},
		),
	}
}

// ObserverAttached increments the counter of attached observers and updates the observers gauge.
func (c *SubjectCollector) ObserverAttached(total int) {
	c.attachedTotal.Inc()
	c.observers.Set(float64(total))
}

// ObserverDetached increments the counter of detached observers and updates the observers gauge.
func (c *SubjectCollector) ObserverDetached(total int) {
	c.detachedTotal.Inc()
	c.observers.Set(float64(total))
}

// ObserveBroadcast counts the delivered notifications and adds the broadcast time to the histogram.
func (c *SubjectCollector) ObserveBroadcast(tag string, delivered int, duration time.Duration) {
	c.notificationTotal.WithLabelValues(tag).Add(float64(delivered))
	c.broadcastDuration.WithLabelValues(tag).Observe(float64(duration) / float64(time.Millisecond))
}

// Describe implements prometheus.Collector interface Describe method.
func (c *SubjectCollector) Describe(ch chan<- *prometheus.Desc) {
	c.attachedTotal.Describe(ch)
	c.detachedTotal.Describe(ch)
	c.observers.Describe(ch)
	c.notificationTotal.Describe(ch)
	c.broadcastDuration.Describe(ch)
}

// Collect implements the prometheus.Collector interface Collect method.
func (c *SubjectCollector) Collect(ch chan<- prometheus.Metric) {
	c.attachedTotal.Collect(ch)
	c.detachedTotal.Collect(ch)
	c.observers.Collect(ch)
	c.notificationTotal.Collect(ch)
	c.broadcastDuration.Collect(ch)
}

// SubjectNoopCollector used to initialize the SubjectCollector when metrics are disabled to avoid nil pointer errors.
type SubjectNoopCollector struct{}

// NewSubjectNoopCollector creates a no-op collector that implements metrics.SubjectCollector interface.
func NewSubjectNoopCollector() *SubjectNoopCollector {
	return &SubjectNoopCollector{}
}

// ObserverAttached implements a no-op ObserverAttached.
func (c *SubjectNoopCollector) ObserverAttached(_ int) {}

// ObserverDetached implements a no-op ObserverDetached.
func (c *SubjectNoopCollector) ObserverDetached(_ int) {}

// ObserveBroadcast implements a no-op ObserveBroadcast.
func (c *SubjectNoopCollector) ObserveBroadcast(_ string, _ int, _ time.Duration) {}
