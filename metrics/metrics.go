// Package metrics exports drag-and-drop protocol counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dragzone"

// Collector implements dnd.Recorder.
type Collector struct {
	events   *prometheus.CounterVec
	sessions *prometheus.CounterVec
}

// New registers the counters with reg. A nil reg uses the default
// registerer.
func New(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Collector{
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Keyed drag-and-drop events dispatched.",
		}, []string{"key", "event"}),
		sessions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_total",
			Help:      "Drag sessions by outcome.",
		}, []string{"outcome"}),
	}
}

// RecordEvent counts one dispatched event.
func (c *Collector) RecordEvent(key, event string) {
	c.events.WithLabelValues(key, event).Inc()
}

// RecordSession counts one finished session.
func (c *Collector) RecordSession(outcome string) {
	c.sessions.WithLabelValues(outcome).Inc()
}
