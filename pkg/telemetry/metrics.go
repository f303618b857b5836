// Package telemetry exposes Prometheus collectors for tab panels.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tabpanel"

// Metrics holds the collectors recorded by tab widgets. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	SyncDropped      *prometheus.CounterVec
	SyncUnknown      *prometheus.CounterVec
	Activations      prometheus.Counter
	FocusTransitions *prometheus.CounterVec
	Tabs             prometheus.Gauge
}

// NewMetrics registers the collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SyncDropped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_messages_dropped_total",
			Help:      "Sync messages discarded because a newer one was pending.",
		}, []string{"queue"}),
		SyncUnknown: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_unknown_keys_total",
			Help:      "Sync messages naming a key the receiver does not hold.",
		}, []string{"queue"}),
		Activations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tab_activations_total",
			Help:      "Tab activations requested from the bar.",
		}),
		FocusTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "focus_transitions_total",
			Help:      "Focus moves between the bar and content regions.",
		}, []string{"to"}),
		Tabs: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tabs",
			Help:      "Tabs currently held by the panel.",
		}),
	}
}

func (m *Metrics) Dropped(queue string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.SyncDropped.WithLabelValues(queue).Add(float64(n))
}

func (m *Metrics) Unknown(queue string) {
	if m == nil {
		return
	}
	m.SyncUnknown.WithLabelValues(queue).Inc()
}

func (m *Metrics) Activated() {
	if m == nil {
		return
	}
	m.Activations.Inc()
}

func (m *Metrics) FocusMoved(to string) {
	if m == nil {
		return
	}
	m.FocusTransitions.WithLabelValues(to).Inc()
}

func (m *Metrics) SetTabs(n int) {
	if m == nil {
		return
	}
	m.Tabs.Set(float64(n))
}
