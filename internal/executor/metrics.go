package executor

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/specialistvlad/modgraph/internal/node"
)

// Metrics are the executor's Prometheus collectors. A nil *Metrics records nothing.
type Metrics struct {
	modules  *prometheus.CounterVec
	inFlight prometheus.Gauge
	duration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg when reg is
// not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		modules: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "modgraph_executor_modules_total",
				Help: "Number of modules that reached a final state, by result.",
			},
			[]string{"result"},
		),
		inFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "modgraph_executor_modules_in_flight",
				Help: "Number of modules currently being compiled.",
			},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "modgraph_executor_module_duration_seconds",
				Help:    "Time taken to compile one module.",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
	if reg != nil {
		reg.MustRegister(m.modules, m.inFlight, m.duration)
	}
	return m
}

func (m *Metrics) started() {
	if m == nil {
		return
	}
	m.inFlight.Inc()
}

func (m *Metrics) finished(status node.Status, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.inFlight.Dec()
	m.duration.Observe(elapsed.Seconds())
	m.modules.WithLabelValues(status.String()).Inc()
}

func (m *Metrics) skipped() {
	if m == nil {
		return
	}
	m.modules.WithLabelValues(node.StatusSkipped.String()).Inc()
}
