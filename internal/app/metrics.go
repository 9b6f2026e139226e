package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/specialistvlad/modgraph/internal/executor"
)

type metrics struct {
	registry *prometheus.Registry

	graphModules prometheus.Gauge
	graphEdges   prometheus.Gauge
	planDuration prometheus.Histogram
	executor     *executor.Metrics
}

func newMetrics(reg *prometheus.Registry) *metrics {
	m := &metrics{
		registry: reg,
		graphModules: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "modgraph_graph_modules",
				Help: "Number of modules in the last built graph.",
			},
		),
		graphEdges: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "modgraph_graph_edges",
				Help: "Number of dependency edges in the last built graph.",
			},
		),
		planDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "modgraph_plan_duration_seconds",
				Help:    "Time taken to check for cycles and order the graph.",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
	reg.MustRegister(
		m.graphModules,
		m.graphEdges,
		m.planDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m.executor = executor.NewMetrics(reg)
	return m
}
