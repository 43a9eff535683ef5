package server

import (
	"labelsheet/internal/app"
	"labelsheet/internal/labels"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const resultSuccess = "success"

// Metrics counts label sheet generations on a private registry
type Metrics struct {
	registry    *prometheus.Registry
	generations *prometheus.CounterVec
	pages       prometheus.Counter
	athletes    prometheus.Counter
}

// NewMetrics registers the generation counters and the Go runtime collectors
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "labelsheet_generations_total",
			Help: "Label sheet generations by result (success or error kind).",
		}, []string{"result"}),
		pages: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "labelsheet_pages_total",
			Help: "Pages rendered across all successful generations.",
		}),
		athletes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "labelsheet_athletes_total",
			Help: "Athlete labels rendered across all successful generations.",
		}),
	}

	m.registry.MustRegister(
		m.generations,
		m.pages,
		m.athletes,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry exposes the registry for the /metrics handler
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Generated records a successful generation
func (m *Metrics) Generated(doc *app.Document) {
	m.generations.WithLabelValues(resultSuccess).Inc()
	m.pages.Add(float64(doc.Pages))
	m.athletes.Add(float64(doc.Athletes))
}

// Failed records a failed generation under its error kind
func (m *Metrics) Failed(kind labels.ErrorKind) {
	result := string(kind)
	if result == "" {
		result = "UNKNOWN"
	}
	m.generations.WithLabelValues(result).Inc()
}
