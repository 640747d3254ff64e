// Package metrics exposes Prometheus instrumentation for the planning
// pipeline server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the pipeline server's Prometheus collectors.
type Metrics struct {
	registry            *prometheus.Registry
	requestsTotal       prometheus.Counter
	pipelineRunsTotal   *prometheus.CounterVec
	scriptsTotal        prometheus.Counter
	plansTotal          prometheus.Counter
	clarificationsTotal prometheus.Counter
	errorsTotal         prometheus.Counter
	activeSessions      prometheus.Gauge
}

// New creates and registers the pipeline collectors on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reelplan_requests_total",
		Help: "Total number of HTTP requests received",
	})
	pipelineRunsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "reelplan_pipeline_runs_total",
		Help: "Pipeline runs started, labelled by execution mode",
	}, []string{"mode"})
	scriptsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reelplan_scripts_generated_total",
		Help: "Scripts generated across all sessions",
	})
	plansTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reelplan_plans_generated_total",
		Help: "Production plans generated across all sessions",
	})
	clarificationsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reelplan_clarification_rounds_total",
		Help: "Clarification rounds answered by callers",
	})
	errorsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reelplan_errors_total",
		Help: "HTTP responses with error status (4xx or 5xx)",
	})
	activeSessions := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "reelplan_active_sessions",
		Help: "Planning sessions currently held in memory",
	})

	registry.MustRegister(
		requestsTotal,
		pipelineRunsTotal,
		scriptsTotal,
		plansTotal,
		clarificationsTotal,
		errorsTotal,
		activeSessions,
	)

	return &Metrics{
		registry:            registry,
		requestsTotal:       requestsTotal,
		pipelineRunsTotal:   pipelineRunsTotal,
		scriptsTotal:        scriptsTotal,
		plansTotal:          plansTotal,
		clarificationsTotal: clarificationsTotal,
		errorsTotal:         errorsTotal,
		activeSessions:      activeSessions,
	}
}

// IncRequests increments the total request counter.
func (m *Metrics) IncRequests() { m.requestsTotal.Inc() }

// IncPipelineRuns counts one run start for the given mode.
func (m *Metrics) IncPipelineRuns(mode string) {
	m.pipelineRunsTotal.WithLabelValues(mode).Inc()
}

// IncScripts counts one generated script.
func (m *Metrics) IncScripts() { m.scriptsTotal.Inc() }

// IncPlans counts one generated production plan.
func (m *Metrics) IncPlans() { m.plansTotal.Inc() }

// IncClarifications counts one answered clarification round.
func (m *Metrics) IncClarifications() { m.clarificationsTotal.Inc() }

// IncErrors increments the error counter.
func (m *Metrics) IncErrors() { m.errorsTotal.Inc() }

// SetActiveSessions sets the in-memory session gauge.
func (m *Metrics) SetActiveSessions(n int) { m.activeSessions.Set(float64(n)) }

// Handler serves the registry. updateGauges, when non-nil, runs before each
// scrape to refresh gauge values.
func (m *Metrics) Handler(updateGauges func()) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if updateGauges != nil {
			updateGauges()
		}
		promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}).ServeHTTP(w, r)
	})
}
