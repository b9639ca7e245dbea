// Package metrics exposes Prometheus instrumentation for the simulation
// core: state transitions (configuration replacements, ticks), agent
// invocations, and the live node status distribution. All collectors live in
// a Registry so tests and embedders can isolate metric state.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hupe1980/supplymesh/core"
)

// Registry holds all collectors for a SupplyMesh instance.
type Registry struct {
	ConfigUpdatesTotal prometheus.Counter
	StateVersion       prometheus.Gauge
	NodesByStatus      *prometheus.GaugeVec
	TicksTotal         *prometheus.CounterVec
	TickDuration       prometheus.Histogram
	AgentRunsTotal     *prometheus.CounterVec
	AgentRunDuration   *prometheus.HistogramVec

	registry *prometheus.Registry
}

// NewRegistry creates a registry with all collectors initialized and
// registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}

	r.ConfigUpdatesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "supplymesh",
		Name:      "config_updates_total",
		Help:      "Number of accepted configuration replacements.",
	})
	r.StateVersion = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "supplymesh",
		Name:      "state_version",
		Help:      "Current network state version.",
	})
	r.NodesByStatus = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "supplymesh",
		Name:      "nodes_by_status",
		Help:      "Node count per derived status.",
	}, []string{"status"})
	r.TicksTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "supplymesh",
		Name:      "ticks_total",
		Help:      "Perturbation ticks by outcome (committed, discarded, skipped).",
	}, []string{"outcome"})
	r.TickDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "supplymesh",
		Name:      "tick_duration_seconds",
		Help:      "Wall time per perturbation tick.",
		Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
	})
	r.AgentRunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "supplymesh",
		Name:      "agent_runs_total",
		Help:      "Agent invocations by agent name and outcome.",
	}, []string{"agent", "outcome"})
	r.AgentRunDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "supplymesh",
		Name:      "agent_run_duration_seconds",
		Help:      "Wall time per agent invocation.",
		Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
	}, []string{"agent"})

	r.registry.MustRegister(
		r.ConfigUpdatesTotal,
		r.StateVersion,
		r.NodesByStatus,
		r.TicksTotal,
		r.TickDuration,
		r.AgentRunsTotal,
		r.AgentRunDuration,
	)
	return r
}

// Handler returns an HTTP handler serving the registry in the Prometheus
// exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// RecordStateTransition updates the version gauge and status distribution
// after a configuration replacement or tick. Nil receivers are no-ops so
// instrumentation stays optional.
func (r *Registry) RecordStateTransition(version uint64, counts map[core.NodeStatus]int) {
	if r == nil {
		return
	}
	r.StateVersion.Set(float64(version))
	for _, status := range []core.NodeStatus{core.StatusHealthy, core.StatusWarning, core.StatusCritical} {
		r.NodesByStatus.WithLabelValues(string(status)).Set(float64(counts[status]))
	}
}

// RecordConfigUpdate counts an accepted configuration replacement.
func (r *Registry) RecordConfigUpdate() {
	if r == nil {
		return
	}
	r.ConfigUpdatesTotal.Inc()
}

// RecordTick counts a tick by outcome and observes its duration.
func (r *Registry) RecordTick(outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.TicksTotal.WithLabelValues(outcome).Inc()
	r.TickDuration.Observe(elapsed.Seconds())
}

// RecordAgentRun counts an agent invocation by outcome and observes its
// duration.
func (r *Registry) RecordAgentRun(agent, outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.AgentRunsTotal.WithLabelValues(agent, outcome).Inc()
	r.AgentRunDuration.WithLabelValues(agent).Observe(elapsed.Seconds())
}
