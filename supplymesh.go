// Package supplymesh provides a high-level façade over the network state
// store and the four analysis agents (info, scenario, strategy, impact).
// Most applications interact with this package by:
//  1. Creating a Mesh via New() (optionally overriding policy, logger,
//     metrics registry and seed)
//  2. Submitting a Configuration, which synthesizes the supply chain network
//  3. Running agents against consistent snapshots of the live state
//
// The façade delegates state ownership to store.Store while keeping setup and
// usage ergonomics concise. All defaults are safe for local development and
// testing; production deployments typically supply a structured logger, a
// metrics registry and a tuned policy.
package supplymesh

import (
	"time"

	"github.com/hupe1980/supplymesh/agent"
	"github.com/hupe1980/supplymesh/core"
	"github.com/hupe1980/supplymesh/logging"
	"github.com/hupe1980/supplymesh/metrics"
	"github.com/hupe1980/supplymesh/policy"
	"github.com/hupe1980/supplymesh/store"
)

// Options configures the Mesh instance.
type Options struct {
	// Policy supplies every tunable coefficient of the simulation and the
	// agents. Defaults to policy.Default().
	Policy policy.Policy

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger

	// Metrics is the optional Prometheus registry; nil disables
	// instrumentation.
	Metrics *metrics.Registry

	// Seed fixes the random streams for synthesis and perturbation so a whole
	// run is reproducible. Zero means time-derived seeding.
	Seed int64
}

// Mesh is the high-level façade aggregating the state store and the agents.
type Mesh struct {
	opts     Options
	store    *store.Store
	info     *agent.InfoAgent
	scenario *agent.ScenarioAgent
	strategy *agent.StrategyAgent
	impact   *agent.ImpactAgent
}

// New creates a new Mesh instance with optional overrides. The mesh starts
// empty; agent runs before the first PutConfiguration fail with
// core.ErrEmptyNetworkState.
func New(optFns ...func(o *Options)) *Mesh {
	opts := Options{
		Policy: policy.Default(),
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	st := store.New(func(o *store.Options) {
		o.Policy = opts.Policy
		o.Logger = opts.Logger
		o.Metrics = opts.Metrics
		o.Seed = opts.Seed
	})

	return &Mesh{
		opts:     opts,
		store:    st,
		info:     agent.NewInfoAgent(opts.Policy),
		scenario: agent.NewScenarioAgent(opts.Policy),
		strategy: agent.NewStrategyAgent(opts.Policy),
		impact:   agent.NewImpactAgent(opts.Policy),
	}
}

// Store exposes the underlying state store, e.g. for attaching a Ticker.
func (m *Mesh) Store() *store.Store { return m.store }

// Agents returns the mesh's analysis agents, e.g. for discovery surfaces that
// list agent names and descriptions.
func (m *Mesh) Agents() []agent.Agent {
	return []agent.Agent{m.info, m.scenario, m.strategy, m.impact}
}

// PutConfiguration validates cfg and atomically replaces the network with a
// freshly synthesized one. Returns the new state version.
func (m *Mesh) PutConfiguration(cfg core.Configuration) (uint64, error) {
	return m.store.SetConfiguration(cfg)
}

// PutConfigurationSeeded is PutConfiguration with an explicit synthesis seed:
// identical (cfg, seed) pairs produce identical networks.
func (m *Mesh) PutConfigurationSeeded(cfg core.Configuration, seed int64) (uint64, error) {
	return m.store.SetConfigurationSeeded(cfg, seed)
}

// Configuration returns the current effective configuration.
func (m *Mesh) Configuration() (core.Configuration, error) {
	return m.store.Configuration()
}

// NetworkState returns a deep-copied snapshot of the current state.
func (m *Mesh) NetworkState() core.NetworkState {
	return m.store.Snapshot()
}

// Tick applies one bounded perturbation to the live network.
func (m *Mesh) Tick() error {
	return m.store.Tick()
}

// RunInfo analyzes the current snapshot for anomalies and overall health.
func (m *Mesh) RunInfo() (core.ResultEnvelope, error) {
	return m.run(agent.InfoAgentName, func(state core.NetworkState) (core.ResultEnvelope, error) {
		return m.info.Analyze(state)
	})
}

// RunScenario simulates a disruption scenario against the current snapshot.
func (m *Mesh) RunScenario(req agent.ScenarioRequest) (core.ResultEnvelope, error) {
	return m.run(agent.ScenarioAgentName, func(state core.NetworkState) (core.ResultEnvelope, error) {
		return m.scenario.Simulate(state, req)
	})
}

// RunStrategy ranks mitigation strategies against the current snapshot.
func (m *Mesh) RunStrategy() (core.ResultEnvelope, error) {
	return m.run(agent.StrategyAgentName, func(state core.NetworkState) (core.ResultEnvelope, error) {
		return m.strategy.Recommend(state)
	})
}

// RunImpact assesses the ESG impact of the current snapshot.
func (m *Mesh) RunImpact() (core.ResultEnvelope, error) {
	return m.run(agent.ImpactAgentName, func(state core.NetworkState) (core.ResultEnvelope, error) {
		return m.impact.AssessESG(state)
	})
}

// run takes one snapshot, hands it to the agent and instruments the outcome.
// Every agent invocation observes exactly one state version.
func (m *Mesh) run(name string, fn func(core.NetworkState) (core.ResultEnvelope, error)) (core.ResultEnvelope, error) {
	start := time.Now()
	state := m.store.Snapshot()

	env, err := fn(state)

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.opts.Metrics.RecordAgentRun(name, outcome, time.Since(start))
	if sl, ok := m.opts.Logger.(*logging.SimLogger); ok {
		sl.LogAgentRun(name, state.Version, time.Since(start), err)
	} else if err != nil {
		m.opts.Logger.Error("Agent run failed", "agent", name, "error", err.Error())
	}
	return env, err
}
