// Package store owns the live network state. It is the single writer: all
// mutation flows through SetConfiguration (full resynthesis) and Tick
// (bounded perturbation), each an atomic transition guarded by one lock.
// Reads hand out deep-copied snapshots, so concurrent readers always observe
// a fully formed state at exactly one version.
package store

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/hupe1980/supplymesh/core"
	"github.com/hupe1980/supplymesh/logging"
	"github.com/hupe1980/supplymesh/metrics"
	"github.com/hupe1980/supplymesh/policy"
	"github.com/hupe1980/supplymesh/synth"
)

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// Policy supplies the tunable coefficients; defaults to policy.Default().
	Policy policy.Policy
	// Logger defaults to NoOpLogger.
	Logger logging.Logger
	// Metrics is optional; nil disables instrumentation.
	Metrics *metrics.Registry
	// Seed fixes the random streams for synthesis and perturbation, making
	// the whole lifecycle reproducible. Zero means time-derived seeding.
	Seed int64
}

// Store is the Network State Store. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	state   core.NetworkState
	synth   *synth.Synthesizer
	policy  policy.Policy
	logger  logging.Logger
	metrics *metrics.Registry
	rng     *rand.Rand
	seed    int64
	seeded  bool
}

// New constructs an empty Store with optional overrides. The store starts
// with no network state; agents invoked before the first SetConfiguration
// fail with core.ErrEmptyNetworkState.
func New(optFns ...func(o *Options)) *Store {
	opts := Options{
		Policy: policy.Default(),
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	seed := opts.Seed
	seeded := seed != 0
	if !seeded {
		seed = time.Now().UnixNano()
	}

	return &Store{
		synth:   synth.New(opts.Policy),
		policy:  opts.Policy,
		logger:  opts.Logger,
		metrics: opts.Metrics,
		rng:     rand.New(rand.NewSource(seed)),
		seed:    seed,
		seeded:  seeded,
	}
}

// SetConfiguration validates cfg, synthesizes a fresh node sequence and
// atomically replaces the entire state. On any error the prior state is left
// untouched. The returned version signals caches held by callers to
// invalidate. The synthesis seed is time-derived unless the store was
// constructed with a fixed seed.
func (s *Store) SetConfiguration(cfg core.Configuration) (uint64, error) {
	seed := s.seed
	if !s.seeded {
		seed = time.Now().UnixNano()
	}
	return s.SetConfigurationSeeded(cfg, seed)
}

// SetConfigurationSeeded is SetConfiguration with an explicit synthesis
// seed: identical (cfg, seed) pairs produce identical node sequences.
func (s *Store) SetConfigurationSeeded(cfg core.Configuration, seed int64) (uint64, error) {
	start := time.Now()

	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	nodes, err := s.synth.Synthesize(cfg, seed)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = core.NetworkState{
		Nodes:       nodes,
		Config:      cfg.Clone(),
		Version:     s.state.Version + 1,
		LastUpdated: time.Now().UTC(),
	}

	s.metrics.RecordConfigUpdate()
	s.metrics.RecordStateTransition(s.state.Version, s.state.CountByStatus())
	if sl, ok := s.logger.(*logging.SimLogger); ok {
		sl.LogSynthesis(s.state.Version, len(nodes), seed, time.Since(start))
	} else {
		s.logger.Info("Network synthesized", "state_version", s.state.Version, "nodes", len(nodes), "seed", seed)
	}
	return s.state.Version, nil
}

// Snapshot returns a deep copy of the current state. The copy reflects
// exactly one version; callers may hold it across ticks safely. An empty
// snapshot (Version 0) means no configuration has been submitted yet.
func (s *Store) Snapshot() core.NetworkState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Configuration returns the current effective configuration, or
// core.ErrEmptyNetworkState before the first submission.
func (s *Store) Configuration() (core.Configuration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.Empty() {
		return core.Configuration{}, core.ErrEmptyNetworkState
	}
	return s.state.Config.Clone(), nil
}

// Tick applies one bounded perturbation: every node's utilization moves by a
// random delta within ±MaxUtilizationDelta (clamped to [0,100]) and its
// status is recomputed; with a small probability (scaled up under the High
// risk profile) a node flips into Critical, distributors additionally
// receiving a delay. Node count and identities never change.
//
// The perturbation is computed on a copy and committed only if every
// invariant holds; a violating tick is discarded and reported as
// core.ErrInternalInvariant. Ticking before any configuration is a no-op
// returning core.ErrEmptyNetworkState.
func (s *Store) Tick() error {
	start := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Empty() {
		s.metrics.RecordTick("skipped", time.Since(start))
		return core.ErrEmptyNetworkState
	}

	flipProb := s.policy.Tick.CriticalFlipProbability
	if s.state.Config.RiskProfile == core.RiskHigh {
		flipProb *= s.policy.Tick.HighRiskFlipMultiplier
	}

	next := core.CloneNodes(s.state.Nodes)
	flipped := 0
	for i := range next {
		s.perturbNode(&next[i], flipProb, &flipped)
	}

	if err := checkInvariants(next, s.state.Nodes); err != nil {
		s.metrics.RecordTick("discarded", time.Since(start))
		if sl, ok := s.logger.(*logging.SimLogger); ok {
			sl.LogTick(s.state.Version, flipped, time.Since(start), err)
		} else {
			s.logger.Error("Tick discarded", "error", err.Error())
		}
		return err
	}

	s.state.Nodes = next
	s.state.Version++
	s.state.LastUpdated = time.Now().UTC()

	s.metrics.RecordTick("committed", time.Since(start))
	s.metrics.RecordStateTransition(s.state.Version, s.state.CountByStatus())
	if sl, ok := s.logger.(*logging.SimLogger); ok {
		sl.LogTick(s.state.Version, flipped, time.Since(start), nil)
	}
	return nil
}

// perturbNode mutates a single node in place. Caller holds the write lock.
func (s *Store) perturbNode(n *core.Node, flipProb float64, flipped *int) {
	delta := (s.rng.Float64()*2 - 1) * s.policy.Tick.MaxUtilizationDelta
	n.UtilizationPct = clamp(n.UtilizationPct+delta, 0, 100)

	// Active delays recover one day per tick.
	if n.DelayDays != nil && *n.DelayDays > 0 {
		*n.DelayDays--
	}

	if s.rng.Float64() < flipProb {
		*flipped++
		// Disruption flip: push utilization into a critical band.
		if s.rng.Intn(2) == 0 {
			n.UtilizationPct = 10 + s.rng.Float64()*29
		} else {
			n.UtilizationPct = 98.2 + s.rng.Float64()*1.8
		}
		if n.DelayDays != nil {
			span := s.policy.Tick.FlipDelayDaysMax - s.policy.Tick.FlipDelayDaysMin
			*n.DelayDays = s.policy.Tick.FlipDelayDaysMin + s.rng.Intn(span+1)
		}
	}

	n.Status = core.DeriveStatus(n.UtilizationPct, n.ActiveDelayDays())
}

// checkInvariants verifies a perturbed node set before commit: same length,
// stable identities and types, metrics in range.
func checkInvariants(next, prev []core.Node) error {
	if len(next) != len(prev) {
		return fmt.Errorf("%w: node count changed from %d to %d", core.ErrInternalInvariant, len(prev), len(next))
	}
	for i, n := range next {
		if n.ID != prev[i].ID || n.Type != prev[i].Type {
			return fmt.Errorf("%w: node identity changed at index %d", core.ErrInternalInvariant, i)
		}
		if n.UtilizationPct < 0 || n.UtilizationPct > 100 {
			return fmt.Errorf("%w: node %s utilization %.2f out of range", core.ErrInternalInvariant, n.ID, n.UtilizationPct)
		}
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
