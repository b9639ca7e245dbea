package core

import "errors"

// Typed errors forming the failure taxonomy shared by the store, the
// synthesizer and all agents. Callers should match with errors.Is; every
// error returned from a write or analysis path wraps exactly one of these
// sentinels. Write-path errors guarantee the prior state is left untouched.
var (
	// ErrInvalidConfiguration indicates a malformed or out-of-range
	// Configuration (empty shipping methods, node count out of bounds,
	// unknown enum value). The previous state is preserved.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrEmptyNetworkState indicates an agent was invoked before any
	// Configuration has been submitted. Surfaced to the caller, never
	// retried internally.
	ErrEmptyNetworkState = errors.New("empty network state")

	// ErrUnknownScenarioType indicates a scenario request naming a type
	// outside the supported catalog. No partial simulation is emitted.
	ErrUnknownScenarioType = errors.New("unknown scenario type")

	// ErrInvalidDuration indicates a scenario request with a non-positive
	// duration.
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrInternalInvariant indicates a should-never-happen condition such as
	// a node utilization outside [0,100] after a perturbation. The offending
	// transition is discarded rather than committed.
	ErrInternalInvariant = errors.New("internal invariant violation")
)
