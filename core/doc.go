// Package core defines the shared domain model for SupplyMesh: the immutable
// Configuration that parameterizes network synthesis, the Node and
// NetworkState types describing a synthesized supply chain, the
// ResultEnvelope wrapper returned by every analysis agent, and the typed
// error taxonomy used across all write and analysis paths.
//
// Types in this package are plain values with no behavior beyond validation
// and derivation helpers. Ownership rules:
//   - The store package is the single writer of Node sequences.
//   - Agents receive NetworkState snapshots and never mutate them.
//   - ResultEnvelopes are owned by the caller once returned.
package core
