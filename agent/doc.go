// Package agent implements the four cooperating analysis agents that reason
// over a network state snapshot: Info (anomaly detection), Scenario
// (disruption impact simulation), Strategy (ranked mitigation strategies)
// and Impact (ESG assessment).
//
// Agents are pure readers: every invocation takes an immutable snapshot and
// returns a fully populated core.ResultEnvelope or a typed error, never a
// partial result. Scenario mitigations and Strategy rankings share one
// scoring basis (scoring.go), so the two agents never disagree about the
// value of a candidate action, and all agents derive node health from the
// same snapshot statuses.
package agent
