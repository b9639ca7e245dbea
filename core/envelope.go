package core

import (
	"time"

	"github.com/google/uuid"
)

// ResultEnvelope is the common wrapper returned by every analysis agent.
// One envelope per invocation; the caller owns retention — envelopes are
// never persisted by the core.
//
// Confidence is in [0,1]. Agents performing a deterministic read of current
// state report 1.0; agents projecting forward (scenario simulation) report
// less. Payload is the agent-specific result record; it is either fully
// populated or the invocation failed with a typed error — envelopes are
// never partially filled.
type ResultEnvelope struct {
	ID           string    `json:"id"`
	AgentName    string    `json:"agentName"`
	GeneratedAt  time.Time `json:"generatedAt"`
	StateVersion uint64    `json:"stateVersion"`
	Confidence   float64   `json:"confidenceScore"`
	Payload      any       `json:"payload"`
}

// NewResultEnvelope stamps a fresh envelope for the given agent, bound to the
// state version the agent analyzed.
func NewResultEnvelope(agentName string, stateVersion uint64, confidence float64, payload any) ResultEnvelope {
	return ResultEnvelope{
		ID:           NewID(),
		AgentName:    agentName,
		GeneratedAt:  time.Now().UTC(),
		StateVersion: stateVersion,
		Confidence:   confidence,
		Payload:      payload,
	}
}

// NewID generates a unique identifier for envelopes and invocations.
func NewID() string { return uuid.NewString() }
