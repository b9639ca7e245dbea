package agent

import "github.com/hupe1980/supplymesh/policy"

// Agent is the minimal identity contract shared by all analysis agents.
// Concrete agents add their typed entry point (Analyze, Simulate, Recommend,
// AssessESG) on top.
type Agent interface {
	Name() string
	Description() string
}

// BaseAgent bundles shared identity and policy access. Embed it in concrete
// agent implementations. Agents are stateless beyond their coefficients and
// safe for concurrent use.
type BaseAgent struct {
	name        string
	description string
	policy      policy.Policy
}

// NewBaseAgent constructs a BaseAgent.
func NewBaseAgent(name, description string, p policy.Policy) BaseAgent {
	return BaseAgent{name: name, description: description, policy: p}
}

// Name returns the agent's stable external identifier.
func (b *BaseAgent) Name() string { return b.name }

// Description returns a human-readable summary of the agent's purpose.
func (b *BaseAgent) Description() string { return b.description }

// Policy returns the coefficients the agent scores with.
func (b *BaseAgent) Policy() policy.Policy { return b.policy }
