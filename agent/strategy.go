package agent

import (
	"fmt"

	"github.com/hupe1980/supplymesh/core"
	"github.com/hupe1980/supplymesh/policy"
)

// StrategyAgentName is the Strategy agent's stable identifier.
const StrategyAgentName = "strategy"

// maxStrategies caps the number of returned strategies.
const maxStrategies = 3

// Strategy is one ranked mitigation strategy.
type Strategy struct {
	Name            string        `json:"name"`
	Priority        string        `json:"priority"`
	Addresses       Weakness      `json:"addresses"`
	Timeframe       string        `json:"timeframe"`
	EstimatedCost   float64       `json:"estimatedCost"`
	Currency        core.Currency `json:"currency"`
	ExpectedBenefit string        `json:"expectedBenefit"`
	BenefitDeltaPct float64       `json:"benefitDeltaPct"`
	ActionItems     []string      `json:"actionItems"`
	Score           float64       `json:"score"`
}

// StrategyReport is the Strategy agent's envelope payload.
type StrategyReport struct {
	HealthScore      float64              `json:"healthScore"`
	ComponentScores  map[Weakness]float64 `json:"componentScores"`
	DominantWeakness Weakness             `json:"dominantWeakness"`
	Strategies       []Strategy           `json:"strategies"`
}

// StrategyAgent scores a fixed candidate catalog against the network's
// current health signals and returns the top strategies.
type StrategyAgent struct {
	BaseAgent
}

// NewStrategyAgent constructs a StrategyAgent with the given policy.
func NewStrategyAgent(p policy.Policy) *StrategyAgent {
	return &StrategyAgent{BaseAgent: NewBaseAgent(
		StrategyAgentName,
		"Ranks mitigation strategies against the network's dominant weaknesses",
		p,
	)}
}

// Recommend computes the network health score and returns up to three
// strategies sorted by descending score, ties broken by lower estimated
// cost. Priority is High only for strategies addressing a weakness
// implicated by a Critical node.
func (a *StrategyAgent) Recommend(state core.NetworkState) (core.ResultEnvelope, error) {
	if state.Empty() {
		return core.ResultEnvelope{}, core.ErrEmptyNetworkState
	}

	sig := computeHealthSignals(state.Nodes, state.Config, a.Policy())
	ranked := rankCandidates(sig)
	if len(ranked) > maxStrategies {
		ranked = ranked[:maxStrategies]
	}

	report := StrategyReport{
		HealthScore:      sig.HealthScore,
		ComponentScores:  sig.Components,
		DominantWeakness: sig.Dominant,
		Strategies:       make([]Strategy, 0, len(ranked)),
	}
	for _, sc := range ranked {
		report.Strategies = append(report.Strategies, Strategy{
			Name:            sc.name,
			Priority:        sc.priority,
			Addresses:       sc.addresses,
			Timeframe:       sc.timeframe,
			EstimatedCost:   a.Policy().ConvertUSD(sc.baseCostUSD, state.Config.Currency),
			Currency:        state.Config.Currency,
			ExpectedBenefit: fmt.Sprintf("%s (≈%.0f%% availability improvement)", sc.benefit, sc.benefitDeltaPct),
			BenefitDeltaPct: sc.benefitDeltaPct,
			ActionItems:     append([]string(nil), sc.actionItems...),
			Score:           sc.score,
		})
	}

	return core.NewResultEnvelope(a.Name(), state.Version, 0.85, report), nil
}
