package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/supplymesh/core"
	"github.com/hupe1980/supplymesh/internal/testutil"
	"github.com/hupe1980/supplymesh/policy"
)

func TestStrategyAgent_EmptyState(t *testing.T) {
	a := NewStrategyAgent(policy.Default())
	_, err := a.Recommend(core.NetworkState{})
	assert.ErrorIs(t, err, core.ErrEmptyNetworkState)
}

func TestStrategyAgent_ReturnsTopThreeSortedByScore(t *testing.T) {
	state := testutil.NewStateBuilder().
		HealthyNode("SUP-01", core.NodeSupplier).
		WarningNode("MFG-01", core.NodeManufacturer).
		CriticalLowNode("WHS-01", core.NodeWarehouse).
		HealthyNode("RTL-01", core.NodeRetailer).
		Build()

	a := NewStrategyAgent(policy.Default())
	env, err := a.Recommend(state)
	require.NoError(t, err)

	assert.Equal(t, StrategyAgentName, env.AgentName)
	assert.Equal(t, 0.85, env.Confidence)

	report := env.Payload.(StrategyReport)
	require.Len(t, report.Strategies, 3)
	for i := 1; i < len(report.Strategies); i++ {
		assert.GreaterOrEqual(t,
			report.Strategies[i-1].Score,
			report.Strategies[i].Score,
			"strategies must be sorted by descending score")
	}
	for _, s := range report.Strategies {
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Timeframe)
		assert.NotEmpty(t, s.ActionItems)
		assert.Greater(t, s.EstimatedCost, 0.0)
	}
}

func TestStrategyAgent_HighPriorityRequiresCriticalNode(t *testing.T) {
	a := NewStrategyAgent(policy.Default())

	healthy := testutil.NewStateBuilder().
		HealthyNode("SUP-01", core.NodeSupplier).
		HealthyNode("MFG-01", core.NodeManufacturer).
		HealthyNode("RTL-01", core.NodeRetailer).
		Build()

	env, err := a.Recommend(healthy)
	require.NoError(t, err)
	for _, s := range env.Payload.(StrategyReport).Strategies {
		assert.NotEqual(t, PriorityHigh, s.Priority,
			"a fully healthy network never warrants a High priority strategy")
	}

	// An under-utilized critical node implicates node health; strategies
	// addressing it must lead the ranking at High priority.
	critical := testutil.NewStateBuilder().
		HealthyNode("SUP-01", core.NodeSupplier).
		HealthyNode("MFG-01", core.NodeManufacturer).
		CriticalLowNode("RTL-01", core.NodeRetailer).
		Build()

	env, err = a.Recommend(critical)
	require.NoError(t, err)
	report := env.Payload.(StrategyReport)
	require.NotEmpty(t, report.Strategies)
	assert.Equal(t, PriorityHigh, report.Strategies[0].Priority)
	assert.Equal(t, WeaknessStatus, report.Strategies[0].Addresses)
}

func TestStrategyAgent_DominantWeaknessIsWeakestComponent(t *testing.T) {
	// Low risk, three shipping methods, all nodes healthy: diversity (60) is
	// the weakest component.
	state := testutil.NewStateBuilder().
		HealthyNode("SUP-01", core.NodeSupplier).
		HealthyNode("MFG-01", core.NodeManufacturer).
		HealthyNode("RTL-01", core.NodeRetailer).
		Build()

	a := NewStrategyAgent(policy.Default())
	env, err := a.Recommend(state)
	require.NoError(t, err)
	report := env.Payload.(StrategyReport)

	assert.Equal(t, WeaknessDiversity, report.DominantWeakness)
	require.Len(t, report.ComponentScores, 4)
	for w, score := range report.ComponentScores {
		assert.GreaterOrEqual(t, score, report.ComponentScores[report.DominantWeakness],
			"component %s must not be below the dominant weakness", w)
	}
	assert.Greater(t, report.HealthScore, 0.0)
	assert.LessOrEqual(t, report.HealthScore, 100.0)
}

func TestStrategyAgent_CostsDenominatedInConfiguredCurrency(t *testing.T) {
	build := func(cur core.Currency) core.NetworkState {
		return testutil.NewStateBuilder().
			Config(testutil.DefaultConfig(func(c *core.Configuration) {
				c.Currency = cur
			})).
			HealthyNode("SUP-01", core.NodeSupplier).
			WarningNode("MFG-01", core.NodeManufacturer).
			HealthyNode("RTL-01", core.NodeRetailer).
			Build()
	}

	p := policy.Default()
	a := NewStrategyAgent(p)

	envUSD, err := a.Recommend(build(core.CurrencyUSD))
	require.NoError(t, err)
	envEUR, err := a.Recommend(build(core.CurrencyEUR))
	require.NoError(t, err)

	usd := envUSD.Payload.(StrategyReport).Strategies
	eur := envEUR.Payload.(StrategyReport).Strategies
	require.Equal(t, len(usd), len(eur))

	rate := p.CurrencyRate[core.CurrencyEUR]
	for i := range usd {
		assert.Equal(t, core.CurrencyEUR, eur[i].Currency)
		assert.Equal(t, usd[i].Name, eur[i].Name, "currency must not affect ranking")
		assert.InDelta(t, usd[i].EstimatedCost*rate, eur[i].EstimatedCost, 1e-6)
	}
}
