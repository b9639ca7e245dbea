package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/supplymesh/core"
	"github.com/hupe1980/supplymesh/internal/testutil"
	"github.com/hupe1980/supplymesh/policy"
)

var (
	_ Agent = (*InfoAgent)(nil)
	_ Agent = (*ScenarioAgent)(nil)
	_ Agent = (*StrategyAgent)(nil)
	_ Agent = (*ImpactAgent)(nil)
)

func TestInfoAgent_EmptyState(t *testing.T) {
	a := NewInfoAgent(policy.Default())
	_, err := a.Analyze(core.NetworkState{})
	assert.ErrorIs(t, err, core.ErrEmptyNetworkState)
}

func TestInfoAgent_HealthyNetwork(t *testing.T) {
	state := testutil.NewStateBuilder().
		HealthyNode("SUP-01", core.NodeSupplier).
		HealthyNode("MFG-01", core.NodeManufacturer).
		HealthyNode("RTL-01", core.NodeRetailer).
		Build()

	a := NewInfoAgent(policy.Default())
	env, err := a.Analyze(state)
	require.NoError(t, err)

	assert.Equal(t, InfoAgentName, env.AgentName)
	assert.Equal(t, 1.0, env.Confidence)
	assert.Equal(t, state.Version, env.StateVersion)

	report := env.Payload.(InfoReport)
	assert.Empty(t, report.Anomalies)
	assert.Empty(t, report.Recommendations)
	assert.Equal(t, NetworkHealthy, report.Summary.Label)
	assert.Equal(t, 3, report.Summary.HealthyCount)
}

func TestInfoAgent_LabelFollowsWorstStatus(t *testing.T) {
	degraded := testutil.NewStateBuilder().
		HealthyNode("SUP-01", core.NodeSupplier).
		WarningNode("MFG-01", core.NodeManufacturer).
		HealthyNode("RTL-01", core.NodeRetailer).
		Build()

	a := NewInfoAgent(policy.Default())
	env, err := a.Analyze(degraded)
	require.NoError(t, err)
	assert.Equal(t, NetworkDegraded, env.Payload.(InfoReport).Summary.Label)

	critical := testutil.NewStateBuilder().
		HealthyNode("SUP-01", core.NodeSupplier).
		WarningNode("MFG-01", core.NodeManufacturer).
		CriticalLowNode("RTL-01", core.NodeRetailer).
		Build()

	env, err = a.Analyze(critical)
	require.NoError(t, err)
	report := env.Payload.(InfoReport)
	assert.Equal(t, NetworkCritical, report.Summary.Label)
	assert.Equal(t, 1, report.Summary.WarningCount)
	assert.Equal(t, 1, report.Summary.CriticalCount)
}

func TestInfoAgent_CauseHypotheses(t *testing.T) {
	state := testutil.NewStateBuilder().
		CriticalLowNode("SUP-01", core.NodeSupplier).
		CriticalHighNode("MFG-01", core.NodeManufacturer).
		WarningNode("WHS-01", core.NodeWarehouse).
		DelayedDistributor("DST-01", 4).
		Build()

	a := NewInfoAgent(policy.Default())
	env, err := a.Analyze(state)
	require.NoError(t, err)
	report := env.Payload.(InfoReport)

	require.Len(t, report.Anomalies, 4)

	byID := map[string]Anomaly{}
	for _, an := range report.Anomalies {
		byID[an.NodeID] = an
	}
	assert.Equal(t, CauseDemandShortfall, byID["SUP-01"].Cause)
	assert.Equal(t, core.StatusCritical, byID["SUP-01"].Severity)
	assert.Equal(t, CauseCapacityConstraint, byID["MFG-01"].Cause)
	assert.Equal(t, CauseDemandSoftening, byID["WHS-01"].Cause)
	assert.Equal(t, CauseLogisticsDelay, byID["DST-01"].Cause)
	assert.Equal(t, 4, byID["DST-01"].DelayDays)
}

func TestInfoAgent_RecommendationsDeduplicatedByCause(t *testing.T) {
	// Two nodes with the same cause must yield one recommendation.
	state := testutil.NewStateBuilder().
		CriticalLowNode("SUP-01", core.NodeSupplier).
		CriticalLowNode("SUP-02", core.NodeSupplier).
		HealthyNode("RTL-01", core.NodeRetailer).
		Build()

	a := NewInfoAgent(policy.Default())
	env, err := a.Analyze(state)
	require.NoError(t, err)
	report := env.Payload.(InfoReport)

	require.Len(t, report.Anomalies, 2)
	assert.Len(t, report.Recommendations, 1)
	assert.Equal(t, causeRecommendations[CauseDemandShortfall], report.Recommendations[0])
}
