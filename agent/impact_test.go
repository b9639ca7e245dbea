package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/supplymesh/core"
	"github.com/hupe1980/supplymesh/internal/testutil"
	"github.com/hupe1980/supplymesh/policy"
)

func esgState(mutators ...func(*core.Configuration)) core.NetworkState {
	return testutil.NewStateBuilder().
		Config(testutil.DefaultConfig(mutators...)).
		HealthyNode("SUP-01", core.NodeSupplier).
		HealthyNode("MFG-01", core.NodeManufacturer).
		HealthyNode("RTL-01", core.NodeRetailer).
		Build()
}

func TestImpactAgent_EmptyState(t *testing.T) {
	a := NewImpactAgent(policy.Default())
	_, err := a.AssessESG(core.NetworkState{})
	assert.ErrorIs(t, err, core.ErrEmptyNetworkState)
}

func TestImpactAgent_GreenModesScoreBetterThanAirFreight(t *testing.T) {
	a := NewImpactAgent(policy.Default())

	green := esgState(func(c *core.Configuration) {
		c.ShippingMethods = []core.ShippingMethod{core.ShippingRail, core.ShippingSea}
	})
	dirty := esgState(func(c *core.Configuration) {
		c.ShippingMethods = []core.ShippingMethod{core.ShippingAir, core.ShippingExpress}
	})

	envGreen, err := a.AssessESG(green)
	require.NoError(t, err)
	envDirty, err := a.AssessESG(dirty)
	require.NoError(t, err)

	greenMetrics := envGreen.Payload.(ESGReport).Environmental
	dirtyMetrics := envDirty.Payload.(ESGReport).Environmental

	assert.Less(t, greenMetrics.CarbonFootprintProxy, dirtyMetrics.CarbonFootprintProxy)
	assert.Greater(t, greenMetrics.Score, dirtyMetrics.Score)
	assert.Equal(t, 100.0, greenMetrics.RailSeaSharePct)
	assert.Equal(t, 100.0, dirtyMetrics.AirExpressSharePct)
}

func TestImpactAgent_RecommendsWhenEnvironmentalScoreLow(t *testing.T) {
	a := NewImpactAgent(policy.Default())

	env, err := a.AssessESG(esgState(func(c *core.Configuration) {
		c.ShippingMethods = []core.ShippingMethod{core.ShippingAir, core.ShippingExpress}
	}))
	require.NoError(t, err)
	report := env.Payload.(ESGReport)

	require.NotEmpty(t, report.Recommendations)
	assert.Contains(t, report.Recommendations[0], "rail and sea")
}

func TestImpactAgent_HealthyGreenNetworkNeedsNoRecommendations(t *testing.T) {
	a := NewImpactAgent(policy.Default())

	env, err := a.AssessESG(esgState(func(c *core.Configuration) {
		c.ShippingMethods = []core.ShippingMethod{core.ShippingRail, core.ShippingSea}
	}))
	require.NoError(t, err)
	report := env.Payload.(ESGReport)

	assert.Empty(t, report.Recommendations)
	assert.Equal(t, 100.0, report.Social.Score)
	assert.Equal(t, 0, report.Social.DistressedNodeCount)
	assert.Equal(t, 0.9, env.Confidence)
}

func TestImpactAgent_DistressedNodesReduceSocialScore(t *testing.T) {
	a := NewImpactAgent(policy.Default())

	distressed := testutil.NewStateBuilder().
		WarningNode("SUP-01", core.NodeSupplier).
		CriticalLowNode("MFG-01", core.NodeManufacturer).
		WarningNode("RTL-01", core.NodeRetailer).
		Build()

	env, err := a.AssessESG(distressed)
	require.NoError(t, err)
	report := env.Payload.(ESGReport)

	assert.Equal(t, 3, report.Social.DistressedNodeCount)
	assert.Less(t, report.Social.Score, 65.0)
	assert.Contains(t, report.Recommendations, "Relieve sustained overwork by rebalancing load away from over-utilized and disrupted nodes")
}

func TestImpactAgent_OverworkReducesSocialScore(t *testing.T) {
	a := NewImpactAgent(policy.Default())

	// All nodes in the healthy band but running hot.
	hot := testutil.NewStateBuilder().
		Node(core.Node{ID: "SUP-01", Type: core.NodeSupplier, CapacityUnits: 1000, UtilizationPct: 94,
			Details: core.SupplierDetails{Certifications: []string{"ISO 9001"}}}).
		Node(core.Node{ID: "MFG-01", Type: core.NodeManufacturer, CapacityUnits: 1000, UtilizationPct: 95,
			Details: core.FactoryDetails{ProductionCapacity: 5000, WorkforceSize: 800, ShiftsPerDay: 3}}).
		Build()

	env, err := a.AssessESG(hot)
	require.NoError(t, err)
	report := env.Payload.(ESGReport)

	assert.Equal(t, 0, report.Social.DistressedNodeCount)
	assert.Greater(t, report.Social.AvgUtilizationPct, 85.0)
	assert.Less(t, report.Social.Score, 100.0)
}

func TestImpactAgent_GovernanceTracksRiskAndCertifications(t *testing.T) {
	a := NewImpactAgent(policy.Default())

	// Low risk with a fully certified supplier base scores well.
	env, err := a.AssessESG(esgState())
	require.NoError(t, err)
	gov := env.Payload.(ESGReport).Governance
	assert.Equal(t, 1, gov.SupplierCount)
	assert.Equal(t, 100.0, gov.CertifiedSupplierPct)
	assert.GreaterOrEqual(t, gov.Score, 70.0)

	// High risk with an uncertified supplier falls below the threshold.
	risky := testutil.NewStateBuilder().
		Config(testutil.DefaultConfig(func(c *core.Configuration) {
			c.RiskProfile = core.RiskHigh
		})).
		Node(core.Node{ID: "SUP-01", Type: core.NodeSupplier, CapacityUnits: 1000, UtilizationPct: 75,
			Details: core.SupplierDetails{ContactName: "Ops"}}).
		HealthyNode("MFG-01", core.NodeManufacturer).
		HealthyNode("RTL-01", core.NodeRetailer).
		Build()

	env, err = a.AssessESG(risky)
	require.NoError(t, err)
	report := env.Payload.(ESGReport)
	assert.Equal(t, 0.0, report.Governance.CertifiedSupplierPct)
	assert.Less(t, report.Governance.Score, 70.0)
	assert.Contains(t, report.Recommendations, "Raise supplier certification coverage and tighten risk governance reviews")
}
