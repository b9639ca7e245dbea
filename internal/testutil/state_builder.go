package testutil

import (
	"time"

	"github.com/hupe1980/supplymesh/core"
)

// DefaultConfig returns a valid baseline configuration for tests. Mutators
// adjust individual fields.
func DefaultConfig(mutators ...func(*core.Configuration)) core.Configuration {
	cfg := core.Configuration{
		Region:          core.RegionAsiaPacific,
		Industry:        core.IndustryElectronics,
		Currency:        core.CurrencyUSD,
		ShippingMethods: []core.ShippingMethod{core.ShippingSea, core.ShippingAir, core.ShippingRail},
		NodeCount:       6,
		RiskProfile:     core.RiskLow,
	}
	for _, m := range mutators {
		m(&cfg)
	}
	return cfg
}

// StateBuilder constructs network states with fluent chaining for tests.
// Example:
//
//	state := NewStateBuilder().HealthyNode("SUP-01", core.NodeSupplier).Build()
//
// Node statuses are derived from metrics at Build time, matching store
// behavior.
type StateBuilder struct {
	cfg     core.Configuration
	version uint64
	nodes   []core.Node
}

// NewStateBuilder creates a builder seeded with DefaultConfig and version 1.
func NewStateBuilder() *StateBuilder {
	return &StateBuilder{cfg: DefaultConfig(), version: 1}
}

// Config replaces the configuration (chainable).
func (b *StateBuilder) Config(cfg core.Configuration) *StateBuilder {
	b.cfg = cfg
	return b
}

// Version sets the state version (chainable).
func (b *StateBuilder) Version(v uint64) *StateBuilder {
	b.version = v
	return b
}

// Node appends an arbitrary node (chainable).
func (b *StateBuilder) Node(n core.Node) *StateBuilder {
	b.nodes = append(b.nodes, n)
	return b
}

// HealthyNode appends a node in the healthy utilization band (chainable).
func (b *StateBuilder) HealthyNode(id string, t core.NodeType) *StateBuilder {
	return b.withUtilization(id, t, 75)
}

// WarningNode appends an under-utilized warning-band node (chainable).
func (b *StateBuilder) WarningNode(id string, t core.NodeType) *StateBuilder {
	return b.withUtilization(id, t, 50)
}

// CriticalLowNode appends a demand-shortfall critical node (chainable).
func (b *StateBuilder) CriticalLowNode(id string, t core.NodeType) *StateBuilder {
	return b.withUtilization(id, t, 25)
}

// CriticalHighNode appends a capacity-constrained critical node (chainable).
func (b *StateBuilder) CriticalHighNode(id string, t core.NodeType) *StateBuilder {
	return b.withUtilization(id, t, 99.5)
}

// DelayedDistributor appends a distributor in the healthy utilization band
// carrying an active delay (chainable).
func (b *StateBuilder) DelayedDistributor(id string, delayDays int) *StateBuilder {
	b.nodes = append(b.nodes, core.Node{
		ID:             id,
		Type:           core.NodeDistributor,
		CapacityUnits:  1000,
		UtilizationPct: 75,
		DelayDays:      core.IntPtr(delayDays),
		Details:        core.FleetDetails{FleetSize: 40, CoverageAreaKm: 500, OnTimeRatePct: 90},
	})
	return b
}

func (b *StateBuilder) withUtilization(id string, t core.NodeType, util float64) *StateBuilder {
	n := core.Node{
		ID:             id,
		Type:           t,
		CapacityUnits:  1000,
		UtilizationPct: util,
	}
	switch t {
	case core.NodeSupplier:
		n.Details = core.SupplierDetails{ContactName: "Ops", Certifications: []string{"ISO 9001"}}
	case core.NodeManufacturer:
		n.Details = core.FactoryDetails{ProductionCapacity: 5000, WorkforceSize: 800, ShiftsPerDay: 2}
	case core.NodeWarehouse:
		n.Details = core.StorageDetails{StorageType: "ambient", HandlingCapacity: 2000}
		n.TemperatureC = core.Float64Ptr(18)
	case core.NodeDistributor:
		n.Details = core.FleetDetails{FleetSize: 40, CoverageAreaKm: 500, OnTimeRatePct: 90}
		n.DelayDays = core.IntPtr(0)
	case core.NodeRetailer:
		n.Details = core.RetailDetails{StoreCount: 30, Channels: []string{"online", "retail"}}
	}
	b.nodes = append(b.nodes, n)
	return b
}

// Build derives statuses and returns the assembled state.
func (b *StateBuilder) Build() core.NetworkState {
	nodes := core.CloneNodes(b.nodes)
	for i := range nodes {
		nodes[i].Status = core.DeriveStatus(nodes[i].UtilizationPct, nodes[i].ActiveDelayDays())
	}
	cfg := b.cfg
	cfg.NodeCount = len(nodes)
	if cfg.NodeCount < core.MinNodeCount {
		cfg.NodeCount = core.MinNodeCount
	}
	return core.NetworkState{
		Nodes:       nodes,
		Config:      cfg,
		Version:     b.version,
		LastUpdated: time.Now().UTC(),
	}
}
