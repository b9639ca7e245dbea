// Package synth implements the network synthesizer: a pure function from a
// Configuration plus seed to an ordered node sequence forming a directed
// supply chain (supplier → manufacturer → warehouse → distributor →
// retailer). Identical (config, seed) inputs always yield identical output;
// all randomness flows through a single seeded source.
package synth

import (
	"fmt"
	"math/rand"

	"github.com/hupe1980/supplymesh/core"
	"github.com/hupe1980/supplymesh/policy"
)

// idPrefix maps node types to their stable id prefixes.
var idPrefix = map[core.NodeType]string{
	core.NodeSupplier:     "SUP",
	core.NodeManufacturer: "MFG",
	core.NodeWarehouse:    "WHS",
	core.NodeDistributor:  "DST",
	core.NodeRetailer:     "RTL",
}

// Synthesizer produces node sequences from configurations. It is stateless
// apart from the policy coefficients and safe for concurrent use.
type Synthesizer struct {
	policy policy.Policy
}

// New constructs a Synthesizer with the given policy.
func New(p policy.Policy) *Synthesizer {
	return &Synthesizer{policy: p}
}

// Synthesize generates the node sequence for cfg using the seeded random
// source. It validates cfg and fails with core.ErrInvalidConfiguration on
// malformed input; it never partially succeeds.
func (s *Synthesizer) Synthesize(cfg core.Configuration, seed int64) ([]core.Node, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	table := LocationsFor(cfg.Region)
	if len(table) == 0 {
		return nil, fmt.Errorf("%w: no location table for region %q", core.ErrInternalInvariant, cfg.Region)
	}

	rng := rand.New(rand.NewSource(seed))
	healthyProb := s.policy.Synthesis.HealthyProbability[cfg.RiskProfile]

	nodes := make([]core.Node, 0, cfg.NodeCount)
	typeCounts := make(map[core.NodeType]int, 5)

	for i := 0; i < cfg.NodeCount; i++ {
		nodeType := typeForIndex(i, cfg.NodeCount)
		typeCounts[nodeType]++

		loc := table[i%len(table)]
		if pass := i / len(table); pass > 0 {
			// Table exhausted: repeat sites with a disambiguating suffix.
			loc.Name = fmt.Sprintf("%s %d", loc.Name, pass+1)
		}

		node := core.Node{
			ID:            fmt.Sprintf("%s-%02d", idPrefix[nodeType], typeCounts[nodeType]),
			Type:          nodeType,
			Location:      loc,
			CapacityUnits: core.MinCapacityUnits + rng.Intn(core.MaxCapacityUnits-core.MinCapacityUnits+1),
			Details:       detailsFor(rng, nodeType, cfg.Industry, loc.Name, healthyProb),
		}

		target := drawStatus(rng, healthyProb)
		delayDays := 0
		if nodeType == core.NodeDistributor {
			// Distributors carry an explicit delay metric; a Warning
			// distributor may be degraded by delay rather than utilization.
			if target == core.StatusWarning && rng.Intn(2) == 0 {
				delayDays = 1 + rng.Intn(5)
				node.UtilizationPct = healthyUtilization(rng)
			}
			node.DelayDays = core.IntPtr(delayDays)
		}
		if node.UtilizationPct == 0 {
			node.UtilizationPct = utilizationFor(rng, target)
		}
		if nodeType == core.NodeWarehouse {
			node.TemperatureC = core.Float64Ptr(temperatureFor(rng, cfg.Industry))
		}

		node.Status = core.DeriveStatus(node.UtilizationPct, delayDays)
		nodes = append(nodes, node)
	}

	return nodes, nil
}

// typeForIndex distributes node types across the sequence preserving the
// canonical chain order. For counts ≥ 5 every stage appears at least once;
// smaller counts collapse adjacent stages onto the earlier stage's type
// (3 nodes → Supplier, Manufacturer, Distributor).
func typeForIndex(i, n int) core.NodeType {
	return core.NodeTypes()[i*5/n]
}

// drawStatus samples the target status band. The healthy probability comes
// from the risk profile; the remainder splits evenly between Warning and
// Critical.
func drawStatus(rng *rand.Rand, healthyProb float64) core.NodeStatus {
	r := rng.Float64()
	switch {
	case r < healthyProb:
		return core.StatusHealthy
	case r < healthyProb+(1-healthyProb)/2:
		return core.StatusWarning
	default:
		return core.StatusCritical
	}
}

// utilizationFor samples a utilization inside the band matching the target
// status so DeriveStatus round-trips to the drawn status.
func utilizationFor(rng *rand.Rand, target core.NodeStatus) float64 {
	switch target {
	case core.StatusHealthy:
		return healthyUtilization(rng)
	case core.StatusWarning:
		if rng.Intn(2) == 0 {
			return 40 + rng.Float64()*19.5 // under-utilized band
		}
		return 95.2 + rng.Float64()*2.6 // over-utilized band
	default: // Critical
		if rng.Intn(2) == 0 {
			return 10 + rng.Float64()*29.5 // demand shortfall band
		}
		return 98.2 + rng.Float64()*1.8 // capacity constraint band
	}
}

func healthyUtilization(rng *rand.Rand) float64 {
	return 60 + rng.Float64()*35
}
