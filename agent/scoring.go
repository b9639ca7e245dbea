package agent

import (
	"math"
	"sort"

	"github.com/hupe1980/supplymesh/core"
	"github.com/hupe1980/supplymesh/policy"
)

// Weakness identifies one component of the network health score. Candidate
// strategies declare which weakness they address; candidates addressing the
// weakest component score highest.
type Weakness string

// Health score components.
const (
	WeaknessStatus      Weakness = "node-health"
	WeaknessUtilization Weakness = "utilization-balance"
	WeaknessDiversity   Weakness = "shipping-diversity"
	WeaknessRisk        Weakness = "risk-exposure"
)

// idealUtilization is the center of the healthy utilization band.
const idealUtilization = 77.5

// healthSignals is the shared scoring basis used by the Strategy agent and
// by Scenario mitigations. Component scores are 0-100, higher is better.
type healthSignals struct {
	HealthScore float64
	Components  map[Weakness]float64
	// Dominant is the weakest component.
	Dominant Weakness
	// CriticalWeaknesses marks components implicated by Critical nodes.
	CriticalWeaknesses map[Weakness]bool
	NodeCount          int
}

// computeHealthSignals scores the given node subset against the
// configuration. Scenario mitigations pass only the affected nodes so both
// agents rank candidates on the same basis over their respective scopes.
func computeHealthSignals(nodes []core.Node, cfg core.Configuration, p policy.Policy) healthSignals {
	sig := healthSignals{
		Components:         map[Weakness]float64{},
		CriticalWeaknesses: map[Weakness]bool{},
		NodeCount:          len(nodes),
	}

	var healthy, warning, critical int
	var utilSum float64
	for _, n := range nodes {
		utilSum += n.UtilizationPct
		switch n.Status {
		case core.StatusHealthy:
			healthy++
		case core.StatusWarning:
			warning++
		case core.StatusCritical:
			critical++
			switch {
			case n.UtilizationPct > 98:
				sig.CriticalWeaknesses[WeaknessUtilization] = true
			case n.UtilizationPct < 40:
				sig.CriticalWeaknesses[WeaknessStatus] = true
			}
			if n.ActiveDelayDays() > 0 {
				sig.CriticalWeaknesses[WeaknessDiversity] = true
			}
		}
	}

	n := float64(len(nodes))
	if n == 0 {
		n = 1
	}
	sig.Components[WeaknessStatus] = 100 * (float64(healthy) + 0.5*float64(warning)) / n
	sig.Components[WeaknessUtilization] = clampScore(100 - math.Abs(utilSum/n-idealUtilization)*2.5)
	sig.Components[WeaknessDiversity] = clampScore(float64(len(cfg.ShippingMethods)) * 20)
	sig.Components[WeaknessRisk] = riskComponent(cfg.RiskProfile)

	weights := map[Weakness]float64{
		WeaknessStatus:      p.Strategy.StatusWeight,
		WeaknessUtilization: p.Strategy.UtilizationWeight,
		WeaknessDiversity:   p.Strategy.DiversityWeight,
		WeaknessRisk:        p.Strategy.RiskWeight,
	}
	var weightSum, scoreSum float64
	for w, weight := range weights {
		weightSum += weight
		scoreSum += weight * sig.Components[w]
	}
	if weightSum == 0 {
		weightSum = 1
	}
	sig.HealthScore = scoreSum / weightSum

	sig.Dominant = WeaknessStatus
	for _, w := range []Weakness{WeaknessStatus, WeaknessUtilization, WeaknessDiversity, WeaknessRisk} {
		if sig.Components[w] < sig.Components[sig.Dominant] {
			sig.Dominant = w
		}
	}
	return sig
}

func riskComponent(rp core.RiskProfile) float64 {
	switch rp {
	case core.RiskLow:
		return 90
	case core.RiskMedium:
		return 60
	default:
		return 30
	}
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// candidate is one entry in the fixed strategy catalog.
type candidate struct {
	name            string
	addresses       Weakness
	baseCostUSD     float64
	timeframe       string
	benefitDeltaPct float64 // expected utilization/availability improvement
	benefit         string
	actionItems     []string
}

// strategyCatalog is the fixed candidate set scored against the current
// health signals. Order is irrelevant; ranking is purely score-driven.
var strategyCatalog = []candidate{
	{
		name:            "Diversify supplier base",
		addresses:       WeaknessStatus,
		baseCostUSD:     250000,
		timeframe:       "3-6 months",
		benefitDeltaPct: 12,
		benefit:         "Reduces single-supplier exposure and stabilizes upstream availability",
		actionItems: []string{
			"Qualify two secondary suppliers per critical component",
			"Split orders 70/30 between primary and secondary suppliers",
			"Add supplier scorecards to quarterly reviews",
		},
	},
	{
		name:            "Increase safety stock",
		addresses:       WeaknessUtilization,
		baseCostUSD:     120000,
		timeframe:       "1-2 months",
		benefitDeltaPct: 8,
		benefit:         "Buffers demand swings and relieves over-utilized nodes",
		actionItems: []string{
			"Raise reorder points for A-class SKUs by 20%",
			"Stage buffer inventory at regional warehouses",
		},
	},
	{
		name:            "Add alternative shipping mode",
		addresses:       WeaknessDiversity,
		baseCostUSD:     180000,
		timeframe:       "2-4 months",
		benefitDeltaPct: 10,
		benefit:         "Adds routing redundancy and softens single-mode disruptions",
		actionItems: []string{
			"Contract a secondary carrier on the top three lanes",
			"Pilot rail for non-urgent replenishment volume",
		},
	},
	{
		name:            "Renegotiate supplier contracts",
		addresses:       WeaknessRisk,
		baseCostUSD:     60000,
		timeframe:       "1-3 months",
		benefitDeltaPct: 5,
		benefit:         "Locks in capacity commitments and penalty clauses for late delivery",
		actionItems: []string{
			"Add volume-flexibility clauses to top supplier contracts",
			"Negotiate guaranteed capacity during peak season",
		},
	},
	{
		name:            "Deploy real-time monitoring",
		addresses:       WeaknessStatus,
		baseCostUSD:     90000,
		timeframe:       "1 month",
		benefitDeltaPct: 6,
		benefit:         "Shortens detection time for node degradation",
		actionItems: []string{
			"Instrument all nodes with utilization telemetry",
			"Set alert thresholds at the warning band edges",
		},
	},
	{
		name:            "Regionalize distribution network",
		addresses:       WeaknessDiversity,
		baseCostUSD:     400000,
		timeframe:       "6-12 months",
		benefitDeltaPct: 15,
		benefit:         "Cuts lane lengths and isolates regional disruptions",
		actionItems: []string{
			"Open a secondary cross-dock in the underserved subregion",
			"Rebalance retailer assignments to the nearest distributor",
		},
	},
}

// scoredCandidate pairs a catalog entry with its computed score and priority.
type scoredCandidate struct {
	candidate
	score    float64
	priority string
}

// Priority levels. High is reserved for candidates addressing a weakness
// implicated by a Critical node.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// rankCandidates scores the whole catalog against the signals and returns it
// sorted by descending score, ties broken by ascending cost.
func rankCandidates(sig healthSignals) []scoredCandidate {
	ranked := make([]scoredCandidate, 0, len(strategyCatalog))
	for _, c := range strategyCatalog {
		gap := 100 - sig.Components[c.addresses]
		score := gap*0.7 + c.benefitDeltaPct*2
		if sig.CriticalWeaknesses[c.addresses] {
			score += 15
		}

		priority := PriorityLow
		switch {
		case sig.CriticalWeaknesses[c.addresses]:
			priority = PriorityHigh
		case c.addresses == sig.Dominant:
			priority = PriorityMedium
		}

		ranked = append(ranked, scoredCandidate{candidate: c, score: score, priority: priority})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].baseCostUSD < ranked[j].baseCostUSD
	})
	return ranked
}

// expectedBenefitUSD converts a candidate's benefit delta into a monetary
// figure over a 30 day horizon for the given node scope.
func expectedBenefitUSD(c candidate, nodeCount int, p policy.Policy) float64 {
	return c.benefitDeltaPct / 100 * p.Scenario.DailyRevenuePerNodeUSD * float64(nodeCount) * 30
}
