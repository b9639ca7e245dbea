package agent

import (
	"github.com/hupe1980/supplymesh/core"
	"github.com/hupe1980/supplymesh/policy"
)

// ImpactAgentName is the Impact agent's stable identifier.
const ImpactAgentName = "impact"

// EnvironmentalMetrics carries the environmental category. The carbon proxy
// is a relative intensity (lower is better); the score is 0-100 (higher is
// better) for threshold comparison.
type EnvironmentalMetrics struct {
	CarbonFootprintProxy float64 `json:"carbonFootprintProxy"`
	AirExpressSharePct   float64 `json:"airExpressSharePct"`
	RailSeaSharePct      float64 `json:"railSeaSharePct"`
	Score                float64 `json:"score"`
}

// SocialMetrics carries the social category, derived from workforce load
// (utilization) and disruption exposure (status distribution).
type SocialMetrics struct {
	AvgUtilizationPct   float64 `json:"avgUtilizationPct"`
	DistressedNodeCount int     `json:"distressedNodeCount"`
	Score               float64 `json:"score"`
}

// GovernanceMetrics carries the governance category, derived from the risk
// profile and supplier certification coverage.
type GovernanceMetrics struct {
	SupplierCount        int     `json:"supplierCount"`
	CertifiedSupplierPct float64 `json:"certifiedSupplierPct"`
	Score                float64 `json:"score"`
}

// ESGReport is the Impact agent's envelope payload.
type ESGReport struct {
	Environmental   EnvironmentalMetrics `json:"environmental"`
	Social          SocialMetrics        `json:"social"`
	Governance      GovernanceMetrics    `json:"governance"`
	Recommendations []string             `json:"recommendations"`
}

// ImpactAgent computes ESG-style metrics over the snapshot and the active
// configuration.
type ImpactAgent struct {
	BaseAgent
}

// NewImpactAgent constructs an ImpactAgent with the given policy.
func NewImpactAgent(p policy.Policy) *ImpactAgent {
	return &ImpactAgent{BaseAgent: NewBaseAgent(
		ImpactAgentName,
		"Assesses environmental, social and governance impact of the network",
		p,
	)}
}

// AssessESG scores the three categories and emits one recommendation per
// category falling below its policy threshold.
func (a *ImpactAgent) AssessESG(state core.NetworkState) (core.ResultEnvelope, error) {
	if state.Empty() {
		return core.ResultEnvelope{}, core.ErrEmptyNetworkState
	}
	p := a.Policy()

	env := a.environmental(state.Config)
	soc := a.social(state)
	gov := a.governance(state)

	recommendations := []string{}
	if env.Score < p.ESG.EnvironmentalThreshold {
		recommendations = append(recommendations,
			"Shift volume from air and express freight toward rail and sea lanes to cut the carbon footprint")
	}
	if soc.Score < p.ESG.SocialThreshold {
		recommendations = append(recommendations,
			"Relieve sustained overwork by rebalancing load away from over-utilized and disrupted nodes")
	}
	if gov.Score < p.ESG.GovernanceThreshold {
		recommendations = append(recommendations,
			"Raise supplier certification coverage and tighten risk governance reviews")
	}

	report := ESGReport{
		Environmental:   env,
		Social:          soc,
		Governance:      gov,
		Recommendations: recommendations,
	}
	return core.NewResultEnvelope(a.Name(), state.Version, 0.9, report), nil
}

// environmental computes the carbon-footprint proxy: the mean emission
// factor of the selected shipping methods plus the industry baseline. Air
// and express raise it; rail and sea lower it.
func (a *ImpactAgent) environmental(cfg core.Configuration) EnvironmentalMetrics {
	p := a.Policy()

	var factorSum float64
	var airExpress, railSea int
	for _, m := range cfg.ShippingMethods {
		factorSum += p.ESG.EmissionFactor[m]
		switch m {
		case core.ShippingAir, core.ShippingExpress:
			airExpress++
		case core.ShippingRail, core.ShippingSea:
			railSea++
		}
	}
	n := float64(len(cfg.ShippingMethods))
	transport := factorSum / n
	proxy := 0.7*transport + 0.3*p.ESG.IndustryBaseline[cfg.Industry]

	return EnvironmentalMetrics{
		CarbonFootprintProxy: proxy,
		AirExpressSharePct:   100 * float64(airExpress) / n,
		RailSeaSharePct:      100 * float64(railSea) / n,
		Score:                clampScore(100 * (1 - proxy)),
	}
}

// social scores workforce impact: sustained overwork (high average
// utilization) and disruption exposure (non-healthy nodes) both reduce it.
func (a *ImpactAgent) social(state core.NetworkState) SocialMetrics {
	avg := state.AverageUtilization()
	counts := state.CountByStatus()
	distressed := counts[core.StatusWarning] + counts[core.StatusCritical]

	overwork := 0.0
	if avg > 85 {
		overwork = (avg - 85) * 2.5
	}
	disruption := 50 * float64(distressed) / float64(len(state.Nodes))

	return SocialMetrics{
		AvgUtilizationPct:   avg,
		DistressedNodeCount: distressed,
		Score:               clampScore(100 - overwork - disruption),
	}
}

// governance scores the risk posture plus supplier certification coverage
// found in the type details.
func (a *ImpactAgent) governance(state core.NetworkState) GovernanceMetrics {
	var suppliers, certified int
	for _, n := range state.Nodes {
		det, ok := n.Details.(core.SupplierDetails)
		if !ok {
			continue
		}
		suppliers++
		if len(det.Certifications) > 0 {
			certified++
		}
	}

	coverage := 0.0
	if suppliers > 0 {
		coverage = float64(certified) / float64(suppliers)
	}

	base := riskComponent(state.Config.RiskProfile)
	return GovernanceMetrics{
		SupplierCount:        suppliers,
		CertifiedSupplierPct: 100 * coverage,
		Score:                clampScore(base*0.85 + coverage*15),
	}
}
