package agent

import (
	"fmt"
	"math"
	"sort"

	"github.com/hupe1980/supplymesh/core"
	"github.com/hupe1980/supplymesh/policy"
)

// ScenarioAgentName is the Scenario agent's stable identifier.
const ScenarioAgentName = "scenario"

// ScenarioType identifies a supported disruption scenario.
type ScenarioType string

// Supported scenario types.
const (
	ScenarioPortClosure        ScenarioType = "PortClosure"
	ScenarioSupplierDisruption ScenarioType = "SupplierDisruption"
	ScenarioDemandSpike        ScenarioType = "DemandSpike"
	ScenarioWeatherEvent       ScenarioType = "WeatherEvent"
	ScenarioLaborStrike        ScenarioType = "LaborStrike"
	ScenarioCyberAttack        ScenarioType = "CyberAttack"
)

// scenarioTypeFactor weights the relative severity of each scenario type.
// Membership in this map defines the supported catalog.
var scenarioTypeFactor = map[ScenarioType]float64{
	ScenarioPortClosure:        1.00,
	ScenarioSupplierDisruption: 0.90,
	ScenarioDemandSpike:        0.70,
	ScenarioWeatherEvent:       0.80,
	ScenarioLaborStrike:        0.85,
	ScenarioCyberAttack:        0.95,
}

// ScenarioTypes returns the supported scenario catalog in stable order.
func ScenarioTypes() []ScenarioType {
	return []ScenarioType{
		ScenarioPortClosure, ScenarioSupplierDisruption, ScenarioDemandSpike,
		ScenarioWeatherEvent, ScenarioLaborStrike, ScenarioCyberAttack,
	}
}

// Valid reports whether the scenario type is in the supported catalog.
func (s ScenarioType) Valid() bool {
	_, ok := scenarioTypeFactor[s]
	return ok
}

// Severity grades a scenario request.
type Severity string

// Scenario severities.
const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

// Valid reports whether the severity is one of the supported values.
func (s Severity) Valid() bool {
	return s == SeverityLow || s == SeverityMedium || s == SeverityHigh
}

// ScenarioRequest is the tagged request type for a disruption simulation.
// An empty AffectedNodeIDs list means a whole-network scenario.
type ScenarioRequest struct {
	ScenarioType    ScenarioType `json:"scenarioType"`
	Severity        Severity     `json:"severity"`
	DurationDays    int          `json:"durationDays"`
	AffectedNodeIDs []string     `json:"affectedNodeIds"`
}

// Validate fails fast with the matching typed error; no partial simulation
// is ever emitted for a malformed request.
func (r ScenarioRequest) Validate() error {
	if !r.ScenarioType.Valid() {
		return fmt.Errorf("%w: %q", core.ErrUnknownScenarioType, r.ScenarioType)
	}
	if r.DurationDays <= 0 {
		return fmt.Errorf("%w: durationDays must be positive, got %d", core.ErrInvalidDuration, r.DurationDays)
	}
	if !r.Severity.Valid() {
		return fmt.Errorf("%w: unknown severity %q", core.ErrInvalidConfiguration, r.Severity)
	}
	return nil
}

// ScenarioImpact carries the computed impact metrics. Money is denominated
// in the configuration's currency.
type ScenarioImpact struct {
	RevenueImpact           float64       `json:"revenueImpact"`
	Currency                core.Currency `json:"currency"`
	DeliveryDelayDays       int           `json:"deliveryDelayDays"`
	CustomerSatisfactionPct float64       `json:"customerSatisfactionPct"`
	AffectedNodeCount       int           `json:"affectedNodeCount"`
}

// TimelinePhase is one of the five ordered disruption phases with its
// relative day offset.
type TimelinePhase struct {
	Phase       string `json:"phase"`
	DayOffset   int    `json:"dayOffset"`
	Description string `json:"description"`
}

// Mitigation is one ranked mitigation suggestion for a simulated scenario.
type Mitigation struct {
	Name            string        `json:"name"`
	Priority        string        `json:"priority"`
	Timeframe       string        `json:"timeframe"`
	EstimatedCost   float64       `json:"estimatedCost"`
	ExpectedBenefit float64       `json:"expectedBenefit"`
	NetBenefit      float64       `json:"netBenefit"`
	Currency        core.Currency `json:"currency"`
}

// ScenarioReport is the Scenario agent's envelope payload.
type ScenarioReport struct {
	ScenarioType ScenarioType    `json:"scenarioType"`
	Severity     Severity        `json:"severity"`
	DurationDays int             `json:"durationDays"`
	Impact       ScenarioImpact  `json:"impact"`
	Timeline     []TimelinePhase `json:"timeline"`
	Mitigations  []Mitigation    `json:"mitigations"`
}

// ScenarioAgent simulates a disruption against the current snapshot. Impact
// magnitude is computed, never looked up: it grows monotonically with
// severity and duration, compounds when affected nodes are already
// distressed, and is discounted by shipping-method redundancy.
type ScenarioAgent struct {
	BaseAgent
}

// NewScenarioAgent constructs a ScenarioAgent with the given policy.
func NewScenarioAgent(p policy.Policy) *ScenarioAgent {
	return &ScenarioAgent{BaseAgent: NewBaseAgent(
		ScenarioAgentName,
		"Simulates disruption scenarios and quantifies their business impact",
		p,
	)}
}

// Simulate runs the scenario against the snapshot and returns the impact
// metrics, the five-phase timeline and 1-3 ranked mitigations. The envelope
// confidence reflects that this is a projection, not an observation.
func (a *ScenarioAgent) Simulate(state core.NetworkState, req ScenarioRequest) (core.ResultEnvelope, error) {
	if state.Empty() {
		return core.ResultEnvelope{}, core.ErrEmptyNetworkState
	}
	if err := req.Validate(); err != nil {
		return core.ResultEnvelope{}, err
	}

	affected := selectAffected(state, req.AffectedNodeIDs)
	p := a.Policy()

	distressed := 0
	for _, n := range affected {
		if n.Status != core.StatusHealthy {
			distressed++
		}
	}

	severityF := p.Scenario.SeverityFactor[string(req.Severity)]
	typeF := scenarioTypeFactor[req.ScenarioType]
	durationF := math.Pow(float64(req.DurationDays), p.Scenario.DurationExponent)
	distressMult := 1 + float64(distressed)*p.Scenario.DistressPenaltyPerNode
	redundancyMult := 1 - float64(len(state.Config.ShippingMethods)-1)*p.Scenario.RedundancyDiscountPerMethod
	if redundancyMult < 0.5 {
		redundancyMult = 0.5
	}

	impactScore := severityF * typeF * durationF * distressMult * redundancyMult

	revenueUSD := p.Scenario.DailyRevenuePerNodeUSD * float64(len(affected)) * impactScore
	delayDays := int(math.Ceil(0.35 * severityF * typeF * float64(req.DurationDays) * distressMult * redundancyMult))
	if delayDays < 1 {
		delayDays = 1
	}
	satisfaction := clampScore(96 - impactScore*1.2)
	if satisfaction < p.Scenario.SatisfactionFloorPct {
		satisfaction = p.Scenario.SatisfactionFloorPct
	}

	report := ScenarioReport{
		ScenarioType: req.ScenarioType,
		Severity:     req.Severity,
		DurationDays: req.DurationDays,
		Impact: ScenarioImpact{
			RevenueImpact:           p.ConvertUSD(revenueUSD, state.Config.Currency),
			Currency:                state.Config.Currency,
			DeliveryDelayDays:       delayDays,
			CustomerSatisfactionPct: satisfaction,
			AffectedNodeCount:       len(affected),
		},
		Timeline:    buildTimeline(req.ScenarioType, req.DurationDays),
		Mitigations: a.rankMitigations(affected, state.Config),
	}

	return core.NewResultEnvelope(a.Name(), state.Version, 0.75, report), nil
}

// selectAffected resolves the requested node ids against the snapshot. An
// empty id list means the whole network; unknown ids are dropped, and a list
// matching nothing falls back to the whole network rather than simulating an
// empty scope.
func selectAffected(state core.NetworkState, ids []string) []core.Node {
	if len(ids) == 0 {
		return state.Nodes
	}
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var affected []core.Node
	for _, n := range state.Nodes {
		if wanted[n.ID] {
			affected = append(affected, n)
		}
	}
	if len(affected) == 0 {
		return state.Nodes
	}
	return affected
}

// timelinePhases are the five canonical disruption phases in order.
var timelinePhases = []struct {
	name     string
	fraction float64
	desc     string
}{
	{"Onset", 0.0, "Disruption begins; first shipments affected"},
	{"Detection", 0.1, "Monitoring flags abnormal throughput and delays"},
	{"Escalation", 0.3, "Backlog builds; downstream nodes feel the shortfall"},
	{"Response", 0.6, "Mitigations activate; volume shifts to alternates"},
	{"Recovery", 1.0, "Throughput returns to pre-disruption levels"},
}

// buildTimeline derives the five phase offsets from the scenario duration.
// Offsets are non-decreasing and the Recovery phase lands on the final day.
func buildTimeline(st ScenarioType, durationDays int) []TimelinePhase {
	timeline := make([]TimelinePhase, 0, len(timelinePhases))
	prev := 0
	for i, ph := range timelinePhases {
		offset := int(math.Round(ph.fraction * float64(durationDays)))
		if i == 1 && offset < 1 {
			offset = 1 // detection is never instant
		}
		if offset > durationDays {
			offset = durationDays
		}
		if offset < prev {
			offset = prev
		}
		timeline = append(timeline, TimelinePhase{
			Phase:       ph.name,
			DayOffset:   offset,
			Description: fmt.Sprintf("%s: %s", st, ph.desc),
		})
		prev = offset
	}
	return timeline
}

// rankMitigations ranks the strategy catalog by net benefit (expected
// benefit minus cost) over the affected node scope, using the same scoring
// basis as the Strategy agent. Returns the top 1-3 entries.
func (a *ScenarioAgent) rankMitigations(affected []core.Node, cfg core.Configuration) []Mitigation {
	p := a.Policy()
	sig := computeHealthSignals(affected, cfg, p)
	ranked := rankCandidates(sig)

	type netRanked struct {
		scoredCandidate
		benefitUSD float64
		netUSD     float64
	}
	nets := make([]netRanked, 0, len(ranked))
	for _, sc := range ranked {
		benefit := expectedBenefitUSD(sc.candidate, len(affected), p) * (sc.score / 100)
		nets = append(nets, netRanked{
			scoredCandidate: sc,
			benefitUSD:      benefit,
			netUSD:          benefit - sc.baseCostUSD,
		})
	}
	sort.SliceStable(nets, func(i, j int) bool {
		if nets[i].netUSD != nets[j].netUSD {
			return nets[i].netUSD > nets[j].netUSD
		}
		return nets[i].baseCostUSD < nets[j].baseCostUSD
	})

	limit := maxStrategies
	if len(nets) < limit {
		limit = len(nets)
	}
	mitigations := make([]Mitigation, 0, limit)
	for _, nr := range nets[:limit] {
		mitigations = append(mitigations, Mitigation{
			Name:            nr.name,
			Priority:        nr.priority,
			Timeframe:       nr.timeframe,
			EstimatedCost:   p.ConvertUSD(nr.baseCostUSD, cfg.Currency),
			ExpectedBenefit: p.ConvertUSD(nr.benefitUSD, cfg.Currency),
			NetBenefit:      p.ConvertUSD(nr.netUSD, cfg.Currency),
			Currency:        cfg.Currency,
		})
	}
	return mitigations
}
