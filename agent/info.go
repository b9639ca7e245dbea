package agent

import (
	"fmt"
	"sort"

	"github.com/hupe1980/supplymesh/core"
	"github.com/hupe1980/supplymesh/policy"
)

// InfoAgentName is the Info agent's stable identifier in result envelopes.
const InfoAgentName = "info"

// HealthLabel is the overall network health classification.
type HealthLabel string

// Network health labels, worst status present wins: Critical if ≥1 critical
// node, Degraded if ≥1 warning and no critical, else Healthy.
const (
	NetworkHealthy  HealthLabel = "Healthy"
	NetworkDegraded HealthLabel = "Degraded"
	NetworkCritical HealthLabel = "Critical"
)

// Cause is a de-duplication key for anomaly hypotheses: one recommendation
// is generated per distinct cause observed.
type Cause string

// Observable anomaly causes.
const (
	CauseDemandShortfall    Cause = "demand-shortfall"
	CauseCapacityConstraint Cause = "capacity-constraint"
	CauseLogisticsDelay     Cause = "logistics-delay"
	CauseDemandSoftening    Cause = "demand-softening"
	CauseCapacityPressure   Cause = "capacity-pressure"
)

// Anomaly is one flagged node with its metric snapshot and a one-sentence
// cause hypothesis.
type Anomaly struct {
	NodeID         string          `json:"nodeId"`
	NodeType       core.NodeType   `json:"nodeType"`
	Severity       core.NodeStatus `json:"severity"`
	UtilizationPct float64         `json:"utilizationPct"`
	CapacityUnits  int             `json:"capacityUnits"`
	DelayDays      int             `json:"delayDays"`
	Cause          Cause           `json:"cause"`
	Hypothesis     string          `json:"hypothesis"`
}

// InfoSummary counts nodes by status and labels the overall network health.
type InfoSummary struct {
	HealthyCount  int         `json:"healthyCount"`
	WarningCount  int         `json:"warningCount"`
	CriticalCount int         `json:"criticalCount"`
	Label         HealthLabel `json:"label"`
}

// InfoReport is the Info agent's envelope payload.
type InfoReport struct {
	Anomalies       []Anomaly   `json:"anomalies"`
	Summary         InfoSummary `json:"summary"`
	Recommendations []string    `json:"recommendations"`
}

// InfoAgent detects anomalous nodes and summarizes network health. It
// performs a deterministic read of the snapshot, so its confidence is always
// 1.0 — it reports what is, not a prediction.
type InfoAgent struct {
	BaseAgent
}

// NewInfoAgent constructs an InfoAgent with the given policy.
func NewInfoAgent(p policy.Policy) *InfoAgent {
	return &InfoAgent{BaseAgent: NewBaseAgent(
		InfoAgentName,
		"Detects anomalous supply-chain nodes and recommends corrective actions",
		p,
	)}
}

// Analyze inspects the snapshot and reports every Warning or Critical node
// with a cause hypothesis, a status summary, and per-cause recommendations.
// A fully healthy network yields an empty anomaly and recommendation list.
func (a *InfoAgent) Analyze(state core.NetworkState) (core.ResultEnvelope, error) {
	if state.Empty() {
		return core.ResultEnvelope{}, core.ErrEmptyNetworkState
	}

	report := InfoReport{
		Anomalies:       []Anomaly{},
		Recommendations: []string{},
	}
	causes := map[Cause]bool{}

	for _, n := range state.Nodes {
		switch n.Status {
		case core.StatusHealthy:
			report.Summary.HealthyCount++
			continue
		case core.StatusWarning:
			report.Summary.WarningCount++
		case core.StatusCritical:
			report.Summary.CriticalCount++
		}

		cause, hypothesis := diagnose(n)
		causes[cause] = true
		report.Anomalies = append(report.Anomalies, Anomaly{
			NodeID:         n.ID,
			NodeType:       n.Type,
			Severity:       n.Status,
			UtilizationPct: n.UtilizationPct,
			CapacityUnits:  n.CapacityUnits,
			DelayDays:      n.ActiveDelayDays(),
			Cause:          cause,
			Hypothesis:     hypothesis,
		})
	}

	switch {
	case report.Summary.CriticalCount > 0:
		report.Summary.Label = NetworkCritical
	case report.Summary.WarningCount > 0:
		report.Summary.Label = NetworkDegraded
	default:
		report.Summary.Label = NetworkHealthy
	}

	// One recommendation per distinct cause, in stable order.
	ordered := make([]Cause, 0, len(causes))
	for c := range causes {
		ordered = append(ordered, c)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })
	for _, c := range ordered {
		report.Recommendations = append(report.Recommendations, causeRecommendations[c])
	}

	return core.NewResultEnvelope(a.Name(), state.Version, 1.0, report), nil
}

// diagnose maps a node's metrics to a cause key and a one-sentence
// hypothesis. Critical bands take precedence over delay.
func diagnose(n core.Node) (Cause, string) {
	switch {
	case n.UtilizationPct < 40:
		return CauseDemandShortfall,
			fmt.Sprintf("utilization %.1f%% below 40%%: likely demand shortfall", n.UtilizationPct)
	case n.UtilizationPct > 98:
		return CauseCapacityConstraint,
			fmt.Sprintf("utilization %.1f%% above 98%%: likely capacity constraint", n.UtilizationPct)
	case n.ActiveDelayDays() > 0:
		return CauseLogisticsDelay,
			fmt.Sprintf("active delay of %d days: likely logistics bottleneck", n.ActiveDelayDays())
	case n.UtilizationPct < 60:
		return CauseDemandSoftening,
			fmt.Sprintf("utilization %.1f%% below healthy band: likely softening demand", n.UtilizationPct)
	default:
		return CauseCapacityPressure,
			fmt.Sprintf("utilization %.1f%% above healthy band: likely capacity pressure", n.UtilizationPct)
	}
}

// causeRecommendations maps each cause to its corrective recommendation.
var causeRecommendations = map[Cause]string{
	CauseDemandShortfall:    "Rebalance order allocation toward under-utilized nodes or consolidate volume",
	CauseCapacityConstraint: "Expand capacity or shift load to alternate nodes before throughput saturates",
	CauseLogisticsDelay:     "Reroute shipments through unaffected distributors and expedite delayed lanes",
	CauseDemandSoftening:    "Review demand forecasts and adjust replenishment to avoid idle capacity",
	CauseCapacityPressure:   "Schedule preventive capacity relief before utilization crosses the critical threshold",
}
