// Package policy holds the tunable coefficients behind synthesis, live
// perturbation and agent scoring. The exact numbers are operating policy,
// not business logic: every constant the simulation depends on lives here so
// deployments can override them from a YAML file without touching code.
package policy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hupe1980/supplymesh/core"
)

// ErrInvalidPolicy indicates a policy file or override outside the allowed
// coefficient ranges.
var ErrInvalidPolicy = errors.New("invalid policy")

// Synthesis controls node generation.
type Synthesis struct {
	// HealthyProbability is the chance a freshly synthesized node lands in
	// the healthy utilization band, keyed by risk profile. The remaining
	// probability mass is split evenly between Warning and Critical.
	HealthyProbability map[core.RiskProfile]float64 `yaml:"healthyProbability" validate:"required,dive,gte=0,lte=1"`
}

// Tick controls the periodic live perturbation.
type Tick struct {
	// MaxUtilizationDelta bounds the absolute per-tick utilization change.
	MaxUtilizationDelta float64 `yaml:"maxUtilizationDelta" validate:"gt=0,lte=25"`
	// CriticalFlipProbability is the per-node chance of a disruption flip
	// into Critical on a tick.
	CriticalFlipProbability float64 `yaml:"criticalFlipProbability" validate:"gte=0,lte=1"`
	// HighRiskFlipMultiplier scales the flip probability when the active
	// configuration uses the High risk profile.
	HighRiskFlipMultiplier float64 `yaml:"highRiskFlipMultiplier" validate:"gte=1,lte=10"`
	// FlipDelayDaysMin/Max bound the delay assigned to a flipped node.
	FlipDelayDaysMin int `yaml:"flipDelayDaysMin" validate:"gte=1"`
	FlipDelayDaysMax int `yaml:"flipDelayDaysMax" validate:"gtefield=FlipDelayDaysMin"`
}

// Scenario controls disruption impact scoring.
type Scenario struct {
	// SeverityFactor maps request severity to a base impact factor.
	SeverityFactor map[string]float64 `yaml:"severityFactor" validate:"required,dive,gt=0"`
	// DurationExponent shapes how impact grows with duration (sub-linear
	// below 1, linear at 1).
	DurationExponent float64 `yaml:"durationExponent" validate:"gt=0,lte=2"`
	// DistressPenaltyPerNode compounds impact for each affected node already
	// in Warning or Critical.
	DistressPenaltyPerNode float64 `yaml:"distressPenaltyPerNode" validate:"gte=0,lte=1"`
	// RedundancyDiscountPerMethod reduces impact for each shipping method
	// beyond the first.
	RedundancyDiscountPerMethod float64 `yaml:"redundancyDiscountPerMethod" validate:"gte=0,lte=0.5"`
	// DailyRevenuePerNodeUSD is the baseline revenue exposure per affected
	// node per day, in USD before currency conversion.
	DailyRevenuePerNodeUSD float64 `yaml:"dailyRevenuePerNodeUSD" validate:"gt=0"`
	// SatisfactionFloorPct bounds how far customer satisfaction can fall.
	SatisfactionFloorPct float64 `yaml:"satisfactionFloorPct" validate:"gte=0,lte=100"`
}

// Strategy controls the network health score feeding strategy ranking.
type Strategy struct {
	// Weights of the health-score components; they should sum to 1 but are
	// normalized defensively at scoring time.
	StatusWeight      float64 `yaml:"statusWeight" validate:"gte=0"`
	UtilizationWeight float64 `yaml:"utilizationWeight" validate:"gte=0"`
	DiversityWeight   float64 `yaml:"diversityWeight" validate:"gte=0"`
	RiskWeight        float64 `yaml:"riskWeight" validate:"gte=0"`
}

// ESG controls the impact agent's category scoring.
type ESG struct {
	// EmissionFactor is the relative carbon intensity per shipping method.
	EmissionFactor map[core.ShippingMethod]float64 `yaml:"emissionFactor" validate:"required,dive,gte=0"`
	// IndustryBaseline is the industry-specific emissions baseline added to
	// the transport proxy.
	IndustryBaseline map[core.Industry]float64 `yaml:"industryBaseline" validate:"required,dive,gte=0"`
	// Category thresholds (0-100 scores); a category below its threshold
	// yields a recommendation.
	EnvironmentalThreshold float64 `yaml:"environmentalThreshold" validate:"gte=0,lte=100"`
	SocialThreshold        float64 `yaml:"socialThreshold" validate:"gte=0,lte=100"`
	GovernanceThreshold    float64 `yaml:"governanceThreshold" validate:"gte=0,lte=100"`
}

// Policy aggregates every tunable section plus the currency conversion table
// used to denominate money outputs.
type Policy struct {
	Synthesis Synthesis `yaml:"synthesis" validate:"required"`
	Tick      Tick      `yaml:"tick" validate:"required"`
	Scenario  Scenario  `yaml:"scenario" validate:"required"`
	Strategy  Strategy  `yaml:"strategy" validate:"required"`
	ESG       ESG       `yaml:"esg" validate:"required"`
	// CurrencyRate converts USD-denominated internals into the configured
	// currency (units of currency per USD).
	CurrencyRate map[core.Currency]float64 `yaml:"currencyRate" validate:"required,dive,gt=0"`
}

// Default returns the baseline policy used when no override file is given.
// The numbers mirror the demo-tuned coefficients and are safe starting
// points, not calibrated business constants.
func Default() Policy {
	return Policy{
		Synthesis: Synthesis{
			HealthyProbability: map[core.RiskProfile]float64{
				core.RiskLow:    0.90,
				core.RiskMedium: 0.70,
				core.RiskHigh:   0.40,
			},
		},
		Tick: Tick{
			MaxUtilizationDelta:     5.0,
			CriticalFlipProbability: 0.05,
			HighRiskFlipMultiplier:  2.0,
			FlipDelayDaysMin:        2,
			FlipDelayDaysMax:        8,
		},
		Scenario: Scenario{
			SeverityFactor: map[string]float64{
				"Low":    0.4,
				"Medium": 0.7,
				"High":   1.0,
			},
			DurationExponent:            0.8,
			DistressPenaltyPerNode:      0.15,
			RedundancyDiscountPerMethod: 0.08,
			DailyRevenuePerNodeUSD:      25000,
			SatisfactionFloorPct:        20,
		},
		Strategy: Strategy{
			StatusWeight:      0.40,
			UtilizationWeight: 0.25,
			DiversityWeight:   0.20,
			RiskWeight:        0.15,
		},
		ESG: ESG{
			EmissionFactor: map[core.ShippingMethod]float64{
				core.ShippingAir:     1.00,
				core.ShippingExpress: 0.85,
				core.ShippingTruck:   0.45,
				core.ShippingRail:    0.18,
				core.ShippingSea:     0.12,
			},
			IndustryBaseline: map[core.Industry]float64{
				core.IndustryElectronics:     0.35,
				core.IndustryAutomotive:      0.50,
				core.IndustryPharmaceuticals: 0.30,
				core.IndustryFoodBeverage:    0.25,
				core.IndustryFashion:         0.40,
				core.IndustryChemicals:       0.60,
			},
			EnvironmentalThreshold: 60,
			SocialThreshold:        65,
			GovernanceThreshold:    70,
		},
		CurrencyRate: map[core.Currency]float64{
			core.CurrencyUSD: 1.00,
			core.CurrencyEUR: 0.92,
			core.CurrencyGBP: 0.79,
			core.CurrencyCNY: 7.20,
			core.CurrencyJPY: 155.0,
		},
	}
}

var validate = validator.New()

// Validate checks coefficient ranges and required tables. It returns an
// error wrapping ErrInvalidPolicy naming every offending field.
func (p Policy) Validate() error {
	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidPolicy, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}
	for _, rp := range core.RiskProfiles() {
		if _, ok := p.Synthesis.HealthyProbability[rp]; !ok {
			return fmt.Errorf("%w: missing healthyProbability for risk profile %q", ErrInvalidPolicy, rp)
		}
	}
	for _, m := range core.ShippingMethods() {
		if _, ok := p.ESG.EmissionFactor[m]; !ok {
			return fmt.Errorf("%w: missing emissionFactor for shipping method %q", ErrInvalidPolicy, m)
		}
	}
	for _, c := range core.Currencies() {
		if _, ok := p.CurrencyRate[c]; !ok {
			return fmt.Errorf("%w: missing currencyRate for currency %q", ErrInvalidPolicy, c)
		}
	}
	return nil
}

// ConvertUSD converts a USD amount into the given currency using the policy
// rate table. Unknown currencies fall back to USD parity.
func (p Policy) ConvertUSD(amount float64, currency core.Currency) float64 {
	rate, ok := p.CurrencyRate[currency]
	if !ok {
		return amount
	}
	return amount * rate
}
