package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Region identifies the geographic market a supply chain operates in. The
// region drives which location table the synthesizer draws node sites from.
type Region string

// Supported regions.
const (
	RegionAsiaPacific  Region = "Asia-Pacific"
	RegionNorthAmerica Region = "North America"
	RegionEurope       Region = "Europe"
	RegionLatinAmerica Region = "Latin America"
	RegionMiddleEast   Region = "Middle East"
)

// Regions returns all supported regions in stable order.
func Regions() []Region {
	return []Region{RegionAsiaPacific, RegionNorthAmerica, RegionEurope, RegionLatinAmerica, RegionMiddleEast}
}

// Valid reports whether the region is one of the supported values.
func (r Region) Valid() bool {
	for _, v := range Regions() {
		if r == v {
			return true
		}
	}
	return false
}

// Industry identifies the vertical the supply chain serves. It biases the
// type-detail templates used during synthesis (e.g. pharmaceutical
// warehouses lean temperature-controlled) and the ESG emission baseline.
type Industry string

// Supported industries.
const (
	IndustryElectronics     Industry = "Electronics"
	IndustryAutomotive      Industry = "Automotive"
	IndustryPharmaceuticals Industry = "Pharmaceuticals"
	IndustryFoodBeverage    Industry = "Food & Beverage"
	IndustryFashion         Industry = "Fashion"
	IndustryChemicals       Industry = "Chemicals"
)

// Industries returns all supported industries in stable order.
func Industries() []Industry {
	return []Industry{IndustryElectronics, IndustryAutomotive, IndustryPharmaceuticals, IndustryFoodBeverage, IndustryFashion, IndustryChemicals}
}

// Valid reports whether the industry is one of the supported values.
func (i Industry) Valid() bool {
	for _, v := range Industries() {
		if i == v {
			return true
		}
	}
	return false
}

// Currency is the ISO 4217 code all monetary outputs are denominated in.
// Money values never cross calls in any other unit.
type Currency string

// Supported currencies.
const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyCNY Currency = "CNY"
	CurrencyJPY Currency = "JPY"
)

// Currencies returns all supported currencies in stable order.
func Currencies() []Currency {
	return []Currency{CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyCNY, CurrencyJPY}
}

// Valid reports whether the currency is one of the supported values.
func (c Currency) Valid() bool {
	for _, v := range Currencies() {
		if c == v {
			return true
		}
	}
	return false
}

// ShippingMethod is one transport mode available to the network. The set of
// selected methods feeds the scenario redundancy discount and the ESG
// carbon-footprint proxy.
type ShippingMethod string

// Supported shipping methods.
const (
	ShippingSea     ShippingMethod = "Sea"
	ShippingAir     ShippingMethod = "Air"
	ShippingRail    ShippingMethod = "Rail"
	ShippingTruck   ShippingMethod = "Truck"
	ShippingExpress ShippingMethod = "Express"
)

// ShippingMethods returns all supported shipping methods in stable order.
func ShippingMethods() []ShippingMethod {
	return []ShippingMethod{ShippingSea, ShippingAir, ShippingRail, ShippingTruck, ShippingExpress}
}

// Valid reports whether the shipping method is one of the supported values.
func (m ShippingMethod) Valid() bool {
	for _, v := range ShippingMethods() {
		if m == v {
			return true
		}
	}
	return false
}

// RiskProfile expresses the operator's risk appetite. It controls the
// healthy-node probability at synthesis time and scales the critical-flip
// probability during live perturbation.
type RiskProfile string

// Supported risk profiles.
const (
	RiskLow    RiskProfile = "Low"
	RiskMedium RiskProfile = "Medium"
	RiskHigh   RiskProfile = "High"
)

// RiskProfiles returns all supported risk profiles in stable order.
func RiskProfiles() []RiskProfile {
	return []RiskProfile{RiskLow, RiskMedium, RiskHigh}
}

// Valid reports whether the risk profile is one of the supported values.
func (p RiskProfile) Valid() bool {
	for _, v := range RiskProfiles() {
		if p == v {
			return true
		}
	}
	return false
}

// Node count bounds enforced at configuration time.
const (
	MinNodeCount = 3
	MaxNodeCount = 12
)

// Configuration is the immutable parameter set that deterministically drives
// network synthesis. It is a plain value; construct it, call Validate, then
// hand it to the store. A Configuration is never mutated after submission —
// changing any parameter means submitting a new Configuration, which fully
// replaces the network state.
type Configuration struct {
	Region          Region           `json:"region" yaml:"region" validate:"required,sm_region"`
	Industry        Industry         `json:"industry" yaml:"industry" validate:"required,sm_industry"`
	Currency        Currency         `json:"currency" yaml:"currency" validate:"required,sm_currency"`
	ShippingMethods []ShippingMethod `json:"shippingMethods" yaml:"shippingMethods" validate:"required,min=1,unique,dive,sm_shipping"`
	NodeCount       int              `json:"nodeCount" yaml:"nodeCount" validate:"min=3,max=12"`
	RiskProfile     RiskProfile      `json:"riskProfile" yaml:"riskProfile" validate:"required,sm_risk"`
}

// validate is the package-level validator instance with domain enum
// validations registered.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for empty tags / nil funcs, which would be a
	// programming error caught by any test run.
	_ = v.RegisterValidation("sm_region", func(fl validator.FieldLevel) bool {
		return Region(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("sm_industry", func(fl validator.FieldLevel) bool {
		return Industry(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("sm_currency", func(fl validator.FieldLevel) bool {
		return Currency(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("sm_shipping", func(fl validator.FieldLevel) bool {
		return ShippingMethod(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("sm_risk", func(fl validator.FieldLevel) bool {
		return RiskProfile(fl.Field().String()).Valid()
	})
	return v
}

// Validate checks the configuration against the struct-tag rules and the
// enum domains. It returns an error wrapping ErrInvalidConfiguration naming
// every offending field, or nil when the configuration is well formed.
func (c Configuration) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfiguration, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return nil
}

// UsesMethod reports whether the configuration includes the given shipping
// method.
func (c Configuration) UsesMethod(m ShippingMethod) bool {
	for _, v := range c.ShippingMethods {
		if v == m {
			return true
		}
	}
	return false
}

// Clone returns a deep copy safe for independent mutation of the slice field.
func (c Configuration) Clone() Configuration {
	cp := c
	cp.ShippingMethods = append([]ShippingMethod(nil), c.ShippingMethods...)
	return cp
}
