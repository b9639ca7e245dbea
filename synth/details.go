package synth

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/hupe1980/supplymesh/core"
)

// certificationsByIndustry lists the certifications a supplier in each
// industry plausibly holds. The synthesizer samples a prefix of the list so
// low-risk networks tend toward fuller certification coverage.
var certificationsByIndustry = map[core.Industry][]string{
	core.IndustryElectronics:     {"ISO 9001", "ISO 14001", "IPC-A-610", "RoHS"},
	core.IndustryAutomotive:      {"IATF 16949", "ISO 9001", "ISO 14001", "VDA 6.3"},
	core.IndustryPharmaceuticals: {"GMP", "GDP", "ISO 13485", "WHO PQ"},
	core.IndustryFoodBeverage:    {"HACCP", "ISO 22000", "BRCGS", "FSSC 22000"},
	core.IndustryFashion:         {"ISO 9001", "OEKO-TEX", "GOTS", "BSCI"},
	core.IndustryChemicals:       {"ISO 9001", "ISO 14001", "ISO 45001", "Responsible Care"},
}

// coldChainIndustries require temperature-controlled storage.
var coldChainIndustries = map[core.Industry]bool{
	core.IndustryPharmaceuticals: true,
	core.IndustryFoodBeverage:    true,
}

// retailChannels per industry.
var retailChannels = map[core.Industry][]string{
	core.IndustryElectronics:     {"online", "retail", "b2b"},
	core.IndustryAutomotive:      {"dealership", "b2b"},
	core.IndustryPharmaceuticals: {"pharmacy", "hospital", "online"},
	core.IndustryFoodBeverage:    {"grocery", "wholesale", "online"},
	core.IndustryFashion:         {"online", "retail", "outlet"},
	core.IndustryChemicals:       {"b2b", "wholesale"},
}

// detailsFor builds the type-specific detail record for a node. All sampling
// comes from rng, keeping synthesis deterministic per seed. certRichness is
// the fraction of the industry certification list a supplier carries
// (low-risk profiles pass a higher fraction).
func detailsFor(rng *rand.Rand, nodeType core.NodeType, industry core.Industry, location string, certRichness float64) core.Details {
	switch nodeType {
	case core.NodeSupplier:
		certs := certificationsByIndustry[industry]
		n := int(float64(len(certs))*certRichness + 0.5)
		if n > len(certs) {
			n = len(certs)
		}
		return core.SupplierDetails{
			ContactName:    fmt.Sprintf("%s Procurement Desk", location),
			ContactEmail:   fmt.Sprintf("procurement@%s.example.com", slug(location)),
			Certifications: append([]string(nil), certs[:n]...),
		}
	case core.NodeManufacturer:
		return core.FactoryDetails{
			ProductionCapacity: 1000 + rng.Intn(9001), // units/day
			WorkforceSize:      200 + rng.Intn(1801),
			ShiftsPerDay:       1 + rng.Intn(3),
		}
	case core.NodeWarehouse:
		storageType := "ambient"
		if coldChainIndustries[industry] {
			storageType = "temperature-controlled"
		}
		return core.StorageDetails{
			StorageType:           storageType,
			HandlingCapacity:      500 + rng.Intn(4501), // pallets/day
			TemperatureControlled: coldChainIndustries[industry],
		}
	case core.NodeDistributor:
		return core.FleetDetails{
			FleetSize:      20 + rng.Intn(181),
			CoverageAreaKm: 100 + rng.Intn(1901),
			OnTimeRatePct:  85 + rng.Float64()*13,
		}
	case core.NodeRetailer:
		channels := retailChannels[industry]
		return core.RetailDetails{
			StoreCount: 5 + rng.Intn(196),
			Channels:   append([]string(nil), channels...),
		}
	default:
		return nil
	}
}

// temperatureFor samples a warehouse temperature: cold-chain industries sit
// in the 2-8°C band, everything else at ambient.
func temperatureFor(rng *rand.Rand, industry core.Industry) float64 {
	if coldChainIndustries[industry] {
		return 2 + rng.Float64()*6
	}
	return 14 + rng.Float64()*8
}

func slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}
