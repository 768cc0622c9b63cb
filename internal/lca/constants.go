package lca

// Freight emission intensities in kg CO2e per tonne-kilometre, used by the
// transport-to-site phase (module A4):
//
//	impact = (mass_kg / 1000) * distance_km * factor
//
// Figures follow the CE Delft STREAM freight averages for Western Europe.
const (
	// TruckEmissionFactor is kg CO2e per tonne-km for average road freight.
	TruckEmissionFactor = 0.062

	// TrainEmissionFactor is kg CO2e per tonne-km for rail freight.
	TrainEmissionFactor = 0.022

	// ShipEmissionFactor is kg CO2e per tonne-km for inland/short-sea shipping.
	ShipEmissionFactor = 0.008

	// CombinedEmissionFactor is kg CO2e per tonne-km for multi-modal chains.
	CombinedEmissionFactor = 0.050

	// KgPerTonne converts kilograms to metric tonnes for the A4 formula.
	KgPerTonne = 1000.0
)

// Fallback values used when neither the layer nor the material nor the
// category tables provide a figure.
const (
	// DefaultTransportDistanceKm is the factory-to-site distance assumed
	// for materials of unknown origin.
	DefaultTransportDistanceKm = 300.0

	// DefaultServiceLifeYears is the replacement interval assumed for
	// materials without a reference service life.
	DefaultServiceLifeYears = 50.0

	// DefaultConstructionFactor is the A5 share of A1-A3 assumed for
	// unrecognized element categories.
	DefaultConstructionFactor = 0.05
)

// Operational-energy constants for module B6.
// Gas and electricity factors follow the Dutch national emission factor
// list (CO2emissiefactoren.nl, well-to-wheel).
const (
	// GasEmissionFactor is kg CO2e per m³ of natural gas burned.
	GasEmissionFactor = 1.884

	// ElectricityEmissionFactor is kg CO2e per kWh of Dutch grid electricity.
	ElectricityEmissionFactor = 0.475

	// UnknownLabelIntensity is kg CO2e/m²/yr assumed for an energy label
	// outside the recognized range.
	UnknownLabelIntensity = 30.0

	// DefaultOperationalIntensity is kg CO2e/m²/yr assumed when neither a
	// label nor metered consumption is available.
	DefaultOperationalIntensity = 25.0
)

// transportDistanceByCategory holds assumed factory-to-site distances in km
// per material category, reflecting typical Dutch supply chains (regionally
// sourced timber and concrete, imported metals and glass).
var transportDistanceByCategory = map[MaterialCategory]float64{
	CategoryConcrete:   100,
	CategoryTimber:     200,
	CategoryMasonry:    150,
	CategoryMetal:      300,
	CategoryInsulation: 250,
	CategoryGlass:      300,
	CategoryFinishes:   250,
}

// serviceLifeByCategory holds reference service lives in years per material
// category, used for replacement cycles (module B4) when the material record
// carries none.
var serviceLifeByCategory = map[MaterialCategory]float64{
	CategoryConcrete:   100,
	CategoryTimber:     75,
	CategoryMasonry:    100,
	CategoryMetal:      75,
	CategoryInsulation: 50,
	CategoryGlass:      30,
	CategoryFinishes:   25,
}

// constructionFactorByElement holds the construction-phase (A5) impact as a
// fraction of A1-A3, per element category. Installation-heavy categories
// (services, windows) sit at the top of the 0.02–0.10 range, massive
// in-place work (foundations) at the bottom.
var constructionFactorByElement = map[ElementCategory]float64{
	ElementExteriorWall: 0.05,
	ElementInteriorWall: 0.05,
	ElementFloor:        0.04,
	ElementRoof:         0.06,
	ElementFoundation:   0.02,
	ElementWindows:      0.08,
	ElementDoors:        0.08,
	ElementMEP:          0.10,
	ElementFinishes:     0.07,
	ElementOther:        0.05,
}

// intensityByEnergyLabel maps a Dutch energy label to an operational-carbon
// intensity in kg CO2e/m²/yr.
var intensityByEnergyLabel = map[string]float64{
	"A++++": 5,
	"A+++":  8,
	"A++":   12,
	"A+":    18,
	"A":     25,
	"B":     35,
	"C":     45,
	"D":     55,
}
