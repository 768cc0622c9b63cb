package equiv

import "github.com/mvandervelde/bouwlca/internal/lca"

// Conversion factors, each the kg CO2e behind one unit of the equivalent:
//
//	equivalent = kg_CO2e / factor
const (
	// CarKmKg is kg CO2e per km for an average passenger car
	// (CE Delft STREAM passenger transport, tank-to-wheel).
	CarKmKg = 0.12

	// TreeSeedlingKg is kg CO2e absorbed by one tree seedling grown for
	// 10 years (EPA greenhouse gas equivalencies calculator).
	TreeSeedlingKg = 60.0

	// HouseholdGasM3 and HouseholdElectricityKWh are the annual energy use
	// of an average Dutch household.
	HouseholdGasM3          = 1100.0
	HouseholdElectricityKWh = 2500.0

	// HouseholdYearKg is the annual footprint of that household, derived
	// from the same emission factors module B6 uses.
	HouseholdYearKg = HouseholdGasM3*lca.GasEmissionFactor + HouseholdElectricityKWh*lca.ElectricityEmissionFactor
)

// Display thresholds.
const (
	// MinEquivalencyKg is the smallest magnitude worth translating.
	// Below it the equivalents are meaninglessly small.
	MinEquivalencyKg = 1.0

	// LargeNumberThreshold and BillionThreshold switch the formatter to
	// abbreviated "~X.X million" notation.
	LargeNumberThreshold = 1_000_000
	BillionThreshold     = 1_000_000_000
)
