package lca

import "strings"

// OperationalCarbon estimates in-use energy emissions (module B6) in
// kg CO2e per m² per year. Three strategies, in priority order: the energy
// label table, metered gas and electricity consumption, then a flat
// default. The estimate is reported alongside the embodied phases and never
// summed into the A-to-C total.
func OperationalCarbon(p Project) float64 {
	if label := strings.ToUpper(strings.TrimSpace(p.EnergyLabel)); label != "" {
		if intensity, ok := intensityByEnergyLabel[label]; ok {
			return intensity
		}
		return UnknownLabelIntensity
	}

	if p.AnnualGasUse != nil && p.AnnualElectricity != nil && p.GrossFloorArea > 0 {
		annual := *p.AnnualGasUse*GasEmissionFactor + *p.AnnualElectricity*ElectricityEmissionFactor
		return annual / p.GrossFloorArea
	}

	return DefaultOperationalIntensity
}
