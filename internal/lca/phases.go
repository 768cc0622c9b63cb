package lca

import "math"

// The nine phase calculators below each compute one EN 15804 lifecycle
// module for a single layer's mass. They share ConvertImpact so every
// phase interprets declared units the same way.

// ProductionImpact computes module A1-A3 (raw material supply, transport to
// factory, manufacturing). Negative results mean stored biogenic carbon.
func ProductionImpact(massKg float64, m Material) float64 {
	return ConvertImpact(massKg, m.GWPA1A3, m)
}

// TransportImpact computes module A4, the factory-to-site trip:
//
//	(mass / 1000) × distance_km × factor(mode)
func TransportImpact(massKg float64, layer Layer, m Material) float64 {
	return (massKg / KgPerTonne) * TransportDistanceKm(layer, m) * TransportEmissionFactor(m.TransportMode)
}

// ConstructionImpact computes module A5 (installation on site) as a
// category-dependent fraction of the layer's A1-A3 impact.
func ConstructionImpact(a1a3Impact float64, category ElementCategory) float64 {
	factor, ok := constructionFactorByElement[category]
	if !ok {
		factor = DefaultConstructionFactor
	}
	return a1a3Impact * factor
}

// ReplacementImpact computes module B4: every replacement during the study
// period re-incurs the layer's production impact. The initial installation
// is already counted in A1-A3 and excluded here.
func ReplacementImpact(massKg float64, layer Layer, m Material, studyPeriodYears float64) float64 {
	n := Replacements(ServiceLifeYears(layer, m), studyPeriodYears)
	if n == 0 {
		return 0
	}
	return float64(n) * ProductionImpact(massKg, m)
}

// DeconstructionImpact computes module C1 (demolition).
func DeconstructionImpact(massKg float64, m Material) float64 {
	return ConvertImpact(massKg, m.GWPC1, m)
}

// WasteTransportImpact computes module C2 (transport to waste processing).
func WasteTransportImpact(massKg float64, m Material) float64 {
	return ConvertImpact(massKg, m.GWPC2, m)
}

// WasteProcessingImpact computes module C3. For biogenic materials this can
// be large and positive: incineration releases the carbon stored in A1-A3.
func WasteProcessingImpact(massKg float64, m Material) float64 {
	return ConvertImpact(massKg, m.GWPC3, m)
}

// DisposalImpact computes module C4 (landfill).
func DisposalImpact(massKg float64, m Material) float64 {
	return ConvertImpact(massKg, m.GWPC4, m)
}

// EndOfLifeImpact is the exact C1+C2+C3+C4 sum for one layer.
func EndOfLifeImpact(massKg float64, m Material) float64 {
	return DeconstructionImpact(massKg, m) +
		WasteTransportImpact(massKg, m) +
		WasteProcessingImpact(massKg, m) +
		DisposalImpact(massKg, m)
}

// BenefitImpact computes module D (reuse, recycling and energy-recovery
// potential beyond the system boundary). Typically negative; reported
// separately and never part of a compliance total.
func BenefitImpact(massKg float64, m Material) float64 {
	return ConvertImpact(massKg, m.GWPD, m)
}

// Replacements counts how many times a component is replaced within the
// study period: max(0, floor(study/lifespan) - 1). A lifespan at or beyond
// the study period means zero replacements, as does a degenerate lifespan.
func Replacements(lifespanYears, studyPeriodYears float64) int {
	if lifespanYears <= 0 {
		return 0
	}
	n := int(math.Floor(studyPeriodYears/lifespanYears)) - 1
	if n < 0 {
		return 0
	}
	return n
}

// ServiceLifeYears resolves the replacement interval for a layer: layer
// override, then the material's reference service life, then the category
// table, then the global default. Zero and nil values fall through.
func ServiceLifeYears(layer Layer, m Material) float64 {
	if layer.CustomLifespan != nil && *layer.CustomLifespan != 0 {
		return *layer.CustomLifespan
	}
	if m.ReferenceServiceLife != nil && *m.ReferenceServiceLife != 0 {
		return *m.ReferenceServiceLife
	}
	if years, ok := serviceLifeByCategory[m.Category]; ok {
		return years
	}
	return DefaultServiceLifeYears
}

// TransportDistanceKm resolves the factory-to-site distance for a layer:
// layer override, then the material record, then the category table, then
// the global default. Zero and nil values fall through.
func TransportDistanceKm(layer Layer, m Material) float64 {
	if layer.CustomTransportKm != nil && *layer.CustomTransportKm != 0 {
		return *layer.CustomTransportKm
	}
	if m.TransportDistanceKm != nil && *m.TransportDistanceKm != 0 {
		return *m.TransportDistanceKm
	}
	if km, ok := transportDistanceByCategory[m.Category]; ok {
		return km
	}
	return DefaultTransportDistanceKm
}

// TransportEmissionFactor returns the kg CO2e per tonne-km for a transport
// mode. An unset or unknown mode is priced as road freight.
func TransportEmissionFactor(mode TransportMode) float64 {
	switch mode {
	case TransportTrain:
		return TrainEmissionFactor
	case TransportShip:
		return ShipEmissionFactor
	case TransportCombined:
		return CombinedEmissionFactor
	case TransportTruck:
		return TruckEmissionFactor
	default:
		return TruckEmissionFactor
	}
}

// SplitCombinedC spreads a combined end-of-life total over the C1+C2, C3
// and C4 buckets with fixed 0.3/0.3/0.4 ratios. This is a presentation
// approximation for legacy data that only recorded a combined C figure;
// calculations always produce the four modules individually.
func SplitCombinedC(totalC float64) (c1c2, c3, c4 float64) {
	return totalC * 0.3, totalC * 0.3, totalC * 0.4
}
