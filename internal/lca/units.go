package lca

import "strings"

// volumetricMarkers identify declared units that price GWP per volume or
// area rather than per mass.
var volumetricMarkers = []string{"m3", "m³", "m2", "m²"}

// isVolumetricUnit reports whether a declared unit string refers to a
// volumetric or areal quantity.
func isVolumetricUnit(declaredUnit string) bool {
	u := strings.ToLower(declaredUnit)
	for _, marker := range volumetricMarkers {
		if strings.Contains(u, marker) {
			return true
		}
	}
	return false
}

// ConvertImpact turns a per-declared-unit GWP figure into the impact of
// massKg kilograms of material m. It is the single conversion used by the
// A1-A3, C1-C4 and D calculators, so all phases round identically.
//
// Volumetric declared units with a known density are priced per kg by
// dividing out the density; otherwise the mass is rescaled to declared
// units via ConversionToKg (zero or one meaning the declared unit already
// is a kilogram). Never errors; absent GWP values enter as zero.
func ConvertImpact(massKg, gwpPerUnit float64, m Material) float64 {
	switch {
	case isVolumetricUnit(m.DeclaredUnit) && m.Density > 0:
		return massKg * (gwpPerUnit / m.Density)
	case m.ConversionToKg == 0 || m.ConversionToKg == 1:
		return massKg * gwpPerUnit
	default:
		return (massKg / m.ConversionToKg) * gwpPerUnit
	}
}

// LayerMass derives the mass in kg of one layer:
//
//	quantity × thickness × coverage × density
//
// Density falls back to bulk density; with both absent the mass is zero and
// every phase impact for the layer is zero, which is the documented
// degraded-data behavior rather than an error. Nil coverage means the layer
// spans the full element quantity.
func LayerMass(element Element, layer Layer, m Material) float64 {
	density := m.Density
	if density == 0 {
		density = m.BulkDensity
	}
	if density == 0 {
		return 0
	}

	coverage := 1.0
	if layer.Coverage != nil {
		coverage = *layer.Coverage
	}

	return element.Quantity * layer.Thickness * coverage * density
}
