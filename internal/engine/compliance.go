package engine

import "strings"

// Default MPG ceilings in kg CO2e/m²/yr per Dutch building function, as
// set by the Bouwbesluit trajectory for new construction.
const (
	DefaultDwellingLimit = 0.8
	DefaultOfficeLimit   = 1.0
)

// References maps normalized building types to MPG ceilings.
type References map[string]float64

var _ ReferenceSource = References(nil)

// NewReferences returns the default ceiling table overlaid with overrides.
// Override keys are normalized the same way lookups are, so configuration
// files can use any casing.
func NewReferences(overrides map[string]float64) References {
	refs := References{
		"woonfunctie":    DefaultDwellingLimit,
		"kantoorfunctie": DefaultOfficeLimit,
	}
	for buildingType, limit := range overrides {
		refs[normalizeBuildingType(buildingType)] = limit
	}
	return refs
}

// ReferenceValue implements ReferenceSource.
func (r References) ReferenceValue(buildingType string) (float64, bool) {
	v, ok := r[normalizeBuildingType(buildingType)]
	return v, ok
}

func normalizeBuildingType(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
