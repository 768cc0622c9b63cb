// Package lca implements the EN 15804 lifecycle-module calculations behind
// the Dutch MPG methodology: per-layer mass derivation, declared-unit
// conversion, the phase calculators A1-A3 through D, operational carbon
// (B6), replacement cycles (B4) and result normalization.
//
// Every function in this package is pure. Aggregation over projects and
// persistence of cached totals live in internal/engine and internal/store.
package lca

import "time"

// TransportMode identifies how a material travels from factory to site.
type TransportMode string

// Transport modes with distinct emission intensities.
const (
	TransportTruck    TransportMode = "truck"
	TransportTrain    TransportMode = "train"
	TransportShip     TransportMode = "ship"
	TransportCombined TransportMode = "combined"
)

// MaterialCategory groups materials for service-life and transport-distance
// defaults when a material record carries neither.
type MaterialCategory string

// Material categories recognized by the default tables.
const (
	CategoryConcrete   MaterialCategory = "concrete"
	CategoryTimber     MaterialCategory = "timber"
	CategoryMasonry    MaterialCategory = "masonry"
	CategoryMetal      MaterialCategory = "metal"
	CategoryInsulation MaterialCategory = "insulation"
	CategoryGlass      MaterialCategory = "glass"
	CategoryFinishes   MaterialCategory = "finishes"
	CategoryOther      MaterialCategory = "other"
)

// ElementCategory classifies a building element and drives the
// construction-phase (A5) percentage factor.
type ElementCategory string

// Element categories.
const (
	ElementExteriorWall ElementCategory = "exterior_wall"
	ElementInteriorWall ElementCategory = "interior_wall"
	ElementFloor        ElementCategory = "floor"
	ElementRoof         ElementCategory = "roof"
	ElementFoundation   ElementCategory = "foundation"
	ElementWindows      ElementCategory = "windows"
	ElementDoors        ElementCategory = "doors"
	ElementMEP          ElementCategory = "mep"
	ElementFinishes     ElementCategory = "finishes"
	ElementOther        ElementCategory = "other"
)

// Material is an immutable catalog record: physical properties plus GWP
// factors per declared unit for each lifecycle module. GWP values may be
// negative (biogenic carbon storage for A1-A3, circular-economy credit
// for D).
type Material struct {
	ID       string           `yaml:"id" json:"id"`
	Name     string           `yaml:"name" json:"name"`
	Category MaterialCategory `yaml:"category,omitempty" json:"category,omitempty"`

	// SourceUUID and Version identify the upstream EPD record and the
	// catalog release the material came from.
	SourceUUID string `yaml:"source_uuid,omitempty" json:"source_uuid,omitempty"`
	Version    string `yaml:"version,omitempty" json:"version,omitempty"`

	// Density and BulkDensity are kg/m³. The first non-zero one converts
	// layer volume to mass; both zero means mass 0 for layers using this
	// material.
	Density     float64 `yaml:"density,omitempty" json:"density,omitempty"`
	BulkDensity float64 `yaml:"bulk_density,omitempty" json:"bulk_density,omitempty"`

	// DeclaredUnit is the EPD unit the GWP figures refer to, e.g. "1 kg",
	// "1 m³" or "1 m²". ConversionToKg converts one declared unit to
	// kilograms; zero is treated as 1.
	DeclaredUnit   string  `yaml:"declared_unit,omitempty" json:"declared_unit,omitempty"`
	ConversionToKg float64 `yaml:"conversion_to_kg,omitempty" json:"conversion_to_kg,omitempty"`

	GWPA1A3 float64 `yaml:"gwp_a1_a3,omitempty" json:"gwp_a1_a3,omitempty"`
	GWPA4   float64 `yaml:"gwp_a4,omitempty" json:"gwp_a4,omitempty"`
	GWPA5   float64 `yaml:"gwp_a5,omitempty" json:"gwp_a5,omitempty"`
	GWPC1   float64 `yaml:"gwp_c1,omitempty" json:"gwp_c1,omitempty"`
	GWPC2   float64 `yaml:"gwp_c2,omitempty" json:"gwp_c2,omitempty"`
	GWPC3   float64 `yaml:"gwp_c3,omitempty" json:"gwp_c3,omitempty"`
	GWPC4   float64 `yaml:"gwp_c4,omitempty" json:"gwp_c4,omitempty"`
	GWPD    float64 `yaml:"gwp_d,omitempty" json:"gwp_d,omitempty"`

	// ReferenceServiceLife is the expected years before replacement.
	// TransportDistanceKm and TransportMode describe the factory-to-site
	// trip. All three fall back to category defaults when nil, zero or
	// unset.
	ReferenceServiceLife *float64      `yaml:"reference_service_life,omitempty" json:"reference_service_life,omitempty"`
	TransportDistanceKm  *float64      `yaml:"transport_distance,omitempty" json:"transport_distance,omitempty"`
	TransportMode        TransportMode `yaml:"transport_mode,omitempty" json:"transport_mode,omitempty"`
}

// Layer is one material sheet inside an element. Layers are ordered by
// Position and immutable during a calculation pass.
type Layer struct {
	ID         string `yaml:"id,omitempty" json:"id,omitempty"`
	MaterialID string `yaml:"material_id" json:"material_id"`
	Position   int    `yaml:"position" json:"position"`

	// Thickness is meters. Coverage is the covered fraction of the element
	// quantity (0..1); nil means full coverage.
	Thickness float64  `yaml:"thickness" json:"thickness"`
	Coverage  *float64 `yaml:"coverage,omitempty" json:"coverage,omitempty"`

	// Per-layer overrides. Nil or zero falls through to the material record
	// and then the category default tables.
	CustomLifespan    *float64 `yaml:"custom_lifespan,omitempty" json:"custom_lifespan,omitempty"`
	CustomTransportKm *float64 `yaml:"custom_transport_km,omitempty" json:"custom_transport_km,omitempty"`
	CustomEndOfLife   string   `yaml:"custom_eol_scenario,omitempty" json:"custom_eol_scenario,omitempty"`
}

// Element is a building component (a wall, a floor) built up from layers.
// Quantity is an area or length in QuantityUnit; multiplied by layer
// thickness and coverage it yields layer volume.
type Element struct {
	ID           string          `yaml:"id,omitempty" json:"id,omitempty"`
	Name         string          `yaml:"name" json:"name"`
	Category     ElementCategory `yaml:"category" json:"category"`
	Quantity     float64         `yaml:"quantity" json:"quantity"`
	QuantityUnit string          `yaml:"quantity_unit,omitempty" json:"quantity_unit,omitempty"`
	Layers       []Layer         `yaml:"layers,omitempty" json:"layers,omitempty"`
}

// Project is the aggregate root for one building design.
type Project struct {
	ID           string `yaml:"id,omitempty" json:"id,omitempty"`
	Name         string `yaml:"name" json:"name"`
	BuildingType string `yaml:"building_type,omitempty" json:"building_type,omitempty"`

	// GrossFloorArea is m². StudyPeriod is the assessment horizon in years,
	// 75 for Dutch MPG.
	GrossFloorArea float64 `yaml:"gross_floor_area" json:"gross_floor_area"`
	StudyPeriod    float64 `yaml:"study_period" json:"study_period"`

	// Operational-energy inputs for module B6. EnergyLabel wins over the
	// metered figures when both are present.
	EnergyLabel       string   `yaml:"energy_label,omitempty" json:"energy_label,omitempty"`
	AnnualGasUse      *float64 `yaml:"annual_gas_use,omitempty" json:"annual_gas_use,omitempty"`
	AnnualElectricity *float64 `yaml:"annual_electricity,omitempty" json:"annual_electricity,omitempty"`

	Elements []Element `yaml:"elements,omitempty" json:"elements,omitempty"`

	// Cached holds derived totals from the latest persisted calculation.
	// Always stale-or-equal to a fresh computation over the same tree.
	Cached *CachedTotals `yaml:"cached,omitempty" json:"cached,omitempty"`

	CreatedAt time.Time `yaml:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time `yaml:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// CachedTotals are the derived calculation outputs stored on a project.
// TotalGWPC is the exact C1+C2+C3+C4 sum, never the presentation split.
type CachedTotals struct {
	TotalGWPA1A3 float64 `yaml:"total_gwp_a1_a3" json:"total_gwp_a1_a3"`
	TotalGWPA4   float64 `yaml:"total_gwp_a4" json:"total_gwp_a4"`
	TotalGWPA5   float64 `yaml:"total_gwp_a5" json:"total_gwp_a5"`
	TotalGWPB4   float64 `yaml:"total_gwp_b4" json:"total_gwp_b4"`
	TotalGWPC    float64 `yaml:"total_gwp_c" json:"total_gwp_c"`
	TotalGWPD    float64 `yaml:"total_gwp_d" json:"total_gwp_d"`

	// TotalGWPSum is A1-A3 + A4 + A5 + B4 + C, excluding D.
	TotalGWPSum       float64 `yaml:"total_gwp_sum" json:"total_gwp_sum"`
	TotalGWPPerM2Year float64 `yaml:"total_gwp_per_m2_year" json:"total_gwp_per_m2_year"`

	// OperationalCarbon is the B6 estimate in kg CO₂-eq/m²/yr.
	// TotalCarbon adds it (amortized over the study period) to the
	// embodied per-m²-per-year figure.
	OperationalCarbon float64 `yaml:"operational_carbon" json:"operational_carbon"`
	TotalCarbon       float64 `yaml:"total_carbon" json:"total_carbon"`

	MPGReferenceValue float64 `yaml:"mpg_reference_value,omitempty" json:"mpg_reference_value,omitempty"`
	IsCompliant       bool    `yaml:"is_compliant" json:"is_compliant"`

	CalculatedAt time.Time `yaml:"calculated_at" json:"calculated_at"`
}
