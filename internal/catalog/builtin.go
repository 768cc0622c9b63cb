package catalog

import "github.com/mvandervelde/bouwlca/internal/lca"

func fptr(v float64) *float64 { return &v }

// builtinMaterials is the reference set shipped with the binary: common
// Dutch construction materials with EN 15804 module factors per declared
// unit. Volumetric materials declare per m³ and rely on density for unit
// conversion; sheet and profile materials declare per kg. Negative A1-A3
// figures are biogenic carbon storage, released again under C3 when the
// material is incinerated.
var builtinMaterials = []lca.Material{
	{
		ID:           "concrete-c30",
		Name:         "Concrete C30/37, in-situ",
		Category:     lca.CategoryConcrete,
		Density:      2400,
		DeclaredUnit: "1 m³",
		GWPA1A3:      250,
		GWPC1:        2.1,
		GWPC2:        1.7,
		GWPC3:        8.0,
		GWPC4:        1.2,
		GWPD:         -12,
	},
	{
		ID:           "concrete-prefab",
		Name:         "Concrete, prefabricated element",
		Category:     lca.CategoryConcrete,
		Density:      2500,
		DeclaredUnit: "1 m³",
		GWPA1A3:      320,
		GWPC1:        2.4,
		GWPC2:        1.7,
		GWPC3:        8.5,
		GWPC4:        1.3,
		GWPD:         -14,
		// Prefab travels from a limited number of plants.
		TransportDistanceKm: fptr(150),
	},
	{
		ID:             "steel-profile",
		Name:           "Steel, hot-rolled profile",
		Category:       lca.CategoryMetal,
		Density:        7850,
		DeclaredUnit:   "1 kg",
		ConversionToKg: 1,
		GWPA1A3:        1.85,
		GWPC1:          0.010,
		GWPC2:          0.008,
		GWPC3:          0.020,
		GWPC4:          0.001,
		GWPD:           -0.86,
		TransportMode:  lca.TransportTrain,
	},
	{
		ID:           "clt-panel",
		Name:         "Cross-laminated timber panel",
		Category:     lca.CategoryTimber,
		Density:      470,
		DeclaredUnit: "1 m³",
		GWPA1A3:      -580,
		GWPC1:        1.9,
		GWPC2:        2.2,
		GWPC3:        612,
		GWPC4:        4.1,
		GWPD:         -92,
	},
	{
		ID:                   "osb-board",
		Name:                 "OSB board",
		Category:             lca.CategoryTimber,
		Density:              600,
		DeclaredUnit:         "1 m³",
		GWPA1A3:              -534,
		GWPC1:                0.8,
		GWPC2:                1.1,
		GWPC3:                580,
		GWPC4:                6.0,
		GWPD:                 -48,
		ReferenceServiceLife: fptr(35),
	},
	{
		ID:           "timber-stud",
		Name:         "Softwood stud, planed",
		Category:     lca.CategoryTimber,
		Density:      450,
		DeclaredUnit: "1 m³",
		GWPA1A3:      -690,
		GWPC1:        1.2,
		GWPC2:        1.8,
		GWPC3:        740,
		GWPC4:        5.0,
		GWPD:         -110,
	},
	{
		ID:           "brick-masonry",
		Name:         "Clay brick masonry",
		Category:     lca.CategoryMasonry,
		Density:      1650,
		DeclaredUnit: "1 m³",
		GWPA1A3:      165,
		GWPC1:        1.8,
		GWPC2:        1.5,
		GWPC3:        4.2,
		GWPC4:        2.4,
		GWPD:         -6,
	},
	{
		ID:           "insulation-eps",
		Name:         "EPS insulation board",
		Category:     lca.CategoryInsulation,
		Density:      20,
		DeclaredUnit: "1 m³",
		GWPA1A3:      92,
		GWPC2:        0.2,
		GWPC3:        64,
		GWPC4:        0.4,
		GWPD:         -21,
	},
	{
		ID:           "insulation-rockwool",
		Name:         "Stone wool insulation",
		Category:     lca.CategoryInsulation,
		Density:      35,
		DeclaredUnit: "1 m³",
		GWPA1A3:      48,
		GWPC2:        0.3,
		GWPC3:        1.1,
		GWPC4:        2.8,
		GWPD:         -2,
	},
	{
		ID:             "glass-double",
		Name:           "Double glazing unit",
		Category:       lca.CategoryGlass,
		Density:        2500,
		DeclaredUnit:   "1 kg",
		ConversionToKg: 1,
		GWPA1A3:        1.25,
		GWPC1:          0.004,
		GWPC2:          0.006,
		GWPC3:          0.012,
		GWPC4:          0.009,
		GWPD:           -0.32,
	},
	{
		ID:                   "gypsum-board",
		Name:                 "Gypsum plasterboard",
		Category:             lca.CategoryFinishes,
		Density:              900,
		DeclaredUnit:         "1 kg",
		ConversionToKg:       1,
		GWPA1A3:              0.28,
		GWPC2:                0.004,
		GWPC3:                0.060,
		GWPC4:                0.090,
		GWPD:                 -0.02,
		ReferenceServiceLife: fptr(50),
	},
}
