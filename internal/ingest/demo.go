package ingest

import (
	"time"

	"github.com/mvandervelde/bouwlca/internal/lca"
)

// DemoProjectID is fixed so repeated seeding overwrites the same record
// instead of piling up copies.
const DemoProjectID = "demo-rijtjeswoning"

func fptr(v float64) *float64 { return &v }

// DemoProject returns a seeded mid-terrace dwelling referencing only
// built-in catalog materials. It gives a fresh install something to
// calculate before any documents are imported.
func DemoProject() lca.Project {
	now := time.Now().UTC()
	return lca.Project{
		ID:             DemoProjectID,
		Name:           "Demo rijtjeswoning",
		BuildingType:   "woonfunctie",
		GrossFloorArea: 120,
		StudyPeriod:    DefaultStudyPeriodYears,
		EnergyLabel:    "A",
		Elements: []lca.Element{
			{
				ID:           "demo-el-foundation",
				Name:         "Fundering",
				Category:     lca.ElementFoundation,
				Quantity:     60,
				QuantityUnit: "m2",
				Layers: []lca.Layer{
					{ID: "demo-ly-foundation-slab", MaterialID: "concrete-c30", Position: 1, Thickness: 0.3},
				},
			},
			{
				ID:           "demo-el-walls",
				Name:         "Buitenmuren",
				Category:     lca.ElementExteriorWall,
				Quantity:     140,
				QuantityUnit: "m2",
				Layers: []lca.Layer{
					{ID: "demo-ly-brick", MaterialID: "brick-masonry", Position: 1, Thickness: 0.1},
					{ID: "demo-ly-wall-insulation", MaterialID: "insulation-rockwool", Position: 2, Thickness: 0.15},
					{ID: "demo-ly-wall-finish", MaterialID: "gypsum-board", Position: 3, Thickness: 0.0125, Coverage: fptr(0.9)},
				},
			},
			{
				ID:           "demo-el-floor",
				Name:         "Verdiepingsvloer",
				Category:     lca.ElementFloor,
				Quantity:     60,
				QuantityUnit: "m2",
				Layers: []lca.Layer{
					{ID: "demo-ly-clt", MaterialID: "clt-panel", Position: 1, Thickness: 0.2},
				},
			},
			{
				ID:           "demo-el-roof",
				Name:         "Dak",
				Category:     lca.ElementRoof,
				Quantity:     70,
				QuantityUnit: "m2",
				Layers: []lca.Layer{
					{ID: "demo-ly-rafters", MaterialID: "timber-stud", Position: 1, Thickness: 0.05, Coverage: fptr(0.2)},
					{ID: "demo-ly-roof-insulation", MaterialID: "insulation-rockwool", Position: 2, Thickness: 0.2},
				},
			},
			{
				ID:           "demo-el-windows",
				Name:         "Kozijnen en beglazing",
				Category:     lca.ElementWindows,
				Quantity:     25,
				QuantityUnit: "m2",
				Layers: []lca.Layer{
					{ID: "demo-ly-glazing", MaterialID: "glass-double", Position: 1, Thickness: 0.028},
				},
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
