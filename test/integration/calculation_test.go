// Package integration contains integration tests that exercise the bouwlca
// components together: document ingestion, storage, calculation and
// rendering.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvandervelde/bouwlca/internal/catalog"
	"github.com/mvandervelde/bouwlca/internal/engine"
	"github.com/mvandervelde/bouwlca/internal/ingest"
	"github.com/mvandervelde/bouwlca/internal/lca"
	"github.com/mvandervelde/bouwlca/internal/store"
)

const woningDocument = `project:
  name: Hoekwoning Zwolle
  building_type: woonfunctie
  gross_floor_area: 110
  study_period: 75
  energy_label: A+
  elements:
    - name: Fundering
      category: foundation
      quantity: 55
      quantity_unit: m2
      layers:
        - material_id: concrete-c30
          thickness: 0.25
    - name: Buitenmuren
      category: exterior_wall
      quantity: 130
      quantity_unit: m2
      layers:
        - material_id: brick-masonry
          thickness: 0.1
          position: 1
        - material_id: insulation-rockwool
          thickness: 0.15
          position: 2
`

// newEngine wires a store-backed resolver over the builtin catalog, the way
// the CLI runtime does.
func newEngine(ctx context.Context, st store.Store) *engine.Engine {
	resolver := engine.ChainResolvers(engine.ResolverFunc(func(id string) (lca.Material, bool) {
		m, err := st.GetMaterial(ctx, id)
		if err != nil {
			return lca.Material{}, false
		}
		return m, true
	}), catalog.New())
	return engine.New(st, resolver, engine.NewReferences(nil), engine.Options{})
}

func TestDocumentToCachedTotalsRoundTrip(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "bouwlca.db")

	st, err := store.Open(ctx, store.Options{Driver: store.DriverSQLite, Path: dbPath})
	require.NoError(t, err)

	project, materials, err := ingest.ParseProject(ctx, []byte(woningDocument))
	require.NoError(t, err)
	require.Empty(t, materials)
	require.NoError(t, st.PutProject(ctx, project))

	eng := newEngine(ctx, st)
	result, err := eng.CalculateProject(ctx, project.ID)
	require.NoError(t, err)
	require.Positive(t, result.TotalAToC)
	require.False(t, result.CalculatedAt.IsZero())

	require.NoError(t, st.Close())

	// Reopen the same file: the project and its cached totals must survive.
	st2, err := store.Open(ctx, store.Options{Driver: store.DriverSQLite, Path: dbPath})
	require.NoError(t, err)
	defer func() { require.NoError(t, st2.Close()) }()

	stored, err := st2.GetProject(ctx, project.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Cached)
	assert.InDelta(t, result.TotalAToC, stored.Cached.TotalGWPSum, 1e-9)
	assert.InDelta(t, result.PerM2PerYear, stored.Cached.TotalGWPPerM2Year, 1e-9)
	assert.True(t, stored.Cached.CalculatedAt.Equal(result.CalculatedAt))

	// A fresh calculation over the reopened store reproduces the totals
	// exactly.
	again, err := newEngine(ctx, st2).Compute(ctx, stored)
	require.NoError(t, err)
	assert.Equal(t, result.TotalAToC, again.TotalAToC)
	assert.Equal(t, result.A1A3, again.A1A3)
	assert.Equal(t, result.B4, again.B4)
}

func TestDocumentMaterialsShadowCatalog(t *testing.T) {
	ctx := context.Background()

	doc := `project:
  name: Eigen betonmengsel
  gross_floor_area: 100
  elements:
    - name: Vloer
      category: floor
      quantity: 100
      layers:
        - material_id: concrete-c30
          thickness: 0.2
materials:
  - id: concrete-c30
    name: Concrete C30/37, low-clinker
    category: concrete
    density: 2400
    declared_unit: 1 m³
    gwp_a1_a3: 150
`
	st := store.NewMemory()
	project, materials, err := ingest.ParseProject(ctx, []byte(doc))
	require.NoError(t, err)
	require.Len(t, materials, 1)

	require.NoError(t, st.PutProject(ctx, project))
	for _, m := range materials {
		require.NoError(t, st.PutMaterial(ctx, m))
	}

	result, err := newEngine(ctx, st).Compute(ctx, project)
	require.NoError(t, err)

	// 100 m2 x 0.2 m x 2400 kg/m3 = 48000 kg.
	// The stored low-clinker record wins over the builtin:
	// 48000 x (150 / 2400) = 3000, not 48000 x (250 / 2400) = 5000.
	assert.InDelta(t, 3000.0, result.A1A3, 1e-9)
}

func TestBatchRecalculationAcrossStoreReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "bouwlca.db")

	st, err := store.Open(ctx, store.Options{Driver: store.DriverSQLite, Path: dbPath})
	require.NoError(t, err)

	good := ingest.DemoProject()
	broken := lca.Project{ID: "prj-broken", Name: "Zonder oppervlak", StudyPeriod: 75}
	require.NoError(t, st.PutProject(ctx, good))
	require.NoError(t, st.PutProject(ctx, broken))
	require.NoError(t, st.Close())

	st2, err := store.Open(ctx, store.Options{Driver: store.DriverSQLite, Path: dbPath})
	require.NoError(t, err)
	defer func() { require.NoError(t, st2.Close()) }()

	outcomes, err := newEngine(ctx, st2).RecalculateAll(ctx)
	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	byID := make(map[string]engine.BatchOutcome, len(outcomes))
	for _, outcome := range outcomes {
		byID[outcome.ProjectID] = outcome
	}

	require.NoError(t, byID[good.ID].Err)
	require.Error(t, byID["prj-broken"].Err)
	assert.ErrorIs(t, byID["prj-broken"].Err, lca.ErrInvalidFloorArea)

	stored, err := st2.GetProject(ctx, good.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Cached)

	storedBroken, err := st2.GetProject(ctx, "prj-broken")
	require.NoError(t, err)
	assert.Nil(t, storedBroken.Cached)
}

func TestRenderedOutputsAgree(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	require.NoError(t, st.PutProject(ctx, ingest.DemoProject()))

	eng := newEngine(ctx, st)
	result, err := eng.CalculateProject(ctx, ingest.DemoProjectID)
	require.NoError(t, err)

	var table bytes.Buffer
	require.NoError(t, engine.RenderResultTable(&table, result))
	assert.Contains(t, table.String(), "Demo rijtjeswoning")
	assert.Contains(t, table.String(), "A1-A3")
	assert.Contains(t, table.String(), "MPG reference for woonfunctie")

	var jsonBuf bytes.Buffer
	require.NoError(t, engine.RenderResultJSON(&jsonBuf, result))

	var decoded struct {
		TotalAToC float64 `json:"total_a_to_c"`
		PerM2Year float64 `json:"per_m2_per_year"`
	}
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &decoded))
	assert.InDelta(t, result.TotalAToC, decoded.TotalAToC, 1e-9)
	assert.InDelta(t, result.PerM2PerYear, decoded.PerM2Year, 1e-9)

	// The table's A-C total renders the same figure the JSON carries.
	assert.Contains(t, table.String(), engine.FormatImpact(decoded.TotalAToC))
}
