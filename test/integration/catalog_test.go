package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvandervelde/bouwlca/internal/catalog"
	"github.com/mvandervelde/bouwlca/internal/engine"
	"github.com/mvandervelde/bouwlca/internal/lca"
	"github.com/mvandervelde/bouwlca/internal/store"
)

func writeRelease(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
}

func TestCatalogReleaseOverridesChangeCalculations(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	// Two versions of the same release; the newer one must win.
	writeRelease(t, dir, "nmd-1.0.0.yaml", `materials:
  - id: concrete-c30
    name: Concrete C30/37, in-situ
    category: concrete
    density: 2400
    declared_unit: 1 m³
    gwp_a1_a3: 9999
`)
	writeRelease(t, dir, "nmd-1.1.0.yaml", `materials:
  - id: concrete-c30
    name: Concrete C30/37, in-situ
    category: concrete
    density: 2400
    declared_unit: 1 m³
    gwp_a1_a3: 200
`)

	cat, err := catalog.Load(ctx, dir)
	require.NoError(t, err)

	releases := cat.Releases()
	require.Len(t, releases, 1)
	assert.Equal(t, "nmd", releases[0].Name)
	assert.Equal(t, "1.1.0", releases[0].Version)

	project := lca.Project{
		ID:             "prj-floor",
		Name:           "Betonvloer",
		GrossFloorArea: 100,
		StudyPeriod:    75,
		Elements: []lca.Element{
			{
				Name:     "Vloer",
				Category: lca.ElementFloor,
				Quantity: 100,
				Layers:   []lca.Layer{{MaterialID: "concrete-c30", Position: 1, Thickness: 0.2}},
			},
		},
	}

	st := store.NewMemory()
	require.NoError(t, st.PutProject(ctx, project))

	eng := engine.New(st, cat, engine.NewReferences(nil), engine.Options{})
	result, err := eng.Compute(ctx, project)
	require.NoError(t, err)

	// 100 m2 x 0.2 m x 2400 kg/m3 = 48000 kg at the overridden
	// 200 / 2400 kg CO2e per kg.
	assert.InDelta(t, 4000.0, result.A1A3, 1e-9)
}

func TestCatalogSkipsUnparseableReleases(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	writeRelease(t, dir, "nmd-not-a-version.yaml", "materials: []\n")
	writeRelease(t, dir, "nmd-2.0.0.yaml", `materials:
  - id: strawbale
    name: Straw bale
    category: timber
    density: 110
    declared_unit: 1 m³
    gwp_a1_a3: -120
`)

	cat, err := catalog.Load(ctx, dir)
	require.NoError(t, err)

	_, ok := cat.Material("strawbale")
	assert.True(t, ok)

	require.Len(t, cat.Warnings(), 1)
	assert.Contains(t, cat.Warnings()[0], "nmd-not-a-version.yaml")

	// Builtins stay available alongside release materials.
	_, ok = cat.Material("clt-panel")
	assert.True(t, ok)
}
