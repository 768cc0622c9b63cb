package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mvandervelde/bouwlca/internal/lca"
	"github.com/mvandervelde/bouwlca/internal/store"
)

func TestRecalculateAll(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()

	first := testProject()
	require.NoError(t, mem.PutProject(ctx, first))

	second := testProject()
	second.ID = "prj-002"
	second.Name = "Hoekwoning"
	require.NoError(t, mem.PutProject(ctx, second))

	broken := testProject()
	broken.ID = "prj-003"
	broken.Name = "Kapotte invoer"
	broken.GrossFloorArea = 0
	require.NoError(t, mem.PutProject(ctx, broken))

	eng := New(mem, testResolver(testMaterials()), NewReferences(nil), Options{})
	outcomes, err := eng.RecalculateAll(ctx)
	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	// Outcomes follow the store's listing order, not completion order.
	require.Equal(t, "prj-001", outcomes[0].ProjectID)
	require.Equal(t, "prj-002", outcomes[1].ProjectID)
	require.Equal(t, "prj-003", outcomes[2].ProjectID)

	for _, outcome := range outcomes[:2] {
		require.NoError(t, outcome.Err)
		require.Empty(t, outcome.ErrorMessage)
		require.InDelta(t, 20076.5355, outcome.Result.TotalAToC, 1e-9)

		stored, getErr := mem.GetProject(ctx, outcome.ProjectID)
		require.NoError(t, getErr)
		require.NotNil(t, stored.Cached)
	}

	require.ErrorIs(t, outcomes[2].Err, lca.ErrInvalidFloorArea)
	require.Contains(t, outcomes[2].ErrorMessage, "gross floor area")

	stored, err := mem.GetProject(ctx, "prj-003")
	require.NoError(t, err)
	require.Nil(t, stored.Cached)
}

func TestRecalculateAllEmptyStore(t *testing.T) {
	eng := New(store.NewMemory(), testResolver(testMaterials()), nil, Options{})

	outcomes, err := eng.RecalculateAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, outcomes)
}
