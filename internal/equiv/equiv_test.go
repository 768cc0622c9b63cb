package equiv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForEmbodiedCarbon(t *testing.T) {
	tests := []struct {
		name           string
		inputKg        float64
		wantKm         float64
		wantSeedlings  float64
		wantHouseholds float64
		wantStored     bool
		wantIsEmpty    bool
		wantErr        error
		displayContain string
	}{
		{
			name:           "typical dwelling total",
			inputKg:        32600.0,
			wantKm:         271666.666667, // 32600 / 0.12
			wantSeedlings:  543.333333,    // 32600 / 60
			wantHouseholds: 10.000307,     // 32600 / 3259.9
			displayContain: "Equivalent to driving ~271,667 km or 10.0 household-years of energy use",
		},
		{
			name:           "net carbon storage flips the phrasing",
			inputKg:        -6680.0,
			wantKm:         55666.666667,
			wantSeedlings:  111.333333, // 6680 / 60
			wantHouseholds: 2.049143,
			wantStored:     true,
			displayContain: "Stores as much carbon as ~111 tree seedlings absorb in 10 years",
		},
		{
			name:        "below threshold returns empty",
			inputKg:     0.5,
			wantIsEmpty: true,
		},
		{
			name:        "small storage below threshold returns empty",
			inputKg:     -0.5,
			wantIsEmpty: true,
		},
		{
			name:        "zero returns empty",
			inputKg:     0.0,
			wantIsEmpty: true,
		},
		{
			name:           "exactly at threshold",
			inputKg:        1.0,
			wantKm:         8.333333,
			wantSeedlings:  0.016667,
			wantHouseholds: 0.000307,
			displayContain: "Equivalent to driving ~8 km",
		},
		{
			name:    "infinite input",
			inputKg: math.Inf(1),
			wantErr: ErrNotFinite,
		},
		{
			name:    "NaN input",
			inputKg: math.NaN(),
			wantErr: ErrNotFinite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ForEmbodiedCarbon(tt.inputKg)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, out.IsEmpty)
				return
			}
			require.NoError(t, err)

			if tt.wantIsEmpty {
				assert.True(t, out.IsEmpty)
				assert.Empty(t, out.Results)
				assert.InDelta(t, tt.inputKg, out.InputKg, 1e-9)
				return
			}

			require.False(t, out.IsEmpty)
			require.Len(t, out.Results, 3)
			assert.Equal(t, tt.wantStored, out.Stored)
			assert.InDelta(t, tt.inputKg, out.InputKg, 1e-9)

			byKind := make(map[Kind]Equivalency, len(out.Results))
			for _, r := range out.Results {
				byKind[r.Kind] = r
			}
			assert.InDelta(t, tt.wantKm, byKind[KindCarKm].Value, 1e-4)
			assert.InDelta(t, tt.wantSeedlings, byKind[KindTreeSeedlings].Value, 1e-4)
			assert.InDelta(t, tt.wantHouseholds, byKind[KindHouseholdYears].Value, 1e-4)

			assert.Contains(t, out.DisplayText, tt.displayContain)
		})
	}
}

func TestHouseholdYearDerivation(t *testing.T) {
	// 1100 m3 gas x 1.884 + 2500 kWh x 0.475 = 2072.4 + 1187.5
	assert.InDelta(t, 3259.9, HouseholdYearKg, 1e-9)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "CarKm", KindCarKm.String())
	assert.Equal(t, "TreeSeedlings", KindTreeSeedlings.String())
	assert.Equal(t, "HouseholdYears", KindHouseholdYears.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}
