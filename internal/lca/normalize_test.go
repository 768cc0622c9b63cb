package lca

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("divides down to m2 and year", func(t *testing.T) {
		got, err := Normalize(90000, 120, 75)
		require.NoError(t, err)
		assert.InDelta(t, 750, got.PerM2, 1e-9)  // 90000 / 120
		assert.InDelta(t, 10, got.PerM2PerYear, 1e-9) // 750 / 75
	})

	t.Run("negative totals stay finite and signed", func(t *testing.T) {
		got, err := Normalize(-7500, 100, 75)
		require.NoError(t, err)
		assert.InDelta(t, -1, got.PerM2PerYear, 1e-9)
		assert.False(t, math.IsInf(got.PerM2, 0))
	})

	tests := []struct {
		name    string
		gfa     float64
		study   float64
		wantErr error
	}{
		{name: "zero floor area", gfa: 0, study: 75, wantErr: ErrInvalidFloorArea},
		{name: "negative floor area", gfa: -10, study: 75, wantErr: ErrInvalidFloorArea},
		{name: "zero study period", gfa: 100, study: 0, wantErr: ErrInvalidStudyPeriod},
		{name: "negative study period", gfa: 100, study: -5, wantErr: ErrInvalidStudyPeriod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(1000, tt.gfa, tt.study)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		actual float64
		cfg    ScoreConfig
		want   float64
	}{
		{
			name:   "nil baseline scores zero",
			actual: 10,
			cfg:    ScoreConfig{Margin: 5},
			want:   0,
		},
		{
			name:   "zero margin scores zero",
			actual: 10,
			cfg:    ScoreConfig{BaseValue: fptr(8)},
			want:   0,
		},
		{
			name:   "above baseline positive direction",
			actual: 10,
			cfg:    ScoreConfig{BaseValue: fptr(8), Margin: 4, Direction: ScorePositive},
			want:   0.5, // (10-8)/4
		},
		{
			name:   "above baseline negative direction flips",
			actual: 10,
			cfg:    ScoreConfig{BaseValue: fptr(8), Margin: 4, Direction: ScoreNegative},
			want:   -0.5,
		},
		{
			name:   "emissions below the limit score well",
			actual: 0.6,
			cfg:    ScoreConfig{BaseValue: fptr(0.8), Margin: 0.4, Direction: ScoreNegative},
			want:   0.5, // -((0.6-0.8)/0.4)
		},
		{
			name:   "clamped at the upper bound",
			actual: 100,
			cfg:    ScoreConfig{BaseValue: fptr(0), Margin: 1, Direction: ScorePositive},
			want:   1,
		},
		{
			name:   "clamped at the lower bound",
			actual: 100,
			cfg:    ScoreConfig{BaseValue: fptr(0), Margin: 1, Direction: ScoreNegative},
			want:   -1,
		},
		{
			name:   "exactly on baseline",
			actual: 8,
			cfg:    ScoreConfig{BaseValue: fptr(8), Margin: 4, Direction: ScoreNegative},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Score(tt.actual, tt.cfg), 1e-9)
		})
	}
}
