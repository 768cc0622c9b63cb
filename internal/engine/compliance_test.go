package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewReferencesDefaults(t *testing.T) {
	refs := NewReferences(nil)

	v, ok := refs.ReferenceValue("woonfunctie")
	require.True(t, ok)
	require.InDelta(t, 0.8, v, 1e-9)

	v, ok = refs.ReferenceValue("kantoorfunctie")
	require.True(t, ok)
	require.InDelta(t, 1.0, v, 1e-9)

	_, ok = refs.ReferenceValue("logiesfunctie")
	require.False(t, ok)
}

func TestNewReferencesOverrides(t *testing.T) {
	refs := NewReferences(map[string]float64{
		"woonfunctie":          1.2,
		"Bijeenkomstfunctie":   0.95,
		"  onderwijsfunctie  ": 0.9,
	})

	v, ok := refs.ReferenceValue("woonfunctie")
	require.True(t, ok)
	require.InDelta(t, 1.2, v, 1e-9)

	// Override keys are normalized, so mixed case and padding still match.
	v, ok = refs.ReferenceValue("bijeenkomstfunctie")
	require.True(t, ok)
	require.InDelta(t, 0.95, v, 1e-9)

	v, ok = refs.ReferenceValue("onderwijsfunctie")
	require.True(t, ok)
	require.InDelta(t, 0.9, v, 1e-9)

	// Untouched defaults survive an override of a sibling key.
	v, ok = refs.ReferenceValue("kantoorfunctie")
	require.True(t, ok)
	require.InDelta(t, 1.0, v, 1e-9)
}

func TestReferenceValueNormalizesLookups(t *testing.T) {
	refs := NewReferences(nil)

	v, ok := refs.ReferenceValue("  Woonfunctie  ")
	require.True(t, ok)
	require.InDelta(t, 0.8, v, 1e-9)

	_, ok = refs.ReferenceValue("")
	require.False(t, ok)
}
