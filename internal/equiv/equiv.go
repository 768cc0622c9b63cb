// Package equiv converts embodied-carbon figures into relatable real-world
// equivalents for display: distance driven by car, years of household energy
// use and tree growth. Negative figures mean net carbon storage and flip
// the phrasing.
package equiv

import (
	"fmt"
	"math"
)

// Kind identifies one equivalency category.
type Kind int

const (
	// KindCarKm expresses carbon as km driven in an average passenger car.
	KindCarKm Kind = iota
	// KindTreeSeedlings expresses carbon as tree seedlings grown for 10 years.
	KindTreeSeedlings
	// KindHouseholdYears expresses carbon as years of average Dutch
	// household energy use.
	KindHouseholdYears
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindCarKm:
		return "CarKm"
	case KindTreeSeedlings:
		return "TreeSeedlings"
	case KindHouseholdYears:
		return "HouseholdYears"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Equivalency is one calculated equivalent.
type Equivalency struct {
	Kind      Kind    `json:"kind"`
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
	Label     string  `json:"label"`
}

// Output holds the equivalencies for one carbon figure.
type Output struct {
	// InputKg is the original figure in kg CO2e, sign preserved.
	InputKg float64 `json:"input_kg"`

	// Stored is true when the input was negative: the building holds more
	// biogenic carbon than its production emitted.
	Stored bool `json:"stored"`

	Results []Equivalency `json:"results,omitempty"`

	// DisplayText is the full prose format for CLI output.
	DisplayText string `json:"display_text,omitempty"`

	// IsEmpty is true when the figure was too small to translate.
	IsEmpty bool `json:"is_empty"`
}

// ForEmbodiedCarbon computes equivalencies for a total in kg CO2e.
// Magnitudes under MinEquivalencyKg yield an empty output without error.
func ForEmbodiedCarbon(totalKg float64) (Output, error) {
	if math.IsInf(totalKg, 0) || math.IsNaN(totalKg) {
		return Output{IsEmpty: true}, ErrNotFinite
	}

	magnitude := math.Abs(totalKg)
	if magnitude < MinEquivalencyKg {
		return Output{InputKg: totalKg, IsEmpty: true}, nil
	}

	kms := magnitude / CarKmKg
	seedlings := magnitude / TreeSeedlingKg
	households := magnitude / HouseholdYearKg

	out := Output{
		InputKg: totalKg,
		Stored:  totalKg < 0,
		Results: []Equivalency{
			{Kind: KindCarKm, Value: kms, Formatted: FormatCount(kms), Label: "km by car"},
			{Kind: KindTreeSeedlings, Value: seedlings, Formatted: FormatCount(seedlings), Label: "tree seedlings grown for 10 years"},
			{Kind: KindHouseholdYears, Value: households, Formatted: FormatDecimal(households), Label: "household-years of energy"},
		},
	}

	if out.Stored {
		out.DisplayText = fmt.Sprintf("Stores as much carbon as ~%s tree seedlings absorb in 10 years",
			FormatCount(seedlings))
	} else {
		out.DisplayText = fmt.Sprintf("Equivalent to driving ~%s km or %s household-years of energy use",
			FormatCount(kms), FormatDecimal(households))
	}

	return out, nil
}
