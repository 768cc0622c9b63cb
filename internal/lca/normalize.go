package lca

import "fmt"

// Normalized carries the per-area and per-year derivations of a total
// impact, the units the MPG ceiling is expressed in.
type Normalized struct {
	PerM2        float64 `json:"per_m2"`
	PerM2PerYear float64 `json:"per_m2_per_year"`
}

// Normalize divides a total impact down to kg CO2e/m² and kg CO2e/m²/yr.
// Zero or negative floor area or study period is rejected with a typed
// error so no infinity or NaN can leave the calculation.
func Normalize(totalAToC, grossFloorArea, studyPeriodYears float64) (Normalized, error) {
	if grossFloorArea <= 0 {
		return Normalized{}, fmt.Errorf("%w: got %v", ErrInvalidFloorArea, grossFloorArea)
	}
	if studyPeriodYears <= 0 {
		return Normalized{}, fmt.Errorf("%w: got %v", ErrInvalidStudyPeriod, studyPeriodYears)
	}

	perM2 := totalAToC / grossFloorArea
	return Normalized{
		PerM2:        perM2,
		PerM2PerYear: perM2 / studyPeriodYears,
	}, nil
}

// ScoreDirection states whether a higher or a lower actual value is better.
type ScoreDirection string

// Score directions. For emissions, lower is better: use ScoreNegative.
const (
	ScorePositive ScoreDirection = "positive"
	ScoreNegative ScoreDirection = "negative"
)

// ScoreConfig parameterizes a comparison against a baseline. A nil
// BaseValue or a non-positive Margin makes the comparison undefined and
// scores zero.
type ScoreConfig struct {
	BaseValue *float64       `yaml:"base_value,omitempty" json:"base_value,omitempty"`
	Margin    float64        `yaml:"margin,omitempty" json:"margin,omitempty"`
	Direction ScoreDirection `yaml:"direction,omitempty" json:"direction,omitempty"`
}

// Score rates an actual value against a baseline on a bounded [-1, 1]
// scale: ((actual - base) / margin), sign-flipped when lower is better,
// clamped at the bounds.
func Score(actual float64, cfg ScoreConfig) float64 {
	if cfg.BaseValue == nil || cfg.Margin <= 0 {
		return 0
	}

	score := (actual - *cfg.BaseValue) / cfg.Margin
	if cfg.Direction == ScoreNegative {
		score = -score
	}

	switch {
	case score > 1:
		return 1
	case score < -1:
		return -1
	default:
		return score
	}
}
