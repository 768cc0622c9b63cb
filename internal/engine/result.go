package engine

import (
	"time"

	"github.com/mvandervelde/bouwlca/internal/lca"
)

// Result is the transient outcome of one project calculation. All impact
// values are kg CO2e for the whole building over the study period unless a
// field name says otherwise.
type Result struct {
	ProjectID   string `json:"project_id"`
	ProjectName string `json:"project_name"`

	A1A3 float64 `json:"a1_a3"`
	A4   float64 `json:"a4"`
	A5   float64 `json:"a5"`
	B4   float64 `json:"b4"`
	C1C2 float64 `json:"c1_c2"`
	C3   float64 `json:"c3"`
	C4   float64 `json:"c4"`
	D    float64 `json:"d"`

	// TotalAToC sums modules A through C. Module D is reported but never
	// totaled, per EN 15804.
	TotalAToC  float64 `json:"total_a_to_c"`
	TotalWithD float64 `json:"total_with_d"`

	Elements []ElementImpact `json:"breakdown_by_element"`
	Stages   StageBreakdown  `json:"breakdown_by_stage"`

	PerM2        float64 `json:"per_m2"`
	PerM2PerYear float64 `json:"per_m2_per_year"`

	// OperationalCarbon is the B6 estimate in kg CO2e/m²/yr.
	OperationalCarbon float64 `json:"operational_carbon"`
	// TotalCarbon combines embodied and operational carbon per m² per year.
	TotalCarbon float64 `json:"total_carbon"`

	Compliance Compliance `json:"compliance"`

	// CalculatedAt is zero for pure Compute runs and stamped by
	// CalculateProject just before persisting.
	CalculatedAt time.Time `json:"calculated_at"`
}

// TotalC returns the combined end-of-life modules C1 through C4.
func (r Result) TotalC() float64 {
	return r.C1C2 + r.C3 + r.C4
}

// ElementImpact is the per-element slice of a result. Total excludes
// module D; Percentage is the element's share of the project A-to-C total.
type ElementImpact struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Category lca.ElementCategory `json:"category"`

	A1A3 float64 `json:"a1_a3"`
	A4   float64 `json:"a4"`
	A5   float64 `json:"a5"`
	B4   float64 `json:"b4"`
	C    float64 `json:"c"`
	D    float64 `json:"d"`

	Total      float64 `json:"total"`
	Percentage float64 `json:"percentage"`
}

// StageBreakdown regroups the module totals by lifecycle stage for
// reporting.
type StageBreakdown struct {
	Production     float64 `json:"production"`
	Transport      float64 `json:"transport"`
	Construction   float64 `json:"construction"`
	UseReplacement float64 `json:"use_replacement"`
	EndOfLife      float64 `json:"end_of_life"`
	Benefits       float64 `json:"benefits"`
}

// Compliance reports the result against the MPG ceiling for the project's
// building type. Applicable is false when no reference value exists, in
// which case Compliant carries no meaning.
type Compliance struct {
	BuildingType   string  `json:"building_type"`
	ReferenceValue float64 `json:"mpg_reference_value,omitempty"`
	Applicable     bool    `json:"applicable"`
	Compliant      bool    `json:"is_compliant"`
}

// CachedTotals converts the result into the persisted shape stored on the
// project record.
func (r Result) CachedTotals() lca.CachedTotals {
	return lca.CachedTotals{
		TotalGWPA1A3:      r.A1A3,
		TotalGWPA4:        r.A4,
		TotalGWPA5:        r.A5,
		TotalGWPB4:        r.B4,
		TotalGWPC:         r.TotalC(),
		TotalGWPD:         r.D,
		TotalGWPSum:       r.TotalAToC,
		TotalGWPPerM2Year: r.PerM2PerYear,
		OperationalCarbon: r.OperationalCarbon,
		TotalCarbon:       r.TotalCarbon,
		MPGReferenceValue: r.Compliance.ReferenceValue,
		IsCompliant:       r.Compliance.Applicable && r.Compliance.Compliant,
		CalculatedAt:      r.CalculatedAt,
	}
}
