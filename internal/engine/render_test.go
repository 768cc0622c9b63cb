package engine

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mvandervelde/bouwlca/internal/lca"
)

func TestFormatHelpers(t *testing.T) {
	require.Equal(t, "12,345.7", FormatImpact(12345.678))
	require.Equal(t, "-6,680.0", FormatImpact(-6680))
	require.Equal(t, "0.750", FormatIntensity(0.75))
	require.Equal(t, "33.5%", FormatShare(33.478))
}

func TestRenderResultTable(t *testing.T) {
	result := Result{
		ProjectID:   "prj-001",
		ProjectName: "Rijtjeswoning Utrecht",
		A1A3:        17460,
		A4:          292.9355,
		A5:          998.6,
		B4:          900,
		C1C2:        80,
		C3:          305,
		C4:          40,
		D:           -6680,
		TotalAToC:   20076.5355,
		TotalWithD:  13396.5355,
		Elements: []ElementImpact{
			{ID: "el-wall", Name: "Buitenmuur", Category: lca.ElementExteriorWall, Total: 6721.4875, Percentage: 33.48},
			{ID: "el-roof", Name: "Dak", Category: lca.ElementRoof, Total: 13355.048, Percentage: 66.52},
		},
		PerM2:             167.3044625,
		PerM2PerYear:      2.230726,
		OperationalCarbon: 25,
		TotalCarbon:       2.564059,
		Compliance: Compliance{
			BuildingType:   "woonfunctie",
			ReferenceValue: 0.8,
			Applicable:     true,
			Compliant:      false,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderResultTable(&buf, result))
	out := buf.String()

	require.Contains(t, out, "Project: Rijtjeswoning Utrecht (prj-001)")
	require.Contains(t, out, "MODULE")
	require.Contains(t, out, "A1-A3")
	require.Contains(t, out, "Production")
	require.Contains(t, out, "17,460.0")
	require.Contains(t, out, "Waste processing")
	require.Contains(t, out, "20,076.5")
	require.Contains(t, out, "ELEMENT")
	require.Contains(t, out, "Buitenmuur")
	require.Contains(t, out, "exterior_wall")
	require.Contains(t, out, "33.5%")
	require.Contains(t, out, "Embodied per year")
	require.Contains(t, out, "2.231 kg CO2e/m2/yr")
	// 20076.5355 / 0.12 = 167,304 km; 20076.5355 / 3259.9 = 6.2 household-years.
	require.Contains(t, out, "Equivalent to driving ~167,304 km or 6.2 household-years of energy use")
	require.Contains(t, out, "MPG reference for woonfunctie")
	require.Contains(t, out, "exceeds the limit")
}

func TestRenderResultTableStorageEquivalency(t *testing.T) {
	result := Result{
		ProjectID:   "prj-clt",
		ProjectName: "Houtbouw",
		TotalAToC:   -6680,
	}

	var buf bytes.Buffer
	require.NoError(t, RenderResultTable(&buf, result))
	require.Contains(t, buf.String(), "Stores as much carbon as ~111 tree seedlings absorb in 10 years")
}

func TestRenderResultTableCompliantAndUnknown(t *testing.T) {
	compliant := Result{
		ProjectName: "Kantoor",
		Compliance:  Compliance{BuildingType: "kantoorfunctie", ReferenceValue: 1.0, Applicable: true, Compliant: true},
	}
	var buf bytes.Buffer
	require.NoError(t, RenderResultTable(&buf, compliant))
	require.Contains(t, buf.String(), "within the limit")

	unknown := Result{
		ProjectName: "Stadion",
		Compliance:  Compliance{BuildingType: "stadion"},
	}
	buf.Reset()
	require.NoError(t, RenderResultTable(&buf, unknown))
	require.Contains(t, buf.String(), `No MPG reference value for building type "stadion"`)
}

func TestRenderResultJSON(t *testing.T) {
	result := Result{
		ProjectID:  "prj-001",
		TotalAToC:  20076.5355,
		TotalWithD: 13396.5355,
		Elements: []ElementImpact{
			{ID: "el-wall", Name: "Buitenmuur", Total: 6721.4875},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderResultJSON(&buf, result))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.InDelta(t, 20076.5355, decoded["total_a_to_c"], 1e-9)
	require.InDelta(t, 13396.5355, decoded["total_with_d"], 1e-9)

	elements, ok := decoded["breakdown_by_element"].([]any)
	require.True(t, ok)
	require.Len(t, elements, 1)

	// Indented output, not a single line.
	require.Contains(t, buf.String(), "\n  \"project_id\"")
}

func TestRenderResultJSONEmptyElements(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderResultJSON(&buf, Result{ProjectID: "prj-empty"}))

	require.Contains(t, buf.String(), `"breakdown_by_element": []`)
	require.NotContains(t, buf.String(), `"breakdown_by_element": null`)
}

func TestRenderBatchTable(t *testing.T) {
	outcomes := []BatchOutcome{
		{
			ProjectID:   "prj-001",
			ProjectName: "Rijtjeswoning",
			Result: Result{
				TotalAToC:    20076.5355,
				PerM2PerYear: 2.2307,
				Compliance:   Compliance{Applicable: true, Compliant: false},
			},
		},
		{
			ProjectID:    "prj-002",
			ProjectName:  "Kapotte invoer",
			Err:          errors.New("gross floor area must be positive"),
			ErrorMessage: "gross floor area must be positive",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderBatchTable(&buf, outcomes))
	out := buf.String()

	require.Contains(t, out, "PROJECT")
	require.Contains(t, out, "Rijtjeswoning")
	require.Contains(t, out, "20,076.5")
	require.Contains(t, out, "fail")
	require.Contains(t, out, "ok")
	require.Contains(t, out, "Kapotte invoer")
	require.Contains(t, out, "gross floor area must be positive")
}

func TestRenderBatchJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderBatchJSON(&buf, nil))
	require.Equal(t, "[]\n", buf.String())

	buf.Reset()
	outcomes := []BatchOutcome{
		{ProjectID: "prj-002", ErrorMessage: "gross floor area must be positive"},
	}
	require.NoError(t, RenderBatchJSON(&buf, outcomes))
	require.Contains(t, buf.String(), `"error": "gross floor area must be positive"`)
}
