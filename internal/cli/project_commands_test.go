package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProjectDocument = `project:
  name: Hennepwoning
  building_type: woonfunctie
  gross_floor_area: 100
  study_period: 75
  elements:
    - name: Buitenmuur
      category: exterior_wall
      quantity: 50
      quantity_unit: m2
      layers:
        - material_id: hempcrete-block
          thickness: 0.3
materials:
  - id: hempcrete-block
    name: Hempcrete block
    category: timber
    density: 400
    declared_unit: 1 m³
    gwp_a1_a3: -100
`

func TestProjectDemoWorkflow(t *testing.T) {
	setupCLIHome(t)

	out, _, err := executeCommand(t, "project", "import", "--demo")
	require.NoError(t, err)
	assert.Contains(t, out, `Imported project "Demo rijtjeswoning" (demo-rijtjeswoning)`)

	out, _, err = executeCommand(t, "project", "calculate", "demo-rijtjeswoning")
	require.NoError(t, err)
	assert.Contains(t, out, "Project: Demo rijtjeswoning (demo-rijtjeswoning)")
	assert.Contains(t, out, "A1-A3")
	assert.Contains(t, out, "Combined total")
	assert.Contains(t, out, "MPG reference for woonfunctie")

	// The SQLite store persists across command invocations, so the cached
	// totals must be visible from a fresh process.
	out, _, err = executeCommand(t, "project", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "demo-rijtjeswoning")
	assert.Contains(t, out, "woonfunctie")

	out, _, err = executeCommand(t, "project", "show", "demo-rijtjeswoning")
	require.NoError(t, err)
	assert.Contains(t, out, "Total A-C:")
	assert.Contains(t, out, "Fundering")
	assert.Contains(t, out, "Calculated at:")

	out, _, err = executeCommand(t, "project", "recalculate", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "demo-rijtjeswoning")
	assert.Contains(t, out, "ok")

	out, _, err = executeCommand(t, "project", "delete", "demo-rijtjeswoning")
	require.NoError(t, err)
	assert.Contains(t, out, `Deleted project "demo-rijtjeswoning"`)

	out, _, err = executeCommand(t, "project", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No projects stored.")
}

func TestProjectImportFileAndCalculateJSON(t *testing.T) {
	setupCLIHome(t)

	docPath := filepath.Join(t.TempDir(), "hennepwoning.yaml")
	require.NoError(t, os.WriteFile(docPath, []byte(testProjectDocument), 0o600))

	out, _, err := executeCommand(t, "project", "import", docPath)
	require.NoError(t, err)
	assert.Contains(t, out, `Imported project "Hennepwoning"`)
	assert.Contains(t, out, "Stored 1 project material(s)")

	// Recover the generated project id from the list output.
	listOut, _, err := executeCommand(t, "project", "list", "--output", "json")
	require.NoError(t, err)

	var projects []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(listOut), &projects))
	require.Len(t, projects, 1)
	require.Equal(t, "Hennepwoning", projects[0].Name)

	out, _, err = executeCommand(t, "project", "calculate", projects[0].ID, "--output", "json")
	require.NoError(t, err)

	var result struct {
		ProjectID string  `json:"project_id"`
		A1A3      float64 `json:"a1_a3"`
		A4        float64 `json:"a4"`
		A5        float64 `json:"a5"`
		TotalAToC float64 `json:"total_a_to_c"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	// 50 m2 x 0.3 m x 400 kg/m3 = 6000 kg of hempcrete.
	// A1-A3: 6000 x (-100 / 400) = -1500
	// A4:    (6000/1000) x 200 km x 0.062 = 74.4
	// A5:    -1500 x 0.05 = -75
	assert.Equal(t, projects[0].ID, result.ProjectID)
	assert.InDelta(t, -1500.0, result.A1A3, 1e-9)
	assert.InDelta(t, 74.4, result.A4, 1e-9)
	assert.InDelta(t, -75.0, result.A5, 1e-9)
	assert.InDelta(t, -1500.6, result.TotalAToC, 1e-9)
}

func TestProjectImportRequiresFileOrDemo(t *testing.T) {
	setupCLIHome(t)

	_, _, err := executeCommand(t, "project", "import")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a project file is required unless --demo is set")
}

func TestProjectImportRejectsDemoWithFile(t *testing.T) {
	setupCLIHome(t)

	_, _, err := executeCommand(t, "project", "import", "--demo", "some-file.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--demo cannot be combined with a project file")
}

func TestProjectImportWarnsOnUnknownMaterials(t *testing.T) {
	setupCLIHome(t)

	doc := `project:
  name: Mysteriewoning
  gross_floor_area: 80
  elements:
    - name: Muur
      category: exterior_wall
      quantity: 10
      layers:
        - material_id: unobtainium
          thickness: 0.1
`
	docPath := filepath.Join(t.TempDir(), "project.yaml")
	require.NoError(t, os.WriteFile(docPath, []byte(doc), 0o600))

	_, errOut, err := executeCommand(t, "project", "import", docPath)
	require.NoError(t, err)
	assert.Contains(t, errOut, `material "unobtainium" is not in the catalog or store`)
}

func TestProjectCalculateUnknownProject(t *testing.T) {
	setupCLIHome(t)

	_, _, err := executeCommand(t, "project", "calculate", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record not found")
}

func TestProjectShowUnknownProject(t *testing.T) {
	setupCLIHome(t)

	_, _, err := executeCommand(t, "project", "show", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record not found")
}

func TestProjectDeleteUnknownProject(t *testing.T) {
	setupCLIHome(t)

	_, _, err := executeCommand(t, "project", "delete", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record not found")
}

func TestProjectRecalculateRequiresAll(t *testing.T) {
	setupCLIHome(t)

	_, _, err := executeCommand(t, "project", "recalculate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--all")
}

func TestProjectRecalculateEmptyStore(t *testing.T) {
	setupCLIHome(t)

	out, _, err := executeCommand(t, "project", "recalculate", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "No projects stored.")
}

func TestProjectListUnknownOutputFormat(t *testing.T) {
	setupCLIHome(t)

	_, _, err := executeCommand(t, "project", "list", "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown output format "xml"`)
}
