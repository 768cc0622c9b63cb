package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialsListBuiltins(t *testing.T) {
	setupCLIHome(t)

	out, _, err := executeCommand(t, "materials", "list")
	require.NoError(t, err)

	assert.Contains(t, out, "concrete-c30")
	assert.Contains(t, out, "clt-panel")
	assert.Contains(t, out, "catalog")
}

func TestMaterialsListIncludesProjectMaterials(t *testing.T) {
	setupCLIHome(t)

	docPath := filepath.Join(t.TempDir(), "project.yaml")
	require.NoError(t, os.WriteFile(docPath, []byte(testProjectDocument), 0o600))
	_, _, err := executeCommand(t, "project", "import", docPath)
	require.NoError(t, err)

	out, _, err := executeCommand(t, "materials", "list", "--output", "json")
	require.NoError(t, err)

	var listings []struct {
		ID     string `json:"id"`
		Source string `json:"source"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &listings))

	sources := make(map[string]string, len(listings))
	for _, listing := range listings {
		sources[listing.ID] = listing.Source
	}
	assert.Equal(t, "project", sources["hempcrete-block"])
	assert.Equal(t, "catalog", sources["concrete-c30"])
}

func TestMaterialsListReadsCatalogReleases(t *testing.T) {
	home := setupCLIHome(t)

	release := `materials:
  - id: strawbale
    name: Straw bale
    category: timber
    density: 110
    declared_unit: 1 m³
    gwp_a1_a3: -120
`
	catalogDir := filepath.Join(home, "catalog")
	require.NoError(t, os.MkdirAll(catalogDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(catalogDir, "nmd-1.0.0.yaml"), []byte(release), 0o600))

	out, _, err := executeCommand(t, "materials", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "strawbale")
	assert.Contains(t, out, "Straw bale")
}

func TestMaterialsShowTable(t *testing.T) {
	setupCLIHome(t)

	out, _, err := executeCommand(t, "materials", "show", "clt-panel")
	require.NoError(t, err)

	assert.Contains(t, out, "Cross-laminated timber panel")
	assert.Contains(t, out, "A1-A3")
	assert.Contains(t, out, "-580")
	assert.Contains(t, out, "Density:")
}

func TestMaterialsShowJSON(t *testing.T) {
	setupCLIHome(t)

	out, _, err := executeCommand(t, "materials", "show", "steel-profile", "--output", "json")
	require.NoError(t, err)

	var material struct {
		ID      string  `json:"id"`
		GWPA1A3 float64 `json:"gwp_a1_a3"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &material))
	assert.Equal(t, "steel-profile", material.ID)
	assert.InDelta(t, 1.85, material.GWPA1A3, 1e-9)
}

func TestMaterialsShowUnknownID(t *testing.T) {
	setupCLIHome(t)

	_, _, err := executeCommand(t, "materials", "show", "unobtainium")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `material "unobtainium" not found`)
}
