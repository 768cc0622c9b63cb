package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvandervelde/bouwlca/internal/engine"
	"github.com/mvandervelde/bouwlca/internal/ingest"
	"github.com/mvandervelde/bouwlca/internal/lca"
)

// projectImportParams holds the parameters for the import command.
type projectImportParams struct {
	demo bool
}

// NewProjectImportCmd creates the "import" subcommand for loading project
// documents into the store.
func NewProjectImportCmd() *cobra.Command {
	var params projectImportParams

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import a project description into the store",
		Long: `Imports a YAML project description. Project-specific materials in the
document are stored alongside the project and shadow catalog entries with
the same id during calculation.`,
		Example: `  # Import a project document
  bouwlca project import woning.yaml

  # Seed the built-in demo dwelling
  bouwlca project import --demo`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeProjectImport(cmd, args, params)
		},
	}

	cmd.Flags().BoolVar(&params.demo, "demo", false, "import the built-in demo project instead of a file")

	return cmd
}

func executeProjectImport(cmd *cobra.Command, args []string, params projectImportParams) error {
	ctx := cmd.Context()

	if !params.demo && len(args) == 0 {
		return errors.New("a project file is required unless --demo is set")
	}
	if params.demo && len(args) > 0 {
		return errors.New("--demo cannot be combined with a project file")
	}

	rt, cleanup, err := openRuntime(cmd, false)
	if err != nil {
		return err
	}
	defer cleanup()

	var (
		project   lca.Project
		materials []lca.Material
	)
	if params.demo {
		project = ingest.DemoProject()
	} else {
		project, materials, err = ingest.LoadProjectFile(ctx, args[0])
		if err != nil {
			return err
		}
	}

	for _, m := range materials {
		if err := rt.store.PutMaterial(ctx, m); err != nil {
			return fmt.Errorf("storing project material %q: %w", m.ID, err)
		}
	}
	if err := rt.store.PutProject(ctx, project); err != nil {
		return fmt.Errorf("storing project: %w", err)
	}

	unresolved := unresolvedMaterials(project, rt.resolver)

	cmd.Printf("Imported project %q (%s)\n", project.Name, project.ID)
	if len(materials) > 0 {
		cmd.Printf("Stored %d project material(s)\n", len(materials))
	}
	for _, id := range unresolved {
		cmd.PrintErrf("Warning: material %q is not in the catalog or store; its layers will contribute zero\n", id)
	}

	return nil
}

// unresolvedMaterials returns the distinct material ids referenced by the
// project that the resolver cannot answer, in first-use order.
func unresolvedMaterials(project lca.Project, resolver engine.MaterialResolver) []string {
	seen := make(map[string]bool)
	var missing []string
	for _, element := range project.Elements {
		for _, layer := range element.Layers {
			if layer.MaterialID == "" || seen[layer.MaterialID] {
				continue
			}
			seen[layer.MaterialID] = true
			if _, ok := resolver.Material(layer.MaterialID); !ok {
				missing = append(missing, layer.MaterialID)
			}
		}
	}
	return missing
}
