package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mvandervelde/bouwlca/internal/engine"
	"github.com/mvandervelde/bouwlca/internal/lca"
)

const tabPadding = 2

// NewProjectListCmd creates the "list" subcommand for showing stored
// projects with their cached results.
func NewProjectListCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored projects",
		Example: `  # List all projects
  bouwlca project list

  # List as JSON
  bouwlca project list --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeProjectList(cmd, output)
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "Output format: table or json")

	return cmd
}

func executeProjectList(cmd *cobra.Command, output string) error {
	rt, cleanup, err := openRuntime(cmd, false)
	if err != nil {
		return err
	}
	defer cleanup()

	format, err := resolveOutputFormat(output, rt.cfg)
	if err != nil {
		return err
	}

	projects, err := rt.store.ListProjects(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing projects: %w", err)
	}

	if format == outputJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if projects == nil {
			projects = []lca.Project{}
		}
		return encoder.Encode(projects)
	}

	if len(projects) == 0 {
		cmd.Println("No projects stored. Import one with 'bouwlca project import'.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tType\tGFA (m2)\tElements\tEmbodied (kg CO2e/m2/yr)\tMPG")
	fmt.Fprintln(w, "--\t----\t----\t--------\t--------\t------------------------\t---")
	for _, p := range projects {
		embodied := "-"
		mpg := "-"
		if p.Cached != nil {
			embodied = engine.FormatIntensity(p.Cached.TotalGWPPerM2Year)
			if p.Cached.MPGReferenceValue > 0 {
				mpg = "pass"
				if !p.Cached.IsCompliant {
					mpg = "fail"
				}
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.0f\t%d\t%s\t%s\n",
			p.ID, p.Name, p.BuildingType, p.GrossFloorArea, len(p.Elements), embodied, mpg)
	}
	return w.Flush()
}
