package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mvandervelde/bouwlca/internal/engine"
	"github.com/mvandervelde/bouwlca/internal/lca"
)

// NewProjectShowCmd creates the "show" subcommand for inspecting a stored
// project and its cached totals.
func NewProjectShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show a stored project and its cached totals",
		Example: `  # Show a project
  bouwlca project show 01J9W3KQ4R8Z5X2C6V7B8N9M0A

  # Show as JSON
  bouwlca project show demo-rijtjeswoning --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeProjectShow(cmd, args[0], output)
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "Output format: table or json")

	return cmd
}

func executeProjectShow(cmd *cobra.Command, projectID, output string) error {
	rt, cleanup, err := openRuntime(cmd, false)
	if err != nil {
		return err
	}
	defer cleanup()

	format, err := resolveOutputFormat(output, rt.cfg)
	if err != nil {
		return err
	}

	project, err := rt.store.GetProject(cmd.Context(), projectID)
	if err != nil {
		return fmt.Errorf("loading project: %w", err)
	}

	if format == outputJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(project)
	}

	return renderProjectDetails(cmd, project)
}

func renderProjectDetails(cmd *cobra.Command, project lca.Project) error {
	cmd.Printf("Project: %s (%s)\n", project.Name, project.ID)
	cmd.Printf("Building type: %s\n", orDash(project.BuildingType))
	cmd.Printf("Gross floor area: %.1f m2\n", project.GrossFloorArea)
	cmd.Printf("Study period: %.0f years\n", project.StudyPeriod)
	cmd.Printf("Energy label: %s\n", orDash(project.EnergyLabel))
	cmd.Println()

	if len(project.Elements) == 0 {
		cmd.Println("No elements.")
	} else {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
		fmt.Fprintln(w, "Element\tCategory\tQuantity\tLayers")
		fmt.Fprintln(w, "-------\t--------\t--------\t------")
		for _, element := range project.Elements {
			fmt.Fprintf(w, "%s\t%s\t%.1f %s\t%d\n",
				element.Name, element.Category, element.Quantity, element.QuantityUnit, len(element.Layers))
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	cmd.Println()
	if project.Cached == nil {
		cmd.Println("No cached totals. Run 'bouwlca project calculate' first.")
		return nil
	}

	totals := project.Cached
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
	fmt.Fprintf(w, "Total A-C:\t%s kg CO2e\n", engine.FormatImpact(totals.TotalGWPSum))
	fmt.Fprintf(w, "Embodied per year:\t%s kg CO2e/m2/yr\n", engine.FormatIntensity(totals.TotalGWPPerM2Year))
	fmt.Fprintf(w, "Operational (B6):\t%s kg CO2e/m2/yr\n", engine.FormatIntensity(totals.OperationalCarbon))
	fmt.Fprintf(w, "Combined total:\t%s kg CO2e/m2/yr\n", engine.FormatIntensity(totals.TotalCarbon))
	if totals.MPGReferenceValue > 0 {
		verdict := "pass"
		if !totals.IsCompliant {
			verdict = "fail"
		}
		fmt.Fprintf(w, "MPG check:\t%s (limit %s)\n", verdict, engine.FormatIntensity(totals.MPGReferenceValue))
	}
	fmt.Fprintf(w, "Calculated at:\t%s\n", totals.CalculatedAt.Format("2006-01-02 15:04:05 MST"))
	return w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
