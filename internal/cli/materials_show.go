package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mvandervelde/bouwlca/internal/lca"
)

// NewMaterialsShowCmd creates the "show" subcommand for inspecting one
// material record in full.
func NewMaterialsShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show <material-id>",
		Short: "Show a material record with all module factors",
		Example: `  # Show a builtin material
  bouwlca materials show concrete-c30

  # Show as JSON
  bouwlca materials show clt-panel --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeMaterialsShow(cmd, args[0], output)
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "Output format: table or json")

	return cmd
}

func executeMaterialsShow(cmd *cobra.Command, materialID, output string) error {
	rt, cleanup, err := openRuntime(cmd, false)
	if err != nil {
		return err
	}
	defer cleanup()

	format, err := resolveOutputFormat(output, rt.cfg)
	if err != nil {
		return err
	}

	material, ok := rt.resolver.Material(materialID)
	if !ok {
		return fmt.Errorf("material %q not found", materialID)
	}

	if format == outputJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(material)
	}

	return renderMaterialDetails(cmd, material)
}

func renderMaterialDetails(cmd *cobra.Command, m lca.Material) error {
	cmd.Printf("Material: %s (%s)\n\n", m.Name, m.ID)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
	fmt.Fprintf(w, "Category:\t%s\n", orDash(string(m.Category)))
	fmt.Fprintf(w, "Declared unit:\t%s\n", orDash(m.DeclaredUnit))
	if m.ConversionToKg != 0 {
		fmt.Fprintf(w, "Conversion to kg:\t%g\n", m.ConversionToKg)
	}
	if m.Density != 0 {
		fmt.Fprintf(w, "Density:\t%g kg/m3\n", m.Density)
	}
	if m.BulkDensity != 0 {
		fmt.Fprintf(w, "Bulk density:\t%g kg/m3\n", m.BulkDensity)
	}
	if m.ReferenceServiceLife != nil {
		fmt.Fprintf(w, "Service life:\t%g years\n", *m.ReferenceServiceLife)
	}
	if m.TransportDistanceKm != nil {
		fmt.Fprintf(w, "Transport distance:\t%g km\n", *m.TransportDistanceKm)
	}
	if m.TransportMode != "" {
		fmt.Fprintf(w, "Transport mode:\t%s\n", m.TransportMode)
	}
	if m.Version != "" {
		fmt.Fprintf(w, "Version:\t%s\n", m.Version)
	}
	if m.SourceUUID != "" {
		fmt.Fprintf(w, "Source UUID:\t%s\n", m.SourceUUID)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	cmd.Println()
	w = tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(w, "Module\tkg CO2e per declared unit")
	fmt.Fprintln(w, "------\t-------------------------")
	fmt.Fprintf(w, "A1-A3\t%g\n", m.GWPA1A3)
	fmt.Fprintf(w, "A4\t%g\n", m.GWPA4)
	fmt.Fprintf(w, "A5\t%g\n", m.GWPA5)
	fmt.Fprintf(w, "C1\t%g\n", m.GWPC1)
	fmt.Fprintf(w, "C2\t%g\n", m.GWPC2)
	fmt.Fprintf(w, "C3\t%g\n", m.GWPC3)
	fmt.Fprintf(w, "C4\t%g\n", m.GWPC4)
	fmt.Fprintf(w, "D\t%g\n", m.GWPD)
	return w.Flush()
}
