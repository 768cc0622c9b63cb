package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mvandervelde/bouwlca/internal/lca"
)

// materialListing is one row in the materials list: a catalog or
// project-scoped record plus where it came from.
type materialListing struct {
	lca.Material
	Source string `json:"source"`
}

// NewMaterialsListCmd creates the "list" subcommand for browsing the
// resolvable materials: catalog records plus project-scoped ones.
func NewMaterialsListCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List resolvable materials",
		Long: `List shows every material a layer can reference: the builtin catalog,
any catalog releases on disk, and materials imported alongside projects.
Project-scoped materials shadow catalog records with the same id.`,
		Example: `  # List all materials
  bouwlca materials list

  # List as JSON
  bouwlca materials list --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeMaterialsList(cmd, output)
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "Output format: table or json")

	return cmd
}

func executeMaterialsList(cmd *cobra.Command, output string) error {
	rt, cleanup, err := openRuntime(cmd, false)
	if err != nil {
		return err
	}
	defer cleanup()

	format, err := resolveOutputFormat(output, rt.cfg)
	if err != nil {
		return err
	}

	listings := make(map[string]materialListing)
	for _, m := range rt.catalog.Materials() {
		listings[m.ID] = materialListing{Material: m, Source: "catalog"}
	}

	stored, err := rt.store.ListMaterials(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing project materials: %w", err)
	}
	for _, m := range stored {
		listings[m.ID] = materialListing{Material: m, Source: "project"}
	}

	rows := make([]materialListing, 0, len(listings))
	for _, listing := range listings {
		rows = append(rows, listing)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })

	if format == outputJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(rows)
	}

	if len(rows) == 0 {
		cmd.Println("No materials available.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tCategory\tUnit\tGWP A1-A3\tSource")
	fmt.Fprintln(w, "--\t----\t--------\t----\t---------\t------")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%g\t%s\n",
			row.ID, row.Name, orDash(string(row.Category)), orDash(row.DeclaredUnit), row.GWPA1A3, row.Source)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for _, warning := range rt.catalog.Warnings() {
		cmd.PrintErrf("Warning: %s\n", warning)
	}
	return nil
}
