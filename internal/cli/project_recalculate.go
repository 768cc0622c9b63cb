package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvandervelde/bouwlca/internal/engine"
)

type projectRecalculateParams struct {
	all     bool
	output  string
	verbose bool
}

// NewProjectRecalculateCmd creates the "recalculate" subcommand that reruns
// the calculation for every stored project.
func NewProjectRecalculateCmd() *cobra.Command {
	params := &projectRecalculateParams{}

	cmd := &cobra.Command{
		Use:   "recalculate --all",
		Short: "Recalculate cached totals for all stored projects",
		Long: `Recalculate reruns the embodied carbon calculation for every stored
project and refreshes the cached totals. Projects are processed concurrently;
a failure in one project does not stop the others.`,
		Example: `  # Refresh all cached totals
  bouwlca project recalculate --all

  # Same, with a JSON report
  bouwlca project recalculate --all --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeProjectRecalculate(cmd, params)
		},
	}

	cmd.Flags().BoolVar(&params.all, "all", false, "Recalculate every stored project")
	cmd.Flags().StringVar(&params.output, "output", "", "Output format: table or json")
	cmd.Flags().BoolVar(&params.verbose, "verbose", false, "Log per-layer module contributions")

	return cmd
}

func executeProjectRecalculate(cmd *cobra.Command, params *projectRecalculateParams) error {
	if !params.all {
		return fmt.Errorf("recalculate requires --all; single projects use 'bouwlca project calculate <project-id>'")
	}

	rt, cleanup, err := openRuntime(cmd, params.verbose)
	if err != nil {
		return err
	}
	defer cleanup()

	format, err := resolveOutputFormat(params.output, rt.cfg)
	if err != nil {
		return err
	}

	outcomes, err := rt.engine.RecalculateAll(cmd.Context())
	if err != nil {
		return fmt.Errorf("recalculating projects: %w", err)
	}

	if format == outputJSON {
		if err := engine.RenderBatchJSON(cmd.OutOrStdout(), outcomes); err != nil {
			return err
		}
	} else {
		if len(outcomes) == 0 {
			cmd.Println("No projects stored.")
			return nil
		}
		if err := engine.RenderBatchTable(cmd.OutOrStdout(), outcomes); err != nil {
			return err
		}
	}

	failed := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d projects failed", failed, len(outcomes))
	}
	return nil
}
