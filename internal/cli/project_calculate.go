package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvandervelde/bouwlca/internal/engine"
)

type projectCalculateParams struct {
	output  string
	verbose bool
}

// NewProjectCalculateCmd creates the "calculate" subcommand that computes a
// project's embodied carbon and persists the totals.
func NewProjectCalculateCmd() *cobra.Command {
	params := &projectCalculateParams{}

	cmd := &cobra.Command{
		Use:   "calculate <project-id>",
		Short: "Calculate embodied carbon for a project and cache the totals",
		Long: `Calculate runs the full EN 15804 module breakdown for a stored project:
production (A1-A3), transport (A4), construction (A5), replacement (B4) and
end of life (C1-C4), plus module D benefits reported outside the totals.

The resulting totals are cached on the project so list views can show them
without recomputing.`,
		Example: `  # Calculate and print a table
  bouwlca project calculate demo-rijtjeswoning

  # Calculate with per-layer logging and JSON output
  bouwlca project calculate demo-rijtjeswoning --verbose --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeProjectCalculate(cmd, args[0], params)
		},
	}

	cmd.Flags().StringVar(&params.output, "output", "", "Output format: table or json")
	cmd.Flags().BoolVar(&params.verbose, "verbose", false, "Log per-layer module contributions")

	return cmd
}

func executeProjectCalculate(cmd *cobra.Command, projectID string, params *projectCalculateParams) error {
	rt, cleanup, err := openRuntime(cmd, params.verbose)
	if err != nil {
		return err
	}
	defer cleanup()

	format, err := resolveOutputFormat(params.output, rt.cfg)
	if err != nil {
		return err
	}

	result, err := rt.engine.CalculateProject(cmd.Context(), projectID)
	if err != nil && !errors.Is(err, engine.ErrPersistFailed) {
		return fmt.Errorf("calculating project: %w", err)
	}

	// A persist failure still produced a valid result: show it, then report
	// the error so the exit code reflects the failed save.
	if renderErr := renderResult(cmd, result, format); renderErr != nil {
		return renderErr
	}
	return err
}

func renderResult(cmd *cobra.Command, result engine.Result, format string) error {
	if format == outputJSON {
		return engine.RenderResultJSON(cmd.OutOrStdout(), result)
	}
	return engine.RenderResultTable(cmd.OutOrStdout(), result)
}
