package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewProjectDeleteCmd creates the "delete" subcommand for removing a stored
// project.
func NewProjectDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <project-id>",
		Short: "Delete a stored project",
		Example: `  # Delete a project
  bouwlca project delete demo-rijtjeswoning`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeProjectDelete(cmd, args[0])
		},
	}

	return cmd
}

func executeProjectDelete(cmd *cobra.Command, projectID string) error {
	rt, cleanup, err := openRuntime(cmd, false)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := rt.store.DeleteProject(cmd.Context(), projectID); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}

	cmd.Printf("Deleted project %q\n", projectID)
	return nil
}
