// Package cli wires the bouwlca command tree. Commands assemble their
// runtime (config, store, catalog, engine) per invocation and log through
// the context logger installed by the root command.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mvandervelde/bouwlca/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the bouwlca CLI.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "bouwlca",
		Short:   "Building LCA and MPG calculations",
		Long:    "bouwlca: Calculate embodied and operational carbon for building projects against the Dutch MPG limits",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(newProjectCmd(), newMaterialsCmd(), newConfigCmd(), NewSetupCmd())

	return cmd
}

const rootCmdExample = `  # Bootstrap directories, config and the demo project
  bouwlca setup

  # Import a project description
  bouwlca project import woning.yaml

  # Calculate a project and check it against the MPG limit
  bouwlca project calculate <project-id>

  # Recalculate every stored project after a catalog update
  bouwlca project recalculate --all

  # List catalog materials
  bouwlca materials list

  # Initialize configuration
  bouwlca config init`

// newProjectCmd creates the project command group.
func newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "project", Short: "Project management and calculation commands"}
	cmd.AddCommand(
		NewProjectImportCmd(), NewProjectListCmd(), NewProjectShowCmd(),
		NewProjectCalculateCmd(), NewProjectRecalculateCmd(), NewProjectDeleteCmd(),
	)
	return cmd
}

// newMaterialsCmd creates the materials command group.
func newMaterialsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "materials", Short: "Material catalog commands"}
	cmd.AddCommand(NewMaterialsListCmd(), NewMaterialsShowCmd())
	return cmd
}

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd())
	return cmd
}
