package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvandervelde/bouwlca/internal/config"
)

// NewConfigInitCmd creates the config init command that writes the default
// configuration file to the bouwlca home directory.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates ~/.bouwlca/config.yaml with default values: SQLite storage under
the bouwlca home directory, console logging at info level, and table output.
Set BOUWLCA_HOME to relocate the directory.`,
		Example: `  # Create the configuration file
  bouwlca config init

  # Create configuration, overwriting existing
  bouwlca config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeConfigInit(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

func executeConfigInit(cmd *cobra.Command, force bool) error {
	configPath, err := config.ConfigFilePath()
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	if !force {
		if _, statErr := os.Stat(configPath); statErr == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		} else if !os.IsNotExist(statErr) {
			return fmt.Errorf("cannot access config path %s: %w", configPath, statErr)
		}
	}

	if err := config.EnsureConfigDir(); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := config.Default().Save(configPath); err != nil {
		return fmt.Errorf("saving configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", configPath)

	return nil
}
