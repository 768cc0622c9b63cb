package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mvandervelde/bouwlca/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating
// the configuration file.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file at ~/.bouwlca/config.yaml for syntax and
semantic correctness: logging level and format, storage driver settings,
MPG reference values and output format.`,
		Example: `  # Validate current configuration
  bouwlca config validate

  # Validate and show detailed information
  bouwlca config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

func executeConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	problems := cfg.Validate()
	if len(problems) > 0 {
		cmd.PrintErrln("Configuration problems:")
		for _, p := range problems {
			cmd.PrintErrf("  - %s\n", p)
		}
		return fmt.Errorf("configuration has %d problem(s)", len(problems))
	}

	cmd.Printf("✅ Configuration is valid\n")

	if verbose {
		printConfigDetails(cmd, cfg)
	}

	return nil
}

// printConfigDetails prints the effective configuration values.
func printConfigDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Logging format: %s\n", cfg.Logging.Format)
	if cfg.Logging.File != "" {
		cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	}
	cmd.Printf("  Storage driver: %s\n", cfg.Storage.Driver)
	if cfg.Storage.Path != "" {
		cmd.Printf("  Storage path: %s\n", cfg.Storage.Path)
	}
	if cfg.Catalog.Dir != "" {
		cmd.Printf("  Catalog directory: %s\n", cfg.Catalog.Dir)
	}

	if len(cfg.Reference) == 0 {
		cmd.Println("  No MPG reference overrides (builtin limits)")
		return
	}

	types := make([]string, 0, len(cfg.Reference))
	for buildingType := range cfg.Reference {
		types = append(types, buildingType)
	}
	sort.Strings(types)
	cmd.Printf("  MPG reference overrides: %d\n", len(types))
	for _, buildingType := range types {
		cmd.Printf("    - %s: %g\n", buildingType, cfg.Reference[buildingType])
	}
}
