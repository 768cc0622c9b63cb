package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	goruntime "runtime"

	"github.com/spf13/cobra"

	"github.com/mvandervelde/bouwlca/internal/config"
	"github.com/mvandervelde/bouwlca/internal/ingest"
	"github.com/mvandervelde/bouwlca/internal/logging"
	"github.com/mvandervelde/bouwlca/internal/store"
	"github.com/mvandervelde/bouwlca/pkg/version"
)

// StepStatus represents the outcome of a single setup step.
type StepStatus int

const (
	// StepSuccess indicates the step completed successfully.
	StepSuccess StepStatus = iota
	// StepWarning indicates the step completed with a non-fatal issue.
	StepWarning
	// StepSkipped indicates the step was intentionally skipped via flag.
	StepSkipped
	// StepError indicates the step failed.
	StepError
)

// StepResult describes the outcome of executing a single setup step.
type StepResult struct {
	Name     string
	Status   StepStatus
	Message  string
	Critical bool
	Err      error
}

// SetupOptions holds the configuration for the setup command, derived from CLI flags.
type SetupOptions struct {
	SkipDemo       bool
	NonInteractive bool
}

// SetupResult is the aggregate outcome of all setup steps.
type SetupResult struct {
	Steps       []StepResult
	HasErrors   bool
	HasWarnings bool
}

// formatStatus returns a status marker appropriate for the output mode.
func formatStatus(status StepStatus, nonInteractive bool) string {
	if nonInteractive {
		switch status {
		case StepSuccess:
			return "[OK]"
		case StepWarning:
			return "[WARN]"
		case StepSkipped:
			return "[SKIP]"
		case StepError:
			return "[ERR]"
		default:
			return "[??]"
		}
	}

	switch status {
	case StepSuccess:
		return "✓" // ✓
	case StepWarning:
		return "!"
	case StepSkipped:
		return "-"
	case StepError:
		return "✗" // ✗
	default:
		return "?"
	}
}

// NewSetupCmd creates the top-level setup command that bootstraps the bouwlca environment.
func NewSetupCmd() *cobra.Command {
	var opts SetupOptions

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Bootstrap the bouwlca environment",
		Long: `Sets up the bouwlca environment by creating the home and catalog
directories, initializing configuration, and seeding a demo project.

This command is idempotent. It is safe to run multiple times: existing
configuration files are preserved and an already-seeded demo project is
detected without modification.`,
		Example: `  # Full setup
  bouwlca setup

  # CI/CD setup (no TTY-dependent output)
  bouwlca setup --non-interactive

  # Setup directories and config only
  bouwlca setup --skip-demo`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSetup(cmd, &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.NonInteractive, "non-interactive", false,
		"Disable TTY-dependent output (status symbols)")
	cmd.Flags().BoolVar(&opts.SkipDemo, "skip-demo", false,
		"Skip seeding the demo project")

	return cmd
}

// runSetup orchestrates all setup steps using a collect-and-continue pattern.
// Each step is executed sequentially. Failures in one step do not prevent
// subsequent steps from running. The function returns an error only if a
// critical step fails.
func runSetup(cmd *cobra.Command, opts *SetupOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	log := logging.FromContext(ctx)

	// Auto-detect non-interactive mode when stdin is not a TTY
	if !opts.NonInteractive && !isTerminal(os.Stdin) {
		opts.NonInteractive = true
	}

	result := &SetupResult{}

	// Step 1: Display version
	step := stepDisplayVersion()
	printStep(cmd, step, opts.NonInteractive)
	result.Steps = append(result.Steps, step)

	// Step 2: Create directories
	dirSteps := stepCreateDirectories()
	for _, s := range dirSteps {
		printStep(cmd, s, opts.NonInteractive)
		result.Steps = append(result.Steps, s)
	}

	// Step 3: Initialize config
	step = stepInitConfig()
	printStep(cmd, step, opts.NonInteractive)
	result.Steps = append(result.Steps, step)

	// Step 4: Seed demo project
	if opts.SkipDemo {
		step = StepResult{
			Name:    "Demo project",
			Status:  StepSkipped,
			Message: "Skipped demo project seeding",
		}
	} else {
		step = stepSeedDemo(cmd)
	}
	printStep(cmd, step, opts.NonInteractive)
	result.Steps = append(result.Steps, step)

	// Compute aggregate status
	for _, s := range result.Steps {
		if s.Status == StepError && s.Critical {
			result.HasErrors = true
		}
		if s.Status == StepWarning {
			result.HasWarnings = true
		}
	}

	printSummary(cmd, result)

	if result.HasErrors {
		log.Error().
			Ctx(ctx).
			Str("component", "setup").
			Msg("setup completed with critical errors")
		return errors.New("setup failed: one or more critical steps failed")
	}

	return nil
}

// printStep outputs a single step's status line.
func printStep(cmd *cobra.Command, step StepResult, nonInteractive bool) {
	marker := formatStatus(step.Status, nonInteractive)
	cmd.Printf("%s %s\n", marker, step.Message)
}

// printSummary outputs the final completion message.
func printSummary(cmd *cobra.Command, result *SetupResult) {
	cmd.Println()
	if result.HasErrors {
		cmd.Println("Setup completed with errors. Review the messages above for remediation steps.")
	} else {
		cmd.Println("Setup complete! Run 'bouwlca project calculate demo-rijtjeswoning' to get started.")
	}
}

// stepDisplayVersion prints the bouwlca version and Go runtime info.
func stepDisplayVersion() StepResult {
	msg := fmt.Sprintf("bouwlca v%s (%s)", version.GetVersion(), goruntime.Version())
	return StepResult{
		Name:    "Version display",
		Status:  StepSuccess,
		Message: msg,
	}
}

// stepCreateDirectories creates the bouwlca home and catalog directories.
// Returns one StepResult per directory.
func stepCreateDirectories() []StepResult {
	baseDir, err := config.GetConfigDir()
	if err != nil {
		return []StepResult{{
			Name:   "Directory creation",
			Status: StepError,
			Message: fmt.Sprintf(
				"Could not resolve home directory: %v\n  Try: export BOUWLCA_HOME=/path/to/writable/directory",
				err,
			),
			Critical: true,
			Err:      err,
		}}
	}

	dirs := []string{
		baseDir,
		filepath.Join(baseDir, "catalog"),
	}

	var results []StepResult
	for _, dir := range dirs {
		info, statErr := os.Stat(dir)
		if statErr == nil && info.IsDir() {
			results = append(results, StepResult{
				Name:     "Directory creation",
				Status:   StepSuccess,
				Message:  fmt.Sprintf("Directory exists: %s", dir),
				Critical: true,
			})
			continue
		}

		if mkErr := os.MkdirAll(dir, 0o700); mkErr != nil {
			results = append(results, StepResult{
				Name:   "Directory creation",
				Status: StepError,
				Message: fmt.Sprintf(
					"Failed to create %s: %v\n  Try: export BOUWLCA_HOME=/path/to/writable/directory",
					dir,
					mkErr,
				),
				Critical: true,
				Err:      mkErr,
			})
			continue
		}

		results = append(results, StepResult{
			Name:     "Directory creation",
			Status:   StepSuccess,
			Message:  fmt.Sprintf("Created %s", dir),
			Critical: true,
		})
	}

	return results
}

// stepInitConfig initializes the default config file if one does not exist.
func stepInitConfig() StepResult {
	configPath, err := config.ConfigFilePath()
	if err != nil {
		return StepResult{
			Name:     "Config initialization",
			Status:   StepError,
			Message:  fmt.Sprintf("Could not resolve config path: %v", err),
			Critical: true,
			Err:      err,
		}
	}

	if _, statErr := os.Stat(configPath); statErr == nil {
		return StepResult{
			Name:     "Config initialization",
			Status:   StepSuccess,
			Message:  fmt.Sprintf("Config already exists (%s)", configPath),
			Critical: true,
		}
	}

	if err := config.Default().Save(configPath); err != nil {
		return StepResult{
			Name:     "Config initialization",
			Status:   StepError,
			Message:  fmt.Sprintf("Failed to initialize config: %v", err),
			Critical: true,
			Err:      err,
		}
	}

	return StepResult{
		Name:     "Config initialization",
		Status:   StepSuccess,
		Message:  fmt.Sprintf("Initialized config (%s)", configPath),
		Critical: true,
	}
}

// stepSeedDemo stores the demo project and calculates its totals so list
// views have something to show right away.
func stepSeedDemo(cmd *cobra.Command) StepResult {
	rt, cleanup, err := openRuntime(cmd, false)
	if err != nil {
		return StepResult{
			Name:    "Demo project",
			Status:  StepWarning,
			Message: fmt.Sprintf("Could not open project store: %v\n  Try: bouwlca project import --demo", err),
			Err:     err,
		}
	}
	defer cleanup()

	ctx := cmd.Context()

	_, err = rt.store.GetProject(ctx, ingest.DemoProjectID)
	if err == nil {
		return StepResult{
			Name:    "Demo project",
			Status:  StepSuccess,
			Message: fmt.Sprintf("Demo project already present (%s)", ingest.DemoProjectID),
		}
	}
	if !errors.Is(err, store.ErrNotFound) {
		return StepResult{
			Name:    "Demo project",
			Status:  StepWarning,
			Message: fmt.Sprintf("Could not check for demo project: %v", err),
			Err:     err,
		}
	}

	if err := rt.store.PutProject(ctx, ingest.DemoProject()); err != nil {
		return StepResult{
			Name:    "Demo project",
			Status:  StepWarning,
			Message: fmt.Sprintf("Failed to store demo project: %v", err),
			Err:     err,
		}
	}

	if _, err := rt.engine.CalculateProject(ctx, ingest.DemoProjectID); err != nil {
		return StepResult{
			Name:    "Demo project",
			Status:  StepWarning,
			Message: fmt.Sprintf("Seeded demo project but calculation failed: %v", err),
			Err:     err,
		}
	}

	return StepResult{
		Name:    "Demo project",
		Status:  StepSuccess,
		Message: fmt.Sprintf("Seeded demo project %s with cached totals", ingest.DemoProjectID),
	}
}
