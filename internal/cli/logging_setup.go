package cli

import (
	"github.com/spf13/cobra"

	"github.com/mvandervelde/bouwlca/internal/config"
	"github.com/mvandervelde/bouwlca/internal/logging"
)

// setupLogging configures logging based on the config file and CLI flags,
// installs the logger and a trace id on the command context, and returns
// the file handle holder for cleanup.
func setupLogging(cmd *cobra.Command) logging.LogPathResult {
	loggingCfg := config.LoggingConfig{Level: "info", Format: logging.FormatConsole}
	if cfg, err := config.New(); err == nil {
		loggingCfg = cfg.Logging
	}

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
		loggingCfg.File = ""
	}

	result := logging.NewLoggerWithPath(loggingCfg.ToLoggingConfig())
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Debug().Str("command", cmd.Name()).Str("trace_id", traceID).Msg("command started")

	return result
}

// cleanupLogging closes the log file handle, if any.
func cleanupLogging(logResult *logging.LogPathResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
