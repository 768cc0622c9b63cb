// Package logging provides zerolog-based structured logging for bouwlca.
//
// Loggers are carried on the context so that library code (engine, store,
// catalog) can log without holding a logger field. Use NewLoggerWithPath at
// process startup, attach the logger with WithContext, and retrieve it in
// lower layers with FromContext.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Output destinations for log events.
const (
	OutputStderr = "stderr"
	OutputStdout = "stdout"
	OutputFile   = "file"
)

// Formats for log events.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// logFilePerm is the permission mode for created log files.
const logFilePerm = 0o600

// Config controls logger construction.
type Config struct {
	// Level is the minimum level to emit: trace, debug, info, warn, error.
	// Unparseable values fall back to info.
	Level string
	// Format is "json" (default) or "console" for human-readable output.
	Format string
	// Output selects the destination: "stderr" (default), "stdout" or "file".
	Output string
	// File is the log file path, used when Output is "file".
	File string
	// Caller adds the calling file:line to each event.
	Caller bool
}

// LogPathResult reports where NewLoggerWithPath ended up writing logs.
// When file output was requested but unavailable, the logger falls back to
// stderr and FallbackUsed/FallbackReason describe why.
type LogPathResult struct {
	Logger         zerolog.Logger
	UsingFile      bool
	FilePath       string
	FallbackUsed   bool
	FallbackReason string

	file *os.File
}

// Close releases the log file handle, if any.
func (r *LogPathResult) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// NewLogger builds a zerolog.Logger from cfg, writing to stderr or stdout.
// File output is ignored here; use NewLoggerWithPath when file logging and
// fallback reporting are needed.
func NewLogger(cfg Config) zerolog.Logger {
	var out io.Writer = os.Stderr
	if cfg.Output == OutputStdout {
		out = os.Stdout
	}
	return build(cfg, out)
}

// NewLoggerWithPath builds a logger honoring file output. When the configured
// file cannot be opened the logger falls back to stderr and the result
// records the fallback reason instead of failing the command.
func NewLoggerWithPath(cfg Config) LogPathResult {
	if cfg.Output != OutputFile || cfg.File == "" {
		return LogPathResult{Logger: NewLogger(cfg)}
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o700); err != nil {
		return LogPathResult{
			Logger:         NewLogger(Config{Level: cfg.Level, Format: cfg.Format, Caller: cfg.Caller}),
			FallbackUsed:   true,
			FallbackReason: fmt.Sprintf("creating log directory: %v", err),
		}
	}

	f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFilePerm)
	if err != nil {
		return LogPathResult{
			Logger:         NewLogger(Config{Level: cfg.Level, Format: cfg.Format, Caller: cfg.Caller}),
			FallbackUsed:   true,
			FallbackReason: fmt.Sprintf("opening log file: %v", err),
		}
	}

	return LogPathResult{
		Logger:    build(cfg, f),
		UsingFile: true,
		FilePath:  cfg.File,
		file:      f,
	}
}

// build assembles the logger with level, format and caller settings applied.
func build(cfg Config, out io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	if cfg.Format == FormatConsole {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	logCtx := zerolog.New(out).Level(lvl).With().Timestamp()
	if cfg.Caller {
		logCtx = logCtx.Caller()
	}
	return logCtx.Logger()
}

// ComponentLogger returns a child logger tagged with a component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// WithContext attaches logger to ctx for retrieval via FromContext.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// FromContext returns the logger attached to ctx, or a disabled logger when
// none was attached. Library code can therefore log unconditionally.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// PrintLogPathMessage tells the user where log output is going.
func PrintLogPathMessage(w io.Writer, path string) {
	fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning tells the user why file logging was not possible.
func PrintFallbackWarning(w io.Writer, reason string) {
	fmt.Fprintf(w, "Warning: file logging unavailable (%s), logging to stderr\n", reason)
}
