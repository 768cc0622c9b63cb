// Package config loads and persists the tool configuration. A global
// config.yaml lives under the user's bouwlca directory; sections from it
// shallow-merge over built-in defaults.
package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/mvandervelde/bouwlca/internal/logging"
	"github.com/mvandervelde/bouwlca/internal/store"
)

const (
	configFileName = "config.yaml"
	configFilePerm = 0o600
	configDirPerm  = 0o700

	defaultDatabaseFile = "bouwlca.db"
	catalogSubdir       = "catalog"
)

// Config is the full tool configuration.
type Config struct {
	Logging     LoggingConfig      `yaml:"logging,omitempty" json:"logging,omitempty"`
	Storage     StorageConfig      `yaml:"storage,omitempty" json:"storage,omitempty"`
	Catalog     CatalogConfig      `yaml:"catalog,omitempty" json:"catalog,omitempty"`
	Reference   map[string]float64 `yaml:"reference,omitempty" json:"reference,omitempty"`
	Output      OutputConfig       `yaml:"output,omitempty" json:"output,omitempty"`
	Calculation CalculationConfig  `yaml:"calculation,omitempty" json:"calculation,omitempty"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty" json:"level,omitempty"`
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	File   string `yaml:"file,omitempty" json:"file,omitempty"`
}

// StorageConfig selects and parameterizes the project store.
type StorageConfig struct {
	// Driver is one of memory, sqlite or postgres.
	Driver string `yaml:"driver,omitempty" json:"driver,omitempty"`
	// Path is the database file for the sqlite driver.
	Path string `yaml:"path,omitempty" json:"path,omitempty"`
	// DSN is the connection string for the postgres driver.
	DSN string `yaml:"dsn,omitempty" json:"dsn,omitempty"`
}

// CatalogConfig points at the directory holding material release files.
type CatalogConfig struct {
	Dir string `yaml:"dir,omitempty" json:"dir,omitempty"`
}

// OutputConfig holds presentation defaults.
type OutputConfig struct {
	// DefaultFormat is table or json.
	DefaultFormat string `yaml:"default_format,omitempty" json:"default_format,omitempty"`
}

// CalculationConfig holds engine defaults.
type CalculationConfig struct {
	// Verbose enables per-layer debug events for every calculation.
	Verbose bool `yaml:"verbose,omitempty" json:"verbose,omitempty"`
}

// Default returns the built-in configuration without reading any file.
// Storage and catalog paths land under the user's bouwlca directory when
// it can be resolved, otherwise in the working directory.
func Default() *Config {
	cfg := &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatConsole,
		},
		Storage: StorageConfig{
			Driver: store.DriverSQLite,
			Path:   defaultDatabaseFile,
		},
		Output: OutputConfig{
			DefaultFormat: "table",
		},
	}
	if dir, err := GetConfigDir(); err == nil {
		cfg.Storage.Path = filepath.Join(dir, defaultDatabaseFile)
		cfg.Catalog.Dir = filepath.Join(dir, catalogSubdir)
	}
	return cfg
}

// New returns the defaults overlaid with the global config file when one
// exists. A missing file is not an error; an unreadable one is.
func New() (*Config, error) {
	cfg := Default()

	path, err := ConfigFilePath()
	if err != nil {
		return cfg, nil
	}
	if _, statErr := os.Stat(path); statErr != nil {
		return cfg, nil
	}
	if err := ShallowMergeYAML(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetConfigDir returns the bouwlca configuration directory. BOUWLCA_HOME
// overrides the default of ~/.bouwlca.
func GetConfigDir() (string, error) {
	if home := os.Getenv("BOUWLCA_HOME"); home != "" {
		return home, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".bouwlca"), nil
}

// ConfigFilePath returns the global config.yaml path.
func ConfigFilePath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// EnsureConfigDir creates the configuration directory if needed.
func EnsureConfigDir() error {
	dir, err := GetConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, configDirPerm)
}

// Save writes the configuration to path as YAML, creating the parent
// directory if needed.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, configDirPerm); err != nil {
			return fmt.Errorf("creating config directory %q: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, configFilePerm); err != nil {
		return fmt.Errorf("writing config file %q: %w", path, err)
	}
	return nil
}

// ToLoggingConfig bridges the logging section to the logging package. A
// configured file switches the output to file mode.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// Validate returns one message per problem it finds. An empty slice means
// the configuration is usable.
func (c *Config) Validate() []string {
	var problems []string

	if c.Logging.Level != "" {
		if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
			problems = append(problems, fmt.Sprintf("logging.level %q is not a known level", c.Logging.Level))
		}
	}
	if c.Logging.Format != "" && c.Logging.Format != logging.FormatJSON && c.Logging.Format != logging.FormatConsole {
		problems = append(problems, fmt.Sprintf("logging.format %q must be %q or %q", c.Logging.Format, logging.FormatJSON, logging.FormatConsole))
	}

	validDrivers := []string{"", store.DriverMemory, store.DriverSQLite, store.DriverPostgres}
	if !slices.Contains(validDrivers, c.Storage.Driver) {
		problems = append(problems, fmt.Sprintf("storage.driver %q must be one of memory, sqlite, postgres", c.Storage.Driver))
	}
	if c.Storage.Driver == store.DriverPostgres && c.Storage.DSN == "" {
		problems = append(problems, "storage.dsn is required for the postgres driver")
	}

	for _, buildingType := range slices.Sorted(maps.Keys(c.Reference)) {
		if limit := c.Reference[buildingType]; limit <= 0 {
			problems = append(problems, fmt.Sprintf("reference value for %q must be positive, got %v", buildingType, limit))
		}
	}

	if f := c.Output.DefaultFormat; f != "" && f != "table" && f != "json" {
		problems = append(problems, fmt.Sprintf("output.default_format %q must be table or json", f))
	}

	return problems
}
