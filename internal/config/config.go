// =============================================================================
// Calculate Sales - Configuration Module
// =============================================================================
//
// This module loads the application configuration. Sources, later ones win:
//   1. Built-in defaults
//   2. The YAML file given by --config (optional when left at its default)
//   3. Environment variables prefixed with SALES_ (e.g. SALES_LOG_LEVEL)
//
// Only file names, charsets and logging are configurable. The validation
// rules (code formats, record layout, overflow ceiling) are fixed.
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "SALES"

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = "config.yaml"

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// =========================================================================
	// INPUT FILES
	// =========================================================================

	// BranchDefinitionFile is the branch definition file name inside the input directory.
	// Default: "branch.lst"
	BranchDefinitionFile string `yaml:"branch_definition_file" envconfig:"BRANCH_DEFINITION_FILE" validate:"required,excludesall=/\\"`

	// CommodityDefinitionFile is the commodity definition file name.
	// Default: "commodity.lst"
	CommodityDefinitionFile string `yaml:"commodity_definition_file" envconfig:"COMMODITY_DEFINITION_FILE" validate:"required,excludesall=/\\"`

	// Encoding is the charset of definition and record files.
	// Valid values: "auto", "utf-8", "shift_jis"
	// Default: "auto"
	Encoding string `yaml:"encoding" envconfig:"ENCODING" validate:"oneof=auto utf-8 shift_jis"`

	// =========================================================================
	// OUTPUT FILES
	// =========================================================================

	// BranchSummaryFile is the branch summary file name.
	// Default: "branch.out"
	BranchSummaryFile string `yaml:"branch_summary_file" envconfig:"BRANCH_SUMMARY_FILE" validate:"required,excludesall=/\\"`

	// CommoditySummaryFile is the commodity summary file name.
	// Default: "commodity.out"
	CommoditySummaryFile string `yaml:"commodity_summary_file" envconfig:"COMMODITY_SUMMARY_FILE" validate:"required,excludesall=/\\"`

	// OutputDir is where summary files are written. Empty means the input directory.
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR"`

	// WorkbookFile, when set, is an .xlsx file written next to the summaries.
	WorkbookFile string `yaml:"workbook_file" envconfig:"WORKBOOK_FILE" validate:"omitempty,excludesall=/\\,endswith=.xlsx"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "warn", so that a successful run prints nothing.
	LogLevel string `yaml:"log_level" envconfig:"LOG_LEVEL" validate:"oneof=debug info warn error"`
}

// Default returns the configuration used when no file or environment overrides exist.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// Load builds the configuration from defaults, the YAML file at path and the
// environment.
//
// PARAMETERS:
//   - path: The YAML file. Empty means "no file".
//   - required: When false, a missing file at path is not an error.
//
// RETURNS:
//   - The validated configuration.
//   - An error if the file cannot be read or parsed, or validation fails.
func Load(path string, required bool) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		case errors.Is(err, fs.ErrNotExist) && !required:
		default:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyDefaults sets default values for any unset option.
func applyDefaults(cfg *Config) {
	if cfg.BranchDefinitionFile == "" {
		cfg.BranchDefinitionFile = "branch.lst"
	}
	if cfg.CommodityDefinitionFile == "" {
		cfg.CommodityDefinitionFile = "commodity.lst"
	}
	if cfg.BranchSummaryFile == "" {
		cfg.BranchSummaryFile = "branch.out"
	}
	if cfg.CommoditySummaryFile == "" {
		cfg.CommoditySummaryFile = "commodity.out"
	}
	if cfg.Encoding == "" {
		cfg.Encoding = "auto"
	}
	cfg.Encoding = strings.ToLower(cfg.Encoding)
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
}

var validate = validator.New()

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	return validate.Struct(cfg)
}
