// =============================================================================
// Calculate Sales - Root Command
// =============================================================================
//
// COBRA CLI STRUCTURE:
//   rootCmd (calculate-sales)
//   ├── processCmd (calculate-sales process <dir>)
//   └── versionCmd (calculate-sales version)
//
// The root command owns the global flags (--config, --verbose) and, before
// any subcommand runs, loads .env, the configuration and the logger.
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/calculate-sales/internal/config"
	"github.com/ginjaninja78/calculate-sales/internal/logging"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
var cfgFile string

// verbose forces debug logging.
var verbose bool

// appConfig and logger are set by the root PersistentPreRunE.
var (
	appConfig *config.Config
	logger    *slog.Logger
)

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "calculate-sales",
	Short: "Calculate Sales - aggregate daily sales records per branch and commodity",
	Long: `Calculate Sales reads the branch and commodity definition files and the
daily sales record files of a directory, validates every record, and writes
the total sales per branch and per commodity.

Input directory:
  branch.lst        001,Sapporo
  commodity.lst     SFT00001,Office Suite
  00000001.rcd      branch code / commodity code / amount, one per line

Output (in the same directory unless --output-dir is given):
  branch.out        001,Sapporo,<total>
  commodity.out     SFT00001,Office Suite,<total>

Example Usage:
  calculate-sales process ./sales
  calculate-sales process ./sales --print --workbook summary.xlsx`,

	SilenceErrors: true,
	SilenceUsage:  true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. Any failure is printed as a single line and
// the process exits with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultConfigFile,
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)
}

// initConfig loads .env, the configuration and the logger.
// The default config file may be absent; an explicitly named one may not.
func initConfig() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	cfg, err := config.Load(cfgFile, cfgFile != config.DefaultConfigFile)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if verbose {
		level = slog.LevelDebug
	}

	appConfig = cfg
	logger = logging.New(os.Stderr, level)
	return nil
}
