// =============================================================================
// Calculate Sales - Process Command
// =============================================================================
//
// COMMAND USAGE:
//   calculate-sales process <dir> [flags]
//
// FLAGS:
//   --dry-run      : Validate and aggregate without writing any file
//   --branch-only  : Two-line record files (branch code, amount); no commodities
//   --output-dir   : Directory for the summary files (default: <dir>)
//   --workbook     : Also write the summaries to this .xlsx file
//   --print        : Print the summaries as tables
//
// A successful run prints nothing unless --print is given. A failed run
// prints one error line and exits with status 1.
//
// =============================================================================

package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/calculate-sales/internal/pipeline"
	"github.com/ginjaninja78/calculate-sales/internal/summary"
	"github.com/ginjaninja78/calculate-sales/internal/types"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	dryRun       bool
	branchOnly   bool
	outputDir    string
	workbookFile string
	printTables  bool
)

// =============================================================================
// PROCESS COMMAND DEFINITION
// =============================================================================

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process <dir>",
	Short: "Aggregate the sales record files of a directory",
	Long: `The process command loads branch.lst and commodity.lst from <dir>, selects
the record files named <8 digits>.rcd, checks that their numbers are
consecutive, validates every record, and writes branch.out and commodity.out.

Processing stops at the first invalid file. Nothing is written for stages
that were not reached.`,

	// Exactly one directory. Anything else is reported as an unexpected error.
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return types.NewError(types.KindUnknown, "")
		}
		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Validate and aggregate without writing output files",
	)

	processCmd.Flags().BoolVar(
		&branchOnly,
		"branch-only",
		false,
		"Read two-line record files (branch code, amount) and skip commodities",
	)

	processCmd.Flags().StringVar(
		&outputDir,
		"output-dir",
		"",
		"Directory for the summary files (default is the input directory)",
	)

	processCmd.Flags().StringVar(
		&workbookFile,
		"workbook",
		"",
		"Also write the summaries to this .xlsx file in the output directory",
	)

	processCmd.Flags().BoolVar(
		&printTables,
		"print",
		false,
		"Print the summaries as tables",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runProcess runs the pipeline for dir with the flag and config settings.
func runProcess(cmd *cobra.Command, dir string) error {
	opts := pipeline.Options{
		InputDir:     dir,
		OutputDir:    appConfig.OutputDir,
		BranchOnly:   branchOnly,
		DryRun:       dryRun,
		WorkbookFile: appConfig.WorkbookFile,
	}
	if outputDir != "" {
		opts.OutputDir = outputDir
	}
	if workbookFile != "" {
		opts.WorkbookFile = workbookFile
	}

	result, err := pipeline.New(appConfig, opts, logger).Run()
	if err != nil {
		logger.Debug("run failed",
			"run_id", result.RunID,
			"kind", types.KindOf(err).String(),
			"error", err,
			"cause", causeOf(err),
		)
		return err
	}

	if printTables {
		for _, sheet := range result.Sheets {
			summary.RenderTable(cmd.OutOrStdout(), sheet)
		}
	}

	return nil
}

// causeOf returns the underlying cause of a pipeline error for debug logs.
func causeOf(err error) string {
	var e *types.Error
	if errors.As(err, &e) && e.Err != nil {
		return e.Err.Error()
	}
	return ""
}
