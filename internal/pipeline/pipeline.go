// =============================================================================
// Calculate Sales - Pipeline
// =============================================================================
//
// This module runs the whole aggregation for one input directory.
//
// PIPELINE:
//   1. Load the branch definition file
//   2. Load the commodity definition file (skipped in branch-only mode)
//   3. List the input directory and select the record files
//   4. Validate and accumulate every record file, in sequence order
//   5. Write the branch summary, then the commodity summary
//   6. Optionally write the summary workbook
//
// The first failure stops the run. Stages after it never run; files written
// by earlier stages stay on disk.
//
// =============================================================================

package pipeline

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ginjaninja78/calculate-sales/internal/config"
	"github.com/ginjaninja78/calculate-sales/internal/definition"
	"github.com/ginjaninja78/calculate-sales/internal/selector"
	"github.com/ginjaninja78/calculate-sales/internal/summary"
	"github.com/ginjaninja78/calculate-sales/internal/types"
	"github.com/ginjaninja78/calculate-sales/internal/validation"
	"github.com/ginjaninja78/calculate-sales/pkg/utils"
)

// =============================================================================
// OPTIONS AND RESULT
// =============================================================================

// Options selects how a run behaves. Validation rules are not optional.
type Options struct {
	// InputDir holds the definition files and the record files.
	InputDir string

	// OutputDir receives the summary files. Empty means InputDir.
	OutputDir string

	// BranchOnly uses the two-line record layout and skips commodities.
	BranchOnly bool

	// DryRun validates and accumulates but writes nothing.
	DryRun bool

	// WorkbookFile, when set, is also written to OutputDir as .xlsx.
	WorkbookFile string
}

// Result represents the outcome of one run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string

	// RecordsProcessed is the number of record files accumulated.
	RecordsProcessed int

	// AmountTotal is the sum of all accumulated amounts.
	AmountTotal int64

	// Sheets holds the summaries, branch first.
	Sheets []summary.Sheet

	// Outputs lists the files written, in write order.
	Outputs []string

	// Duration is the wall time of the run.
	Duration time.Duration
}

// =============================================================================
// PIPELINE
// =============================================================================

// Pipeline runs the aggregation for one input directory.
type Pipeline struct {
	cfg    *config.Config
	opts   Options
	files  *utils.FileManager
	logger *slog.Logger
}

// New creates a Pipeline. A nil logger uses slog.Default.
func New(cfg *config.Config, opts Options, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.OutputDir == "" {
		opts.OutputDir = opts.InputDir
	}
	return &Pipeline{
		cfg:    cfg,
		opts:   opts,
		files:  utils.NewFileManager(cfg.Encoding),
		logger: logger,
	}
}

// Run executes the pipeline. The returned Result is partially filled when the
// run fails, so callers can still report what was written.
func (p *Pipeline) Run() (*Result, error) {
	startTime := time.Now()
	result := &Result{RunID: uuid.New().String()}
	logger := p.logger.With("run_id", result.RunID)

	defer func() {
		result.Duration = time.Since(startTime)
	}()

	logger.Debug("run started", "input_dir", p.opts.InputDir, "branch_only", p.opts.BranchOnly)

	// =========================================================================
	// STEP 1-2: LOAD DEFINITIONS
	// =========================================================================

	loader := definition.NewLoader(p.files)

	branches, branchTotals, err := loader.Load(p.opts.InputDir, p.cfg.BranchDefinitionFile, types.Branch)
	if err != nil {
		return result, err
	}
	logger.Debug("definitions loaded", "category", types.Branch.Name, "codes", branches.Len())

	var layout validation.Layout
	var commodities *definition.Dictionary
	var commodityTotals definition.Totals

	if p.opts.BranchOnly {
		layout = validation.BranchOnly(branches, branchTotals)
	} else {
		commodities, commodityTotals, err = loader.Load(p.opts.InputDir, p.cfg.CommodityDefinitionFile, types.Commodity)
		if err != nil {
			return result, err
		}
		logger.Debug("definitions loaded", "category", types.Commodity.Name, "codes", commodities.Len())
		layout = validation.BranchCommodity(branches, branchTotals, commodities, commodityTotals)
	}

	// =========================================================================
	// STEP 3: SELECT RECORD FILES
	// =========================================================================

	entries, err := p.files.ListDir(p.opts.InputDir)
	if err != nil {
		return result, types.WrapError(types.KindUnknown, p.opts.InputDir, err)
	}

	records, err := selector.Select(entries)
	if err != nil {
		return result, err
	}
	logger.Debug("record files selected", "count", len(records))

	// =========================================================================
	// STEP 4: VALIDATE AND ACCUMULATE
	// =========================================================================

	validator := validation.NewValidator(p.files, p.opts.InputDir, layout, logger)
	stats, err := validator.ValidateAll(records)
	if stats != nil {
		result.RecordsProcessed = stats.FilesProcessed
		result.AmountTotal = stats.AmountTotal
	}
	if err != nil {
		return result, err
	}

	result.Sheets = append(result.Sheets, summary.Sheet{
		Name: types.Branch.Name,
		Rows: summary.Rows(branches, branchTotals),
	})
	if commodities != nil {
		result.Sheets = append(result.Sheets, summary.Sheet{
			Name: types.Commodity.Name,
			Rows: summary.Rows(commodities, commodityTotals),
		})
	}

	if p.opts.DryRun {
		logger.Info("dry run complete", "records", result.RecordsProcessed)
		return result, nil
	}

	// =========================================================================
	// STEP 5-6: WRITE SUMMARIES
	// =========================================================================

	if err := p.files.EnsureDir(p.opts.OutputDir); err != nil {
		return result, types.WrapError(types.KindWriteError, p.opts.OutputDir, err)
	}

	writer := summary.NewWriter(p.files)

	if err := p.write(writer, result, p.cfg.BranchSummaryFile, branches, branchTotals); err != nil {
		return result, err
	}
	if commodities != nil {
		if err := p.write(writer, result, p.cfg.CommoditySummaryFile, commodities, commodityTotals); err != nil {
			return result, err
		}
	}

	if p.opts.WorkbookFile != "" {
		path := filepath.Join(p.opts.OutputDir, p.opts.WorkbookFile)
		if err := summary.WriteWorkbook(path, result.Sheets); err != nil {
			return result, err
		}
		result.Outputs = append(result.Outputs, path)
	}

	logger.Info("run complete",
		"records", result.RecordsProcessed,
		"amount_total", result.AmountTotal,
		"outputs", result.Outputs,
	)

	return result, nil
}

// write writes one summary file and records it in result.
func (p *Pipeline) write(writer *summary.Writer, result *Result, fileName string,
	dict *definition.Dictionary, totals definition.Totals) error {
	path := filepath.Join(p.opts.OutputDir, fileName)
	if err := writer.Write(path, dict, totals); err != nil {
		return err
	}
	result.Outputs = append(result.Outputs, path)
	return nil
}
