// =============================================================================
// Calculate Sales - Record Validator & Accumulator
// =============================================================================
//
// This module validates each record file and folds its amount into the
// running totals. A record file holds one value per line:
//
//   branch+commodity layout      branch-only layout
//   -----------------------      ------------------
//   001                          001
//   SFT00001                     10000
//   10000
//
// VALIDATION ORDER (per file, first failure wins):
//   1. Line count equals the layout's arity          -> MalformedRecord
//   2. Each code exists in its dictionary            -> UnknownBranchCode /
//                                                       UnknownProductCode
//   3. The amount is one or more ASCII digits        -> NonNumericAmount
//   4. No new total reaches the overflow ceiling     -> AmountOverflow
//
// Totals are only written after every check on the file has passed, so a
// rejected file never changes any total. Files are processed in the order
// given, which must be the selector's sorted order: the abort point of an
// overflow depends on it.
//
// =============================================================================

package validation

import (
	"log/slog"
	"path/filepath"
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/calculate-sales/internal/definition"
	"github.com/ginjaninja78/calculate-sales/internal/selector"
	"github.com/ginjaninja78/calculate-sales/internal/types"
	"github.com/ginjaninja78/calculate-sales/pkg/utils"
)

// OverflowCeiling is the smallest total that is rejected: the first 11-digit value.
const OverflowCeiling int64 = 10_000_000_000

var (
	amountPattern = regexp.MustCompile(`^[0-9]+$`)
	ceiling       = decimal.NewFromInt(OverflowCeiling)
)

// =============================================================================
// LAYOUT
// =============================================================================

// Slot binds one record line to the dictionary it must be found in and the
// totals it accumulates into.
type Slot struct {
	Category types.Category
	Dict     *definition.Dictionary
	Totals   definition.Totals

	// MissingKind is reported when the code is not in Dict.
	MissingKind types.Kind
}

// Layout describes the lines of a record file: one line per slot, in order,
// followed by the amount line.
type Layout struct {
	Slots []Slot
}

// Arity returns the number of lines a record file must have.
func (l Layout) Arity() int {
	return len(l.Slots) + 1
}

// BranchOnly is the two-line layout: branch code, amount.
func BranchOnly(dict *definition.Dictionary, totals definition.Totals) Layout {
	return Layout{Slots: []Slot{
		{Category: types.Branch, Dict: dict, Totals: totals, MissingKind: types.KindUnknownBranchCode},
	}}
}

// BranchCommodity is the three-line layout: branch code, commodity code, amount.
func BranchCommodity(branch *definition.Dictionary, branchTotals definition.Totals,
	commodity *definition.Dictionary, commodityTotals definition.Totals) Layout {
	return Layout{Slots: []Slot{
		{Category: types.Branch, Dict: branch, Totals: branchTotals, MissingKind: types.KindUnknownBranchCode},
		{Category: types.Commodity, Dict: commodity, Totals: commodityTotals, MissingKind: types.KindUnknownProductCode},
	}}
}

// =============================================================================
// VALIDATION RESULT
// =============================================================================

// Result summarizes an accumulation run.
type Result struct {
	// FilesProcessed is the number of record files committed.
	FilesProcessed int

	// AmountTotal is the sum of every committed amount.
	AmountTotal int64
}

// =============================================================================
// VALIDATOR
// =============================================================================

// Validator validates record files and accumulates them into a Layout's totals.
type Validator struct {
	files  *utils.FileManager
	dir    string
	layout Layout
	logger *slog.Logger
}

// NewValidator creates a Validator reading record files from dir.
func NewValidator(files *utils.FileManager, dir string, layout Layout, logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Validator{
		files:  files,
		dir:    dir,
		layout: layout,
		logger: logger,
	}
}

// ValidateAll processes record files in the given order and stops at the first
// error. Totals committed by earlier files stay committed.
func (v *Validator) ValidateAll(records []selector.RecordFile) (*Result, error) {
	result := &Result{}

	for _, record := range records {
		lines, err := v.files.ReadLines(filepath.Join(v.dir, record.Name))
		if err != nil {
			return result, types.WrapError(types.KindUnknown, record.Name, err)
		}

		amount, err := v.ValidateRecord(record.Name, lines)
		if err != nil {
			v.logger.Debug("record rejected", "file", record.Name, "kind", types.KindOf(err).String())
			return result, err
		}

		result.FilesProcessed++
		result.AmountTotal += amount
		v.logger.Debug("record accumulated", "file", record.Name, "amount", amount)
	}

	return result, nil
}

// ValidateRecord validates the lines of one record file and, when every check
// passes, commits the amount to every slot's totals.
//
// RETURNS:
//   - The committed amount.
//   - A *types.Error naming fileName when the record is rejected.
func (v *Validator) ValidateRecord(fileName string, lines []string) (int64, error) {
	arity := v.layout.Arity()
	if len(lines) != arity {
		return 0, types.NewError(types.KindMalformedRecord, fileName)
	}

	for i, slot := range v.layout.Slots {
		if !slot.Dict.Contains(lines[i]) {
			return 0, types.NewError(slot.MissingKind, fileName)
		}
	}

	amountText := lines[arity-1]
	if !amountPattern.MatchString(amountText) {
		return 0, types.NewError(types.KindNonNumericAmount, fileName)
	}

	// Arbitrary precision: an amount beyond int64 is an overflow, not a parse fault.
	amount, err := decimal.NewFromString(amountText)
	if err != nil {
		return 0, types.WrapError(types.KindNonNumericAmount, fileName, err)
	}
	if amount.GreaterThanOrEqual(ceiling) {
		return 0, types.NewError(types.KindAmountOverflow, fileName)
	}

	candidates := make([]int64, len(v.layout.Slots))
	for i, slot := range v.layout.Slots {
		next := decimal.NewFromInt(slot.Totals[lines[i]]).Add(amount)
		if next.GreaterThanOrEqual(ceiling) {
			return 0, types.NewError(types.KindAmountOverflow, fileName)
		}
		candidates[i] = next.IntPart()
	}

	for i, slot := range v.layout.Slots {
		slot.Totals[lines[i]] = candidates[i]
	}

	return amount.IntPart(), nil
}
