package summary

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/calculate-sales/internal/types"
)

// Sheet is one worksheet of a summary workbook.
type Sheet struct {
	// Name is the worksheet name, e.g. "branch".
	Name string
	Rows []Row
}

// workbookHeader is the first row of every sheet.
var workbookHeader = []interface{}{"Code", "Name", "Total"}

// WriteWorkbook writes each sheet to an .xlsx workbook at path, in order.
// The first sheet becomes the active one.
func WriteWorkbook(path string, sheets []Sheet) (err error) {
	if len(sheets) == 0 {
		return types.WrapError(types.KindWriteError, path, fmt.Errorf("no sheets to write"))
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = types.WrapError(types.KindWriteError, path, cerr)
		}
	}()

	// A new workbook starts with "Sheet1"; rename it instead of deleting it.
	defaultSheet := f.GetSheetName(0)

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sheet.Name); err != nil {
				return types.WrapError(types.KindWriteError, path, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return types.WrapError(types.KindWriteError, path, err)
		}

		if err := writeSheet(f, sheet); err != nil {
			return types.WrapError(types.KindWriteError, path, err)
		}
	}

	f.SetActiveSheet(0)

	if err := f.SaveAs(path); err != nil {
		return types.WrapError(types.KindWriteError, path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet Sheet) error {
	if err := f.SetSheetRow(sheet.Name, "A1", &workbookHeader); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", sheet.Name, err)
	}

	for i, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{row.Code, row.Name, row.Total}
		if err := f.SetSheetRow(sheet.Name, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+1, sheet.Name, err)
		}
	}

	return nil
}
