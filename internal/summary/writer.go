// =============================================================================
// Calculate Sales - Summary Writer
// =============================================================================
//
// This module serializes a dictionary and its totals into a summary file
// (branch.out, commodity.out), one line per defined code in definition order:
//
//   001,Sapporo,1200
//   002,Sendai,0
//
// Codes that never appeared in a record are still written with a zero total.
// The file is written in place; a failure mid-write can leave it partial.
//
// =============================================================================

package summary

import (
	"strconv"
	"strings"

	"github.com/ginjaninja78/calculate-sales/internal/definition"
	"github.com/ginjaninja78/calculate-sales/internal/types"
	"github.com/ginjaninja78/calculate-sales/pkg/utils"
)

// Row is one summary line.
type Row struct {
	Code  string
	Name  string
	Total int64
}

// Rows returns one row per code of dict, in dict order.
func Rows(dict *definition.Dictionary, totals definition.Totals) []Row {
	codes := dict.Codes()
	rows := make([]Row, 0, len(codes))
	for _, code := range codes {
		name, _ := dict.Name(code)
		rows = append(rows, Row{Code: code, Name: name, Total: totals[code]})
	}
	return rows
}

// Format renders a row as "code,name,total".
func (r Row) Format() string {
	return strings.Join([]string{r.Code, r.Name, strconv.FormatInt(r.Total, 10)}, ",")
}

// Writer writes summary files.
type Writer struct {
	files *utils.FileManager
}

// NewWriter creates a Writer.
func NewWriter(files *utils.FileManager) *Writer {
	return &Writer{files: files}
}

// Write writes the summary of dict and totals to path.
// Any I/O failure is returned as a WriteError.
func (w *Writer) Write(path string, dict *definition.Dictionary, totals definition.Totals) error {
	rows := Rows(dict, totals)

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = row.Format()
	}

	if err := w.files.WriteLines(path, lines); err != nil {
		return types.WrapError(types.KindWriteError, path, err)
	}
	return nil
}
