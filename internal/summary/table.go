package summary

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// RenderTable prints a sheet as a console table to w.
func RenderTable(w io.Writer, sheet Sheet) {
	fmt.Fprintf(w, "\n=== %s ===\n", sheet.Name)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Code", "Name", "Total"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, row := range sheet.Rows {
		table.Append([]string{row.Code, row.Name, strconv.FormatInt(row.Total, 10)})
	}

	table.Render()
}
