package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/zoobzio/wareql/export"
	"github.com/zoobzio/wareql/warehouse"
)

// printTable prints rows in aligned columns with NULL for missing values.
func printTable(w io.Writer, rs *warehouse.ResultSet) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(rs.Columns, "\t"))
	sep := make([]string, len(rs.Columns))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	cells := make([]string, len(rs.Columns))
	for _, row := range rs.Rows {
		for i, v := range row {
			cells[i] = formatValue(v)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func formatValue(v any) string {
	if v == nil {
		return "NULL"
	}
	return export.FormatCell(v)
}
