// Package summary renders a completed run as a fixed-width text table for
// terminal output: one row per simulated year, one column per selected
// module-qualified series.
package summary

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/orrery-sim/orrery/internal/model"
)

const minColumnWidth = 12

// Render formats the selected series of a result. Columns name series in
// module-qualified form ("module.output"); an empty selection renders every
// scalar series in sorted order. Unknown columns and non-scalar values
// render as "-" rather than failing: the run itself already validated.
func Render(res *model.Result, columns []string) string {
	if len(columns) == 0 {
		columns = allColumns(res)
	}

	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = len(col)
		if widths[i] < minColumnWidth {
			widths[i] = minColumnWidth
		}
	}

	var b strings.Builder
	b.WriteString("year")
	for i, col := range columns {
		fmt.Fprintf(&b, "  %*s", widths[i], col)
	}
	b.WriteByte('\n')

	for row, year := range res.Years {
		fmt.Fprintf(&b, "%4d", year)
		for i, col := range columns {
			fmt.Fprintf(&b, "  %*s", widths[i], cell(res, col, row))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// allColumns lists every scalar series in the result, module-qualified and
// sorted for stable output.
func allColumns(res *model.Result) []string {
	var columns []string
	for _, moduleName := range res.Order {
		for output, series := range res.Series[moduleName] {
			if len(series) == 0 {
				continue
			}
			if _, ok := series[0].(float64); !ok {
				continue
			}
			columns = append(columns, moduleName+"."+output)
		}
	}
	sort.Strings(columns)
	return columns
}

func cell(res *model.Result, column string, row int) string {
	moduleName, output, ok := strings.Cut(column, ".")
	if !ok {
		return "-"
	}
	series, ok := res.Series[moduleName][output]
	if !ok || row >= len(series) {
		return "-"
	}
	v, ok := series[row].(float64)
	if !ok {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}
