package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"reportgen/internal/report"
)

// ChartKind selects the chart shape attached to a data sheet
type ChartKind string

const (
	ChartBar  ChartKind = "bar"
	ChartLine ChartKind = "line"
)

// ChartEligible reports whether a table qualifies for a chart: at least one
// numeric column and at least one data row. Ineligible tables are skipped
// silently; the absence of a chart is a valid outcome.
func ChartEligible(tbl report.Table) bool {
	if tbl.IsEmpty() {
		return false
	}
	for _, kind := range tbl.ColumnKinds() {
		if kind == report.ColumnNumeric {
			return true
		}
	}
	return false
}

// chartBinding resolves which columns a chart uses. Categories come from
// the first non-numeric column (the date or key column) when one exists,
// otherwise the first column; the series plots the first numeric column
// after the category column, falling back to the first numeric column
// anywhere.
type chartBinding struct {
	categoryCol int
	valueCol    int
	kind        ChartKind
}

func resolveChartBinding(tbl report.Table) (chartBinding, bool) {
	kinds := tbl.ColumnKinds()

	categoryCol := 0
	categoryFound := false
	for col, kind := range kinds {
		if kind != report.ColumnNumeric {
			categoryCol = col
			categoryFound = true
			break
		}
	}

	valueCol := -1
	for col := categoryCol + 1; col < len(kinds); col++ {
		if kinds[col] == report.ColumnNumeric {
			valueCol = col
			break
		}
	}
	if valueCol < 0 {
		for col, kind := range kinds {
			if kind == report.ColumnNumeric {
				valueCol = col
				break
			}
		}
	}
	if valueCol < 0 {
		return chartBinding{}, false
	}

	kind := ChartBar
	if categoryFound && kinds[categoryCol] == report.ColumnDate {
		kind = ChartLine
	}

	return chartBinding{categoryCol: categoryCol, valueCol: valueCol, kind: kind}, true
}

// AttachChart anchors a chart on the sheet bound to the table's own ranges.
// Line charts are used for date-indexed tables, bar charts otherwise.
// Tables that are not chart-eligible are skipped without error.
func (w *SheetWriter) AttachChart(sheet string, tbl report.Table) error {
	if !ChartEligible(tbl) {
		return nil
	}

	binding, ok := resolveChartBinding(tbl)
	if !ok {
		return nil
	}

	categoryName, err := excelize.ColumnNumberToName(binding.categoryCol + 1)
	if err != nil {
		return fmt.Errorf("resolve category column: %w", err)
	}
	valueName, err := excelize.ColumnNumberToName(binding.valueCol + 1)
	if err != nil {
		return fmt.Errorf("resolve value column: %w", err)
	}

	lastRow := len(tbl.Rows) + 1
	chartType := excelize.Col
	if binding.kind == ChartLine {
		chartType = excelize.Line
	}

	chart := &excelize.Chart{
		Type: chartType,
		Series: []excelize.ChartSeries{
			{
				Name:       fmt.Sprintf("%s!$%s$1", sheet, valueName),
				Categories: fmt.Sprintf("%s!$%s$2:$%s$%d", sheet, categoryName, categoryName, lastRow),
				Values:     fmt.Sprintf("%s!$%s$2:$%s$%d", sheet, valueName, valueName, lastRow),
			},
		},
		Title:  []excelize.RichTextRun{{Text: tbl.Columns[binding.valueCol]}},
		Legend: excelize.ChartLegend{Position: "bottom"},
	}

	anchor, err := excelize.CoordinatesToCellName(len(tbl.Columns)+2, 2)
	if err != nil {
		return fmt.Errorf("resolve chart anchor: %w", err)
	}

	if err := w.f.AddChart(sheet, anchor, chart); err != nil {
		return fmt.Errorf("add %s chart to sheet %s: %w", binding.kind, sheet, err)
	}
	return nil
}
