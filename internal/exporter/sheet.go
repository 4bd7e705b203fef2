package exporter

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"reportgen/internal/config"
	"reportgen/internal/report"
)

// Column widths are sized to content plus padding, capped to keep a single
// long cell from producing an unusable sheet.
const (
	colWidthPadding = 2
	colWidthMax     = 50
)

const altRowFill = "F2F2F2"

// SummaryMeta carries the report metadata written at the top of the
// summary sheet.
type SummaryMeta struct {
	Title       string
	GeneratedAt string
}

// SheetWriter renders tables and summary metrics into workbook sheets with
// the configured palette. It mutates the underlying workbook in place.
type SheetWriter struct {
	f          *excelize.File
	palette    config.Palette
	dateLayout string

	headerStyle  int
	dataStyle    int
	altRowStyle  int
	stylesLoaded bool
}

// NewSheetWriter creates a sheet writer for the given workbook. dateLayout
// is the Go time layout used to render date cells.
func NewSheetWriter(f *excelize.File, palette config.Palette, dateLayout string) *SheetWriter {
	return &SheetWriter{f: f, palette: palette, dateLayout: dateLayout}
}

// WriteTable writes the table as a formatted data sheet: a styled header
// row, bordered and centered data cells, alternating row fills, and
// content-sized column widths. Tables with zero rows produce a header-only
// sheet.
func (w *SheetWriter) WriteTable(sheet string, tbl report.Table) error {
	if len(tbl.Columns) == 0 {
		return nil
	}
	if err := w.ensureStyles(); err != nil {
		return err
	}

	for col, name := range tbl.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("resolve header cell: %w", err)
		}
		if err := w.f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("write header cell %s: %w", cell, err)
		}
	}

	for rowIdx := range tbl.Rows {
		for col := range tbl.Columns {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("resolve data cell: %w", err)
			}
			if err := w.f.SetCellValue(sheet, cell, w.cellValue(tbl.Cell(rowIdx, col))); err != nil {
				return fmt.Errorf("write data cell %s: %w", cell, err)
			}
		}
	}

	if err := w.styleTable(sheet, tbl); err != nil {
		return err
	}
	return w.sizeColumns(sheet, tbl)
}

// cellValue converts a cell to the value handed to the codec. Dates render
// as display strings so saved sheets read back exactly what was shown;
// native numbers, strings and booleans pass through.
func (w *SheetWriter) cellValue(v any) any {
	switch val := v.(type) {
	case nil:
		return ""
	case time.Time:
		return val.Format(w.dateLayout)
	case string, bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return val
	default:
		return displayString(v, w.dateLayout)
	}
}

func (w *SheetWriter) styleTable(sheet string, tbl report.Table) error {
	lastCol, err := excelize.ColumnNumberToName(len(tbl.Columns))
	if err != nil {
		return fmt.Errorf("resolve last column: %w", err)
	}

	if err := w.f.SetCellStyle(sheet, "A1", lastCol+"1", w.headerStyle); err != nil {
		return fmt.Errorf("style header row: %w", err)
	}

	for rowIdx := range tbl.Rows {
		rowNum := rowIdx + 2
		style := w.dataStyle
		if rowNum%2 == 0 {
			style = w.altRowStyle
		}
		first := fmt.Sprintf("A%d", rowNum)
		last := fmt.Sprintf("%s%d", lastCol, rowNum)
		if err := w.f.SetCellStyle(sheet, first, last, style); err != nil {
			return fmt.Errorf("style data row %d: %w", rowNum, err)
		}
	}
	return nil
}

func (w *SheetWriter) sizeColumns(sheet string, tbl report.Table) error {
	for col, name := range tbl.Columns {
		width := len(name)
		for rowIdx := range tbl.Rows {
			if l := len(displayString(tbl.Cell(rowIdx, col), w.dateLayout)); l > width {
				width = l
			}
		}
		width += colWidthPadding
		if width > colWidthMax {
			width = colWidthMax
		}

		colName, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fmt.Errorf("resolve column name: %w", err)
		}
		if err := w.f.SetColWidth(sheet, colName, colName, float64(width)); err != nil {
			return fmt.Errorf("set column width %s: %w", colName, err)
		}
	}
	return nil
}

// WriteSummary writes the summary sheet: a merged title row, the generation
// date, and a bordered label/value block of metrics starting at row 5. Zero
// metrics still produce the title and metadata.
func (w *SheetWriter) WriteSummary(sheet string, meta SummaryMeta, metrics []report.Metric) error {
	if err := w.ensureStyles(); err != nil {
		return err
	}

	titleStyle, err := w.f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("create title style: %w", err)
	}
	if err := w.f.SetCellValue(sheet, "A1", meta.Title); err != nil {
		return fmt.Errorf("write summary title: %w", err)
	}
	if err := w.f.MergeCell(sheet, "A1", "F1"); err != nil {
		return fmt.Errorf("merge title cells: %w", err)
	}
	if err := w.f.SetCellStyle(sheet, "A1", "A1", titleStyle); err != nil {
		return fmt.Errorf("style summary title: %w", err)
	}

	italicStyle, err := w.f.NewStyle(&excelize.Style{Font: &excelize.Font{Italic: true}})
	if err != nil {
		return fmt.Errorf("create date style: %w", err)
	}
	if err := w.f.SetCellValue(sheet, "A2", "Generated: "+meta.GeneratedAt); err != nil {
		return fmt.Errorf("write generation date: %w", err)
	}
	if err := w.f.SetCellStyle(sheet, "A2", "A2", italicStyle); err != nil {
		return fmt.Errorf("style generation date: %w", err)
	}

	headingStyle, err := w.f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return fmt.Errorf("create heading style: %w", err)
	}
	if err := w.f.SetCellValue(sheet, "A4", "Key Metrics"); err != nil {
		return fmt.Errorf("write metrics heading: %w", err)
	}
	if err := w.f.SetCellStyle(sheet, "A4", "A4", headingStyle); err != nil {
		return fmt.Errorf("style metrics heading: %w", err)
	}

	labelStyle, err := w.f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: thinBorders(),
	})
	if err != nil {
		return fmt.Errorf("create label style: %w", err)
	}
	valueStyle, err := w.f.NewStyle(&excelize.Style{Border: thinBorders()})
	if err != nil {
		return fmt.Errorf("create value style: %w", err)
	}

	labelWidth, valueWidth := len("Key Metrics"), 0
	for i, m := range metrics {
		rowNum := 5 + i
		labelCell := fmt.Sprintf("A%d", rowNum)
		valueCell := fmt.Sprintf("B%d", rowNum)

		if err := w.f.SetCellValue(sheet, labelCell, m.Label); err != nil {
			return fmt.Errorf("write metric label %s: %w", labelCell, err)
		}
		if err := w.f.SetCellValue(sheet, valueCell, m.Display); err != nil {
			return fmt.Errorf("write metric value %s: %w", valueCell, err)
		}
		if err := w.f.SetCellStyle(sheet, labelCell, labelCell, labelStyle); err != nil {
			return fmt.Errorf("style metric label %s: %w", labelCell, err)
		}
		if err := w.f.SetCellStyle(sheet, valueCell, valueCell, valueStyle); err != nil {
			return fmt.Errorf("style metric value %s: %w", valueCell, err)
		}

		if len(m.Label) > labelWidth {
			labelWidth = len(m.Label)
		}
		if len(m.Display) > valueWidth {
			valueWidth = len(m.Display)
		}
	}

	if err := w.f.SetColWidth(sheet, "A", "A", float64(labelWidth+colWidthPadding)); err != nil {
		return fmt.Errorf("set summary label width: %w", err)
	}
	if err := w.f.SetColWidth(sheet, "B", "B", float64(valueWidth+colWidthPadding)); err != nil {
		return fmt.Errorf("set summary value width: %w", err)
	}
	return nil
}

// ensureStyles builds the shared table styles once per writer
func (w *SheetWriter) ensureStyles() error {
	if w.stylesLoaded {
		return nil
	}

	headerStyle, err := w.f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 12},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{w.palette.Header}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	dataStyle, err := w.f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return fmt.Errorf("create data style: %w", err)
	}

	altRowStyle, err := w.f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
		Fill:      excelize.Fill{Type: "pattern", Color: []string{altRowFill}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create alternating row style: %w", err)
	}

	w.headerStyle = headerStyle
	w.dataStyle = dataStyle
	w.altRowStyle = altRowStyle
	w.stylesLoaded = true
	return nil
}

func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
}
