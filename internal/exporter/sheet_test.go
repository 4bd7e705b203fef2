package exporter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"reportgen/internal/config"
	"reportgen/internal/report"
)

func newTestWriter(t *testing.T) (*SheetWriter, *excelize.File) {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })
	return NewSheetWriter(f, config.Default().Colors, "2006-01-02"), f
}

func TestSheetWriter_WriteTable(t *testing.T) {
	writer, f := newTestWriter(t)

	tbl := report.Table{
		Name:    "sales_data",
		Columns: []string{"Date", "Revenue", "Region"},
		Rows: [][]any{
			{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 1000, "North"},
			{time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), 1500.5, "South"},
		},
	}

	sheet := f.GetSheetName(0)
	require.NoError(t, writer.WriteTable(sheet, tbl))

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two data rows")

	assert.Equal(t, []string{"Date", "Revenue", "Region"}, rows[0])
	assert.Equal(t, []string{"2024-01-01", "1000", "North"}, rows[1])
	assert.Equal(t, []string{"2024-01-02", "1500.5", "South"}, rows[2])
}

func TestSheetWriter_WriteTable_ZeroRows(t *testing.T) {
	writer, f := newTestWriter(t)

	tbl := report.Table{
		Name:    "empty",
		Columns: []string{"A", "B"},
	}

	sheet := f.GetSheetName(0)
	require.NoError(t, writer.WriteTable(sheet, tbl))

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 1, "header row only")
	assert.Equal(t, []string{"A", "B"}, rows[0])
}

func TestSheetWriter_WriteTable_ZeroColumns(t *testing.T) {
	writer, f := newTestWriter(t)

	require.NoError(t, writer.WriteTable(f.GetSheetName(0), report.Table{Name: "bare"}))
}

func TestSheetWriter_WriteTable_ShortRowsTolerated(t *testing.T) {
	writer, f := newTestWriter(t)

	tbl := report.Table{
		Name:    "ragged",
		Columns: []string{"A", "B", "C"},
		Rows: [][]any{
			{"x"},
		},
	}

	sheet := f.GetSheetName(0)
	require.NoError(t, writer.WriteTable(sheet, tbl))

	v, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "x", v)

	v, err = f.GetCellValue(sheet, "C2")
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestSheetWriter_ColumnWidths(t *testing.T) {
	writer, f := newTestWriter(t)

	tbl := report.Table{
		Name:    "widths",
		Columns: []string{"ID", "Notes"},
		Rows: [][]any{
			{"C1", strings.Repeat("long ", 30)},
		},
	}

	sheet := f.GetSheetName(0)
	require.NoError(t, writer.WriteTable(sheet, tbl))

	narrow, err := f.GetColWidth(sheet, "A")
	require.NoError(t, err)
	assert.Equal(t, float64(len("ID")+colWidthPadding), narrow)

	wide, err := f.GetColWidth(sheet, "B")
	require.NoError(t, err)
	assert.Equal(t, float64(colWidthMax), wide, "width capped")
}

func TestSheetWriter_HeaderStyleApplied(t *testing.T) {
	writer, f := newTestWriter(t)

	tbl := report.Table{
		Name:    "styled",
		Columns: []string{"A"},
		Rows:    [][]any{{1}, {2}, {3}},
	}

	sheet := f.GetSheetName(0)
	require.NoError(t, writer.WriteTable(sheet, tbl))

	headerStyle, err := f.GetCellStyle(sheet, "A1")
	require.NoError(t, err)
	assert.NotZero(t, headerStyle)

	// Worksheet row 2 (first data row) carries the alternating fill,
	// row 3 the plain data style.
	evenStyle, err := f.GetCellStyle(sheet, "A2")
	require.NoError(t, err)
	oddStyle, err := f.GetCellStyle(sheet, "A3")
	require.NoError(t, err)
	assert.NotEqual(t, evenStyle, oddStyle)
}

func TestSheetWriter_WriteSummary(t *testing.T) {
	writer, f := newTestWriter(t)

	meta := SummaryMeta{
		Title:       "Acme Corp - Daily Report Summary",
		GeneratedAt: "2024-06-15",
	}
	metrics := []report.Metric{
		{Label: "Total Revenue", Value: 2500, Display: "$2500.00"},
		{Label: "Total Orders", Value: 55, Display: "55"},
	}

	sheet := f.GetSheetName(0)
	require.NoError(t, writer.WriteSummary(sheet, meta, metrics))

	title, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp - Daily Report Summary", title)

	generated, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Generated: 2024-06-15", generated)

	heading, err := f.GetCellValue(sheet, "A4")
	require.NoError(t, err)
	assert.Equal(t, "Key Metrics", heading)

	label, err := f.GetCellValue(sheet, "A5")
	require.NoError(t, err)
	assert.Equal(t, "Total Revenue", label)

	value, err := f.GetCellValue(sheet, "B5")
	require.NoError(t, err)
	assert.Equal(t, "$2500.00", value)

	label, err = f.GetCellValue(sheet, "A6")
	require.NoError(t, err)
	assert.Equal(t, "Total Orders", label)
}

func TestSheetWriter_WriteSummary_ZeroMetrics(t *testing.T) {
	writer, f := newTestWriter(t)

	meta := SummaryMeta{Title: "Acme Corp - Weekly Report Summary", GeneratedAt: "2024-06-15"}

	sheet := f.GetSheetName(0)
	require.NoError(t, writer.WriteSummary(sheet, meta, nil))

	heading, err := f.GetCellValue(sheet, "A4")
	require.NoError(t, err)
	assert.Equal(t, "Key Metrics", heading)

	empty, err := f.GetCellValue(sheet, "A5")
	require.NoError(t, err)
	assert.Equal(t, "", empty)
}
