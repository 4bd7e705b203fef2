package exporter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reportgen/internal/report"
)

func TestChartEligible(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		table report.Table
		want  bool
	}{
		{
			name: "numeric column with rows",
			table: report.Table{
				Columns: []string{"Date", "Revenue"},
				Rows:    [][]any{{day, 1000}},
			},
			want: true,
		},
		{
			name: "no rows",
			table: report.Table{
				Columns: []string{"Date", "Revenue"},
			},
			want: false,
		},
		{
			name: "no numeric columns",
			table: report.Table{
				Columns: []string{"ID", "Name"},
				Rows:    [][]any{{"C1", "Ann"}},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChartEligible(tt.table))
		})
	}
}

func TestResolveChartBinding(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		table       report.Table
		wantCatCol  int
		wantValCol  int
		wantKind    ChartKind
		wantBinding bool
	}{
		{
			name: "date category gives line chart",
			table: report.Table{
				Columns: []string{"Date", "Revenue", "Orders"},
				Rows:    [][]any{{day, 1000, 25}},
			},
			wantCatCol:  0,
			wantValCol:  1,
			wantKind:    ChartLine,
			wantBinding: true,
		},
		{
			name: "text category gives bar chart",
			table: report.Table{
				Columns: []string{"Department", "Budget"},
				Rows:    [][]any{{"Sales", 50000}},
			},
			wantCatCol:  0,
			wantValCol:  1,
			wantKind:    ChartBar,
			wantBinding: true,
		},
		{
			name: "numeric column before the category column",
			table: report.Table{
				Columns: []string{"Score", "Name"},
				Rows:    [][]any{{0.9, "Ann"}},
			},
			wantCatCol:  1,
			wantValCol:  0,
			wantKind:    ChartBar,
			wantBinding: true,
		},
		{
			name: "all numeric columns",
			table: report.Table{
				Columns: []string{"X", "Y"},
				Rows:    [][]any{{1, 2}},
			},
			wantCatCol:  0,
			wantValCol:  1,
			wantKind:    ChartBar,
			wantBinding: true,
		},
		{
			name: "no numeric column",
			table: report.Table{
				Columns: []string{"ID"},
				Rows:    [][]any{{"C1"}},
			},
			wantBinding: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			binding, ok := resolveChartBinding(tt.table)
			require.Equal(t, tt.wantBinding, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantCatCol, binding.categoryCol)
			assert.Equal(t, tt.wantValCol, binding.valueCol)
			assert.Equal(t, tt.wantKind, binding.kind)
		})
	}
}

func TestSheetWriter_AttachChart(t *testing.T) {
	writer, f := newTestWriter(t)

	tbl := report.Table{
		Name:    "sales_data",
		Columns: []string{"Date", "Revenue"},
		Rows: [][]any{
			{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 1000},
			{time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), 1500},
		},
	}

	sheet := f.GetSheetName(0)
	require.NoError(t, writer.WriteTable(sheet, tbl))
	require.NoError(t, writer.AttachChart(sheet, tbl))
}

func TestSheetWriter_AttachChart_SkipsIneligible(t *testing.T) {
	writer, f := newTestWriter(t)

	tbl := report.Table{
		Name:    "names",
		Columns: []string{"ID", "Name"},
		Rows:    [][]any{{"C1", "Ann"}},
	}

	sheet := f.GetSheetName(0)
	require.NoError(t, writer.WriteTable(sheet, tbl))
	require.NoError(t, writer.AttachChart(sheet, tbl), "skipping is not an error")
}
