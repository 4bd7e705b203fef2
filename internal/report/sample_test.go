package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleTables_Daily(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	tables := SampleTables("daily", now)

	require.Len(t, tables, 2)
	assert.Equal(t, "sales_data", tables[0].Name)
	assert.Equal(t, "customer_data", tables[1].Name)

	sales := tables[0]
	assert.Equal(t, []string{"Date", "Product_A", "Product_B", "Product_C", "Total_Revenue"}, sales.Columns)
	require.NotEmpty(t, sales.Rows)

	// Last row is dated today (at midnight UTC).
	last := sales.Rows[len(sales.Rows)-1]
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), last[0])

	kinds := sales.ColumnKinds()
	assert.Equal(t, ColumnDate, kinds[0])
	for i := 1; i < len(kinds); i++ {
		assert.Equal(t, ColumnNumeric, kinds[i], "column %s", sales.Columns[i])
	}
}

func TestSampleTables_Weekly(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	tables := SampleTables("weekly", now)

	require.Len(t, tables, 2)
	assert.Equal(t, "sales_data", tables[0].Name)
	assert.Equal(t, "department_data", tables[1].Name)

	sales := tables[0]
	assert.Equal(t, []string{"Week", "Sales_Target", "Actual_Sales", "New_Customers", "Customer_Retention"}, sales.Columns)
	assert.Len(t, sales.Rows, 12)

	departments := tables[1]
	assert.Len(t, departments.Rows, 4)
	assert.Equal(t, "Sales", departments.Rows[0][0])
}

func TestSampleTables_UnknownKindGetsWeeklyShape(t *testing.T) {
	now := time.Now()

	tables := SampleTables("monthly", now)

	require.Len(t, tables, 2)
	assert.Equal(t, "sales_data", tables[0].Name)
	assert.Equal(t, "department_data", tables[1].Name)
}

func TestSampleTables_Deterministic(t *testing.T) {
	now := time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)

	first := SampleTables("daily", now)
	second := SampleTables("daily", now)

	assert.Equal(t, first, second)
}

func TestSampleTables_ValidShape(t *testing.T) {
	now := time.Now()

	for _, kind := range []string{"daily", "weekly"} {
		for _, tbl := range SampleTables(kind, now) {
			require.NoError(t, tbl.Validate())
			for i, row := range tbl.Rows {
				assert.Len(t, row, len(tbl.Columns), "%s/%s row %d", kind, tbl.Name, i)
			}
		}
	}
}
