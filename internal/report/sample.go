package report

import (
	"fmt"
	"time"
)

// SampleTables returns illustrative placeholder tables for the given report
// kind. Values are derived deterministically from the row index so repeated
// calls with the same inputs produce identical tables; only the date column
// depends on now. Used when the caller supplies no data.
func SampleTables(kind string, now time.Time) Tables {
	if kind == "daily" {
		return Tables{dailySales(now), sampleCustomers()}
	}
	return Tables{weeklySales(now), sampleDepartments()}
}

func dailySales(now time.Time) Table {
	const days = 14

	tbl := Table{
		Name:    "sales_data",
		Columns: []string{"Date", "Product_A", "Product_B", "Product_C", "Total_Revenue"},
	}

	end := dateOnly(now)
	for i := 0; i < days; i++ {
		day := end.AddDate(0, 0, i-days+1)
		tbl.Rows = append(tbl.Rows, []any{
			day,
			50 + (i*37)%150,
			30 + (i*53)%120,
			20 + (i*29)%80,
			1000 + (i*487)%4000,
		})
	}
	return tbl
}

func sampleCustomers() Table {
	const customers = 10
	categories := []string{"Premium", "Standard", "Basic"}

	tbl := Table{
		Name:    "customer_data",
		Columns: []string{"Customer_ID", "Customer_Name", "Total_Orders", "Total_Spent", "Category"},
	}

	for i := 1; i <= customers; i++ {
		tbl.Rows = append(tbl.Rows, []any{
			fmt.Sprintf("CUST_%04d", i),
			fmt.Sprintf("Customer %d", i),
			1 + (i*7)%19,
			100 + (i*731)%9900,
			categories[i%len(categories)],
		})
	}
	return tbl
}

func weeklySales(now time.Time) Table {
	const weeks = 12

	tbl := Table{
		Name:    "sales_data",
		Columns: []string{"Week", "Sales_Target", "Actual_Sales", "New_Customers", "Customer_Retention"},
	}

	end := dateOnly(now)
	for i := 0; i < weeks; i++ {
		week := end.AddDate(0, 0, 7*(i-weeks+1))
		tbl.Rows = append(tbl.Rows, []any{
			week,
			10000 + (i*833)%10000,
			8000 + (i*1187)%14000,
			20 + (i*13)%80,
			0.70 + float64((i*5)%26)/100,
		})
	}
	return tbl
}

func sampleDepartments() Table {
	return Table{
		Name:    "department_data",
		Columns: []string{"Department", "Budget", "Actual_Spend", "Performance_Score", "Team_Size"},
		Rows: [][]any{
			{"Sales", 50000, 47200, 0.92, 10},
			{"Marketing", 30000, 28500, 0.81, 8},
			{"Support", 25000, 23900, 0.88, 12},
			{"Operations", 40000, 41100, 0.76, 15},
		},
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
