package report

import (
	"fmt"
	"sort"
	"time"
)

// ColumnKind classifies a table column for formatting and aggregation.
type ColumnKind int

const (
	ColumnText ColumnKind = iota
	ColumnNumeric
	ColumnDate
)

// String returns a human-readable name for the column kind
func (k ColumnKind) String() string {
	switch k {
	case ColumnNumeric:
		return "numeric"
	case ColumnDate:
		return "date"
	default:
		return "text"
	}
}

// Table is a named dataset with ordered columns and rows. Every row is
// expected to have one cell per column; short rows are tolerated and treated
// as having empty trailing cells.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]any
}

// Tables is an ordered collection of tables. Order is significant: data
// sheets are written in this order.
type Tables []Table

// FromMap converts a name-keyed table map into an ordered Tables value.
// Go maps have no iteration order, so entries are sorted by name for
// deterministic output.
func FromMap(m map[string]Table) Tables {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	tables := make(Tables, 0, len(names))
	for _, name := range names {
		tbl := m[name]
		tbl.Name = name
		tables = append(tables, tbl)
	}
	return tables
}

// Lookup returns the table with the given name
func (ts Tables) Lookup(name string) (Table, bool) {
	for _, tbl := range ts {
		if tbl.Name == name {
			return tbl, true
		}
	}
	return Table{}, false
}

// IsEmpty reports whether the table has no data rows
func (t Table) IsEmpty() bool {
	return len(t.Rows) == 0
}

// Cell returns the value at the given row and column index, or nil when the
// row is shorter than the column set.
func (t Table) Cell(row, col int) any {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return nil
	}
	return t.Rows[row][col]
}

// ColumnKinds classifies every column of the table in one pass. A column is
// numeric when all of its non-nil cells hold numeric values, date when all
// hold time.Time values, and text otherwise. Columns with no values at all
// are text.
func (t Table) ColumnKinds() []ColumnKind {
	kinds := make([]ColumnKind, len(t.Columns))
	for col := range t.Columns {
		kinds[col] = t.classifyColumn(col)
	}
	return kinds
}

func (t Table) classifyColumn(col int) ColumnKind {
	seen := false
	allNumeric := true
	allDate := true

	for row := range t.Rows {
		v := t.Cell(row, col)
		if v == nil {
			continue
		}
		seen = true
		if _, ok := NumericValue(v); !ok {
			allNumeric = false
		}
		if _, ok := v.(time.Time); !ok {
			allDate = false
		}
	}

	switch {
	case !seen:
		return ColumnText
	case allDate:
		return ColumnDate
	case allNumeric:
		return ColumnNumeric
	default:
		return ColumnText
	}
}

// NumericValue extracts a float64 from the supported numeric cell types.
// Booleans and numeric-looking strings are deliberately not treated as
// numbers; they render as text.
func NumericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// Validate checks that every row has at most as many cells as there are
// columns. Longer rows indicate a caller bug; shorter rows are tolerated.
func (t Table) Validate() error {
	for i, row := range t.Rows {
		if len(row) > len(t.Columns) {
			return fmt.Errorf("table %q row %d has %d cells for %d columns",
				t.Name, i, len(row), len(t.Columns))
		}
	}
	return nil
}
