package report

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
)

// aggregation selects how a numeric column folds into a metric
type aggregation int

const (
	aggregateSum aggregation = iota
	aggregateAverage
)

// Column-name conventions mapping a numeric column to its aggregation rule.
// The lookup is fixed, not inferred: ratio-like columns are averaged and
// every other numeric column (monetary, count, or otherwise) is summed.
// Monetary keywords only affect display formatting.
var (
	ratioKeywords    = []string{"rate", "ratio", "percent", "retention", "score"}
	monetaryKeywords = []string{"revenue", "sales", "spent", "spend", "budget", "amount", "price", "cost", "value"}
)

// Metric is a single derived aggregate with a display label. Value carries
// the raw number; Display carries the formatted string written to the
// summary sheet.
type Metric struct {
	Label   string
	Value   float64
	Display string
}

// Summarizer derives summary metrics from named tables
type Summarizer struct {
	logger *slog.Logger
}

// NewSummarizer creates a summarizer. A nil logger falls back to the
// default logger.
func NewSummarizer(logger *slog.Logger) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Summarizer{logger: logger}
}

// Compute derives metrics from the given tables, in table order and column
// order within each table. Tables with no numeric columns contribute nothing,
// empty tables contribute nothing, and no input ever fails: zero tables
// yield zero metrics.
func (s *Summarizer) Compute(ctx context.Context, tables Tables) []Metric {
	metrics := []Metric{}

	for _, tbl := range tables {
		tableMetrics := s.computeTable(tbl)
		metrics = append(metrics, tableMetrics...)
	}

	s.logger.InfoContext(ctx, "computed summary metrics",
		slog.Int("table_count", len(tables)),
		slog.Int("metric_count", len(metrics)))

	return metrics
}

func (s *Summarizer) computeTable(tbl Table) []Metric {
	if tbl.IsEmpty() {
		return nil
	}

	kinds := tbl.ColumnKinds()
	var metrics []Metric

	for col, kind := range kinds {
		if kind != ColumnNumeric {
			continue
		}

		sum := 0.0
		count := 0
		for row := range tbl.Rows {
			if v, ok := NumericValue(tbl.Cell(row, col)); ok {
				sum += v
				count++
			}
		}
		if count == 0 {
			continue
		}

		name := tbl.Columns[col]
		switch columnAggregation(name) {
		case aggregateAverage:
			avg := sum / float64(count)
			metrics = append(metrics, Metric{
				Label:   metricLabel("Average", name),
				Value:   avg,
				Display: formatRatio(avg),
			})
		default:
			metrics = append(metrics, Metric{
				Label:   metricLabel("Total", name),
				Value:   sum,
				Display: formatAmount(name, sum),
			})
		}
	}

	return metrics
}

// columnAggregation resolves the aggregation rule for a column name
func columnAggregation(name string) aggregation {
	lower := strings.ToLower(name)
	for _, kw := range ratioKeywords {
		if strings.Contains(lower, kw) {
			return aggregateAverage
		}
	}
	return aggregateSum
}

// isMonetary reports whether a column name follows a monetary convention
func isMonetary(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range monetaryKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// metricLabel builds the display label, avoiding a doubled prefix for
// columns already named like "Total_Revenue".
func metricLabel(prefix, column string) string {
	pretty := strings.ReplaceAll(column, "_", " ")
	if strings.HasPrefix(strings.ToLower(pretty), strings.ToLower(prefix)+" ") {
		return pretty
	}
	return prefix + " " + pretty
}

// formatAmount renders a summed value: monetary columns get a currency
// prefix and two decimals, whole counts render without decimals.
func formatAmount(column string, v float64) string {
	if isMonetary(column) {
		return fmt.Sprintf("$%.2f", v)
	}
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

// formatRatio renders an averaged ratio as a percentage with one decimal
func formatRatio(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}
