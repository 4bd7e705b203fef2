// Package report defines the tabular data model for report generation and
// the aggregation rules that derive summary metrics from it.
//
// A Table is a named dataset with ordered columns and rows of scalar cells
// (strings, numbers, booleans, or time.Time values). Tables travel through
// the pipeline as an ordered Tables slice because sheet order must match
// input order.
//
// ColumnKinds classifies each column once per table (text, numeric, or
// date); the classification drives both metric computation and downstream
// sheet formatting, replacing ad hoc per-cell type checks.
//
// Summarizer folds numeric columns into labeled metrics using a fixed
// column-name convention: ratio-like columns (rate, retention, score) are
// averaged, everything else is summed. SampleTables provides deterministic
// placeholder data for runs without a wired data source.
package report
