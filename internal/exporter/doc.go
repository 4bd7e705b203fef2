// Package exporter renders named tables into styled Excel workbooks.
//
// This package contains three main components:
//
// SheetWriter: formats a single sheet — header styling from the configured
// palette, thin borders, alternating row fills, content-sized columns — and
// writes the summary sheet layout (title, generation date, metric block).
//
// Chart composition: AttachChart binds a bar or line chart to a data
// sheet's own cell ranges. Tables without numeric data are skipped.
//
// Generator: the orchestrator. Generate resolves input data (caller tables
// or deterministic samples), computes summary metrics, writes the summary
// sheet followed by one data sheet per table in input order, attaches
// charts, and saves the workbook atomically under the configured output
// directory, returning the absolute path.
//
// Example usage:
//
//	cfg := config.Load(config.ResolvePath(""), logger)
//	gen := exporter.NewGenerator(logger, cfg, exporter.GeneratorOptions{})
//	path, err := gen.Generate(ctx, "daily", nil)
package exporter
