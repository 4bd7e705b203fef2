package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"reportgen/internal/config"
	apperrors "reportgen/internal/errors"
	"reportgen/internal/report"
)

// GeneratorOptions holds optional generator behavior
type GeneratorOptions struct {
	DisableCharts bool
	Clock         func() time.Time // defaults to time.Now
}

// Generator sequences report assembly: resolve data, compute metrics, write
// the summary sheet and one data sheet per table, attach charts, and save
// the workbook. Each Generate call owns its workbook; nothing is shared
// across calls.
type Generator struct {
	cfg        config.Config
	logger     *slog.Logger
	summarizer *report.Summarizer
	opts       GeneratorOptions
}

// NewGenerator creates a report generator. A nil logger falls back to the
// default logger.
func NewGenerator(logger *slog.Logger, cfg config.Config, opts GeneratorOptions) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Generator{
		cfg:        cfg,
		logger:     logger,
		summarizer: report.NewSummarizer(logger),
		opts:       opts,
	}
}

// Generate builds and saves a report workbook for the given kind and
// returns the absolute output path. A nil tables value substitutes sample
// data; a non-nil empty value produces a summary-only workbook. kind is a
// free-form label used for the file name and summary title only.
//
// Configuration problems never reach this method (the config loader falls
// back to defaults); I/O failures while creating the output directory or
// saving the workbook are fatal and propagate to the caller.
func (g *Generator) Generate(ctx context.Context, kind string, tables report.Tables) (string, error) {
	runID := uuid.New().String()
	logger := g.logger.With(slog.String("run_id", runID), slog.String("kind", kind))
	now := g.opts.Clock()

	if tables == nil {
		tables = report.SampleTables(kind, now)
		logger.InfoContext(ctx, "no data supplied, using sample tables",
			slog.Int("table_count", len(tables)))
	}

	metrics := g.summarizer.Compute(ctx, tables)

	f := excelize.NewFile()
	defer f.Close()

	writer := NewSheetWriter(f, g.cfg.Colors, g.cfg.GoLayout())

	summarySheet := "Summary"
	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return "", apperrors.NewExportError("failed to create summary sheet", err)
	}
	meta := SummaryMeta{
		Title:       fmt.Sprintf("%s - %s Report Summary", g.cfg.CompanyName, titleCase(kind)),
		GeneratedAt: g.cfg.FormatDate(now),
	}
	if err := writer.WriteSummary(summarySheet, meta, metrics); err != nil {
		return "", apperrors.NewExportError("failed to write summary sheet", err)
	}

	for _, tbl := range tables {
		if _, err := f.NewSheet(tbl.Name); err != nil {
			return "", apperrors.NewExportError("failed to create data sheet", err).
				WithContext("table", tbl.Name)
		}
		if err := writer.WriteTable(tbl.Name, tbl); err != nil {
			return "", apperrors.NewExportError("failed to write data sheet", err).
				WithContext("table", tbl.Name)
		}
		if g.opts.DisableCharts {
			continue
		}
		if err := writer.AttachChart(tbl.Name, tbl); err != nil {
			return "", apperrors.NewExportError("failed to attach chart", err).
				WithContext("table", tbl.Name)
		}
	}

	path, err := g.save(f, kind, now, runID)
	if err != nil {
		return "", err
	}

	logger.InfoContext(ctx, "report generated",
		slog.String("path", path),
		slog.Int("sheet_count", len(tables)+1),
		slog.Int("metric_count", len(metrics)))

	return path, nil
}

// save persists the workbook atomically: the codec writes to a temporary
// sibling which is renamed over the final path only on success, so a failed
// save never leaves a partial file observable as a valid report.
func (g *Generator) save(f *excelize.File, kind string, now time.Time, runID string) (string, error) {
	if err := os.MkdirAll(g.cfg.OutputDirectory, 0755); err != nil {
		return "", apperrors.NewStorageError("failed to create output directory", err).
			WithContext("directory", g.cfg.OutputDirectory)
	}

	filename := fmt.Sprintf("%s_report_%s.xlsx",
		sanitizePathComponent(kind),
		sanitizePathComponent(g.cfg.FormatDate(now)))

	path, err := filepath.Abs(filepath.Join(g.cfg.OutputDirectory, filename))
	if err != nil {
		return "", apperrors.NewStorageError("failed to resolve output path", err)
	}

	tmp := filepath.Join(filepath.Dir(path), ".tmp-"+runID[:8]+"-"+filename)
	if err := f.SaveAs(tmp); err != nil {
		os.Remove(tmp)
		return "", apperrors.NewStorageError("failed to save workbook", err).
			WithContext("path", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", apperrors.NewStorageError("failed to finalize workbook", err).
			WithContext("path", path)
	}

	return path, nil
}

// sanitizePathComponent replaces characters that would break the output
// file name, e.g. a date format containing path separators.
func sanitizePathComponent(s string) string {
	replacer := strings.NewReplacer(
		"/", "-",
		"\\", "-",
		":", "-",
		" ", "_",
	)
	return replacer.Replace(s)
}
