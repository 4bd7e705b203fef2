// Package main provides the CLI entry point for the report generator.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"reportgen/internal/config"
	"reportgen/internal/exporter"
)

var (
	configFile string
	outputDir  string
	noCharts   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "reportgen [kinds...]",
		Short: "Generate styled Excel reports with summary metrics and charts",
		Long: `reportgen formats tabular data into styled multi-sheet Excel workbooks
with derived summary metrics and embedded charts. Without arguments it
generates a daily and a weekly report from sample data.`,
		Args:          cobra.ArbitraryArgs,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "Config file path (default: report_config.json, or REPORTGEN_CONFIG_FILE)")
	rootCmd.Flags().StringVarP(&outputDir, "out", "o", "", "Output directory (overrides the configured one)")
	rootCmd.Flags().BoolVar(&noCharts, "no-charts", false, "Skip chart embedding")

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Report generation failed", "error", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfgPath := config.ResolvePath(configFile)
	cfg := config.Load(cfgPath, logger)
	if outputDir != "" {
		cfg.OutputDirectory = outputDir
	}

	generator := exporter.NewGenerator(logger, cfg, exporter.GeneratorOptions{
		DisableCharts: noCharts,
	})

	kinds := args
	if len(kinds) == 0 {
		kinds = []string{"daily", "weekly"}
	}

	ctx := context.Background()
	for _, kind := range kinds {
		slog.Info("Generating report", "kind", kind)
		path, err := generator.Generate(ctx, kind, nil)
		if err != nil {
			return err
		}
		slog.Info("Report saved", "kind", kind, "path", path)
	}

	slog.Info("All reports generated", "output_directory", cfg.OutputDirectory)
	return nil
}
