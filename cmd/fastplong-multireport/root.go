package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/omics-tools/fastplong-multireport/internal/aggregate"
	"github.com/omics-tools/fastplong-multireport/internal/discovery"
	"github.com/omics-tools/fastplong-multireport/internal/loader"
	"github.com/omics-tools/fastplong-multireport/internal/projectconfig"
	"github.com/omics-tools/fastplong-multireport/internal/reporting"
	"github.com/spf13/cobra"
)

var version = "dev"

type rootOptions struct {
	output      string
	title       string
	noRecursive bool
	sortByID    bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "fastplong-multireport <results-dir>",
		Short: "Aggregate fastplong QC reports into one offline HTML report",
		Long: `fastplong-multireport scans a results directory for *_fastplong_report.json
files, aggregates the per-sample QC metrics into a comparison table, and writes
a single self-contained HTML report with charts for spotting batch effects and
outliers across a sequencing run.`,
		Args:         cobra.ExactArgs(1),
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(args[0], opts)
		},
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "",
		"Output HTML path (default: "+projectconfig.DefaultOutputName+" in the results directory)")
	cmd.Flags().StringVarP(&opts.title, "title", "t", "",
		"Report title (default: "+projectconfig.DefaultTitle+")")
	cmd.Flags().BoolVar(&opts.noRecursive, "no-recursive", false,
		"Only scan the top level of the results directory")
	cmd.Flags().BoolVar(&opts.sortByID, "sort", false,
		"Order report rows by sample id instead of discovery order")

	return cmd
}

func execute() error {
	return newRootCommand().Execute()
}

func runReport(resultsDir string, opts *rootOptions) error {
	cfg, err := projectconfig.Load(resultsDir)
	if err != nil {
		return err
	}
	if opts.title != "" {
		cfg.Title = opts.title
	}

	recursive := cfg.Recursive == nil || *cfg.Recursive
	if opts.noRecursive {
		recursive = false
	}

	files, err := discovery.Discover(resultsDir, recursive)
	if err != nil {
		return err
	}
	slog.Info("discovered fastplong reports", "count", len(files))

	reports, failures := loader.LoadAll(files)
	if len(reports) == 0 {
		return &loader.NoValidReportsError{Failures: len(failures)}
	}

	table := aggregate.Build(reports)
	if opts.sortByID {
		table.SortBySampleID()
	}

	outPath := opts.output
	if outPath == "" {
		outPath = cfg.Output
		if !filepath.IsAbs(outPath) {
			outPath = filepath.Join(resultsDir, outPath)
		}
	}

	warnings := make([]string, 0, len(failures))
	for _, f := range failures {
		warnings = append(warnings, f.String())
	}

	params := reporting.Params{
		Title:          cfg.Title,
		ChartWidth:     cfg.ChartWidth,
		ChartHeight:    cfg.ChartHeight,
		MaxCurvePoints: cfg.MaxCurvePoints,
		OutlierZ:       cfg.OutlierZ,
		GeneratedAt:    time.Now(),
		Warnings:       warnings,
	}
	if err := reporting.Write(outPath, table, params); err != nil {
		return fmt.Errorf("generating report: %w", err)
	}

	slog.Info("report written", "path", outPath, "samples", len(table.Rows), "warnings", len(warnings))
	return nil
}
