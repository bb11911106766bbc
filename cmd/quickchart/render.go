package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nbforge/quickchart"
	"github.com/nbforge/quickchart/pkg/adapters/dataset"
	"github.com/nbforge/quickchart/pkg/adapters/html"
	"github.com/nbforge/quickchart/pkg/suggest"
)

var (
	renderOut    string
	renderConfig string
	renderWatch  bool
)

var renderCmd = &cobra.Command{
	Use:   "render <dataset>",
	Short: "Build chart sections from a dataset and write an HTML report",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]
		logger := slog.Default()

		var cfg *Config
		if renderConfig != "" {
			loaded, err := loadConfig(renderConfig)
			if err != nil {
				fatal("Error loading config", err)
			}
			cfg = loaded
		}

		if err := renderReport(path, cfg, logger); err != nil {
			fatal("Error rendering report", err)
		}

		if !renderWatch {
			return
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		events := make(chan dataset.Event, 1)
		watcher := dataset.NewWatcher(path, events, logger)
		if err := watcher.Start(ctx); err != nil {
			fatal("Error starting watcher", err)
		}
		defer watcher.Stop(context.Background())

		logger.Info("watching dataset", "path", path)
		for {
			select {
			case <-ctx.Done():
				return
			case <-events:
				if err := renderReport(path, cfg, logger); err != nil {
					logger.Error("rebuild failed", "error", err)
				}
			}
		}
	},
}

func renderReport(path string, cfg *Config, logger *slog.Logger) error {
	df, err := dataset.Load(path)
	if err != nil {
		return err
	}

	opts := []quickchart.Option{quickchart.WithLogger(logger)}
	if cfg != nil && cfg.ChartsPerRow > 0 {
		opts = append(opts, quickchart.WithChartsPerRow(cfg.ChartsPerRow))
	}
	qc := quickchart.New(opts...)

	page := html.NewPage("Quickchart report")
	if qc.ChartsPerRow() > 0 {
		page.ChartsPerRow = qc.ChartsPerRow()
	}
	if cfg != nil {
		if cfg.Title != "" {
			page.Title = cfg.Title
		}
		if err := buildConfigured(qc, df, cfg, page); err != nil {
			return err
		}
	} else {
		if err := buildSuggested(qc, df, page); err != nil {
			return err
		}
	}

	out := os.Stdout
	var f *os.File
	if renderOut != "" {
		var err error
		f, err = os.Create(renderOut)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		out = f
	}

	if err := page.Render(out); err != nil {
		if f != nil {
			f.Close()
		}
		return fmt.Errorf("failed to render page: %w", err)
	}
	// A close failure means the report did not fully reach disk.
	if f != nil {
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to write %s: %w", renderOut, err)
		}
	}
	logger.Info("report written", "dataset", path, "output", renderOut, "charts", qc.ChartCount())
	return nil
}

func buildConfigured(qc *quickchart.Session, df quickchart.Dataframe, cfg *Config, page *html.Page) error {
	for _, sc := range cfg.Sections {
		colnames, err := sc.expandColumns(df)
		if err != nil {
			return err
		}
		pairs, err := sc.columnPairs()
		if err != nil {
			return err
		}

		var sec *quickchart.ChartSection
		switch sc.Type {
		case "histograms":
			sec, err = qc.Histograms(df, colnames)
		case "values":
			sec, err = qc.ValuePlots(df, colnames)
		case "categorical":
			sec, err = qc.CategoricalHistograms(df, colnames)
		case "heatmaps":
			sec, err = qc.Heatmaps(df, pairs)
		case "scatter":
			sec, err = qc.LinkedScatter(df, pairs)
		case "swarm":
			sec, err = qc.SwarmPlots(df, pairs)
		default:
			return fmt.Errorf("unknown section type %q", sc.Type)
		}
		if err != nil {
			return fmt.Errorf("section %q: %w", sc.Type, err)
		}
		page.Add(sec)
	}
	return nil
}

func buildSuggested(qc *quickchart.Session, df quickchart.Dataframe, page *html.Page) error {
	plan := suggest.Suggest(df)
	if !plan.HasCharts() {
		return fmt.Errorf("dataset has no plottable columns")
	}

	add := func(sec *quickchart.ChartSection, err error) error {
		if err != nil {
			return err
		}
		if len(sec.Charts()) > 0 {
			page.Add(sec)
		}
		return nil
	}

	if len(plan.Numeric) > 0 {
		if err := add(qc.Histograms(df, plan.Numeric)); err != nil {
			return err
		}
		if err := add(qc.ValuePlots(df, plan.Numeric)); err != nil {
			return err
		}
	}
	if len(plan.Categorical) > 0 {
		if err := add(qc.CategoricalHistograms(df, plan.Categorical)); err != nil {
			return err
		}
	}
	if len(plan.HeatmapPairs) > 0 {
		if err := add(qc.Heatmaps(df, plan.HeatmapPairs)); err != nil {
			return err
		}
	}
	if len(plan.ScatterPairs) > 0 {
		if err := add(qc.LinkedScatter(df, plan.ScatterPairs)); err != nil {
			return err
		}
	}
	if len(plan.SwarmPairs) > 0 {
		if err := add(qc.SwarmPlots(df, plan.SwarmPairs)); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output file (default: stdout)")
	renderCmd.Flags().StringVarP(&renderConfig, "config", "c", "", "YAML section config (default: suggest sections from the data)")
	renderCmd.Flags().BoolVarP(&renderWatch, "watch", "w", false, "Rebuild the report when the dataset changes")
	rootCmd.AddCommand(renderCmd)
}
